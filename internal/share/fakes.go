package share

import "context"

// FakeNative is a scriptable native share sheet for tests and local runs.
type FakeNative struct {
	Err    error
	Shared []Data
}

func (f *FakeNative) Share(_ context.Context, data Data) error {
	if f.Err != nil {
		return f.Err
	}
	f.Shared = append(f.Shared, data)
	return nil
}

// FakeClipboard is a scriptable clipboard for tests and local runs.
type FakeClipboard struct {
	Err     error
	Written []string
}

func (f *FakeClipboard) WriteText(_ context.Context, text string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Written = append(f.Written, text)
	return nil
}
