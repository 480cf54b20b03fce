// Package share models the host's share and clipboard capabilities with the
// three-tier fallback the client uses: native share sheet, clipboard copy,
// then handing the URL back for manual copying.
package share

import "context"

// Method identifies which tier fulfilled a share request.
type Method string

const (
	// MethodNative means the host share sheet handled the request.
	MethodNative Method = "native"
	// MethodClipboard means the URL was copied to the clipboard.
	MethodClipboard Method = "clipboard"
	// MethodManual means both tiers failed; the caller shows the URL.
	MethodManual Method = "manual"
)

// Data is the payload offered to the native share tier.
type Data struct {
	Title string
	Text  string
	URL   string
}

// Result reports the outcome of a share attempt. Exactly one variant applies:
// success with MethodNative or MethodClipboard, or failure with MethodManual
// and the URL for manual copying.
type Result struct {
	Success bool
	Method  Method
	URL     string
	Message string
}

// Native is a host share sheet. It may be absent entirely, and a present
// sheet may still fail (the user can cancel it).
type Native interface {
	Share(ctx context.Context, data Data) error
}

// Clipboard is a host clipboard writer. Writes may fail, e.g. permissions.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Capabilities bundles the optional host capabilities. Nil fields mean the
// capability does not exist on this host.
type Capabilities struct {
	Native    Native
	Clipboard Clipboard
}

// Share runs the tiers in order and reports which one succeeded.
func (c Capabilities) Share(ctx context.Context, data Data) Result {
	if c.Native != nil {
		if err := c.Native.Share(ctx, data); err == nil {
			return Result{Success: true, Method: MethodNative}
		}
		// Cancelled or failed; fall through to the clipboard.
	}

	if c.Clipboard != nil {
		if err := c.Clipboard.WriteText(ctx, data.URL); err == nil {
			return Result{
				Success: true,
				Method:  MethodClipboard,
				Message: "Link copied to clipboard!",
			}
		}
	}

	return Result{
		Success: false,
		Method:  MethodManual,
		URL:     data.URL,
		Message: "Copy this link to share",
	}
}
