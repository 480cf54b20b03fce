package media

import (
	"context"
	"fmt"
)

// FakeDevices is a scriptable device boundary for tests and local runs.
type FakeDevices struct {
	UserMediaErr    error
	DisplayMediaErr error
	acquired        int
}

func (f *FakeDevices) AcquireUserMedia(_ context.Context, constraints Constraints) (*Stream, error) {
	if f.UserMediaErr != nil {
		return nil, f.UserMediaErr
	}
	f.acquired++
	stream := &Stream{ID: fmt.Sprintf("stream-%d", f.acquired)}
	if constraints.Video {
		stream.Tracks = append(stream.Tracks, &Track{Kind: TrackVideo, Enabled: true})
	}
	if constraints.Audio {
		stream.Tracks = append(stream.Tracks, &Track{Kind: TrackAudio, Enabled: true})
	}
	return stream, nil
}

func (f *FakeDevices) AcquireDisplayMedia(_ context.Context) (*Stream, error) {
	if f.DisplayMediaErr != nil {
		return nil, f.DisplayMediaErr
	}
	f.acquired++
	return &Stream{
		ID:     fmt.Sprintf("stream-%d", f.acquired),
		Tracks: []*Track{{Kind: TrackScreen, Enabled: true}},
	}, nil
}
