// Package media models the capture and display devices used by the meeting
// panel: camera/microphone acquisition, screen capture, and track teardown.
// Acquisition either succeeds or fails immediately with a typed error; there
// is no timeout.
package media

import (
	"context"
	"errors"
	"fmt"
)

// TrackKind identifies a track within a stream.
type TrackKind string

const (
	TrackVideo  TrackKind = "video"
	TrackAudio  TrackKind = "audio"
	TrackScreen TrackKind = "screen"
)

// ErrorKind classifies device acquisition failures.
type ErrorKind string

const (
	// ErrPermissionDenied means the user or platform refused access.
	ErrPermissionDenied ErrorKind = "permission_denied"
	// ErrDeviceNotFound means no matching capture device exists.
	ErrDeviceNotFound ErrorKind = "device_not_found"
	// ErrDeviceInUse means another process holds the device.
	ErrDeviceInUse ErrorKind = "device_in_use"
	// ErrOther covers everything else.
	ErrOther ErrorKind = "other"
)

// DeviceError is a typed capture failure. Each kind carries a distinct
// user-facing message.
type DeviceError struct {
	Kind ErrorKind
	Err  error
}

func (e *DeviceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage(), e.Err)
	}
	return e.UserMessage()
}

func (e *DeviceError) Unwrap() error {
	return e.Err
}

// UserMessage returns the message shown to the user for this failure kind.
func (e *DeviceError) UserMessage() string {
	switch e.Kind {
	case ErrPermissionDenied:
		return "Camera and microphone access was denied. Please allow access and try again."
	case ErrDeviceNotFound:
		return "No camera or microphone was found on this device."
	case ErrDeviceInUse:
		return "Your camera or microphone is already in use by another application."
	default:
		if e.Err != nil {
			return fmt.Sprintf("Permission error: %v", e.Err)
		}
		return "An unknown device error occurred."
	}
}

// AsDeviceError extracts a *DeviceError from err, if present.
func AsDeviceError(err error) (*DeviceError, bool) {
	var devErr *DeviceError
	if errors.As(err, &devErr) {
		return devErr, true
	}
	return nil, false
}

// Track is a single live capture track.
type Track struct {
	Kind    TrackKind
	Enabled bool
	stopped bool
}

// Stop ends the track. Stopping twice is harmless.
func (t *Track) Stop() {
	t.stopped = true
	t.Enabled = false
}

// Stopped reports whether the track has been torn down.
func (t *Track) Stopped() bool {
	return t.stopped
}

// Stream is a set of live tracks from one acquisition.
type Stream struct {
	ID     string
	Tracks []*Track
}

// StopTracks tears down every track in the stream.
func (s *Stream) StopTracks() {
	for _, t := range s.Tracks {
		t.Stop()
	}
}

// Active reports whether any track is still live.
func (s *Stream) Active() bool {
	for _, t := range s.Tracks {
		if !t.stopped {
			return true
		}
	}
	return false
}

// Constraints selects which tracks to acquire.
type Constraints struct {
	Video bool
	Audio bool
}

// Devices is the capture/display device boundary.
type Devices interface {
	// AcquireUserMedia opens the camera and/or microphone.
	AcquireUserMedia(ctx context.Context, constraints Constraints) (*Stream, error)
	// AcquireDisplayMedia opens a screen-capture stream.
	AcquireDisplayMedia(ctx context.Context) (*Stream, error)
}
