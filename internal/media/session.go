package media

import (
	"context"
	"fmt"
	"time"

	"devconnect/internal/models"
)

// Session is one meeting: a local camera/microphone stream plus an optional
// screen-share stream. All teardown is explicit; there is no timeout.
type Session struct {
	devices Devices
	local   *Stream
	screen  *Stream
	started time.Time
}

// NewSession creates a meeting session over the given device boundary.
func NewSession(devices Devices) *Session {
	return &Session{devices: devices}
}

// Start acquires camera and microphone. The returned error, if any, is a
// models.AppError wrapping the typed DeviceError.
func (s *Session) Start(ctx context.Context) error {
	stream, err := s.devices.AcquireUserMedia(ctx, Constraints{Video: true, Audio: true})
	if err != nil {
		return wrapDeviceError(err)
	}
	s.local = stream
	s.started = time.Now()
	return nil
}

// Active reports whether the session holds a live local stream.
func (s *Session) Active() bool {
	return s.local != nil && s.local.Active()
}

// ToggleMute flips the audio track and returns the new muted state.
func (s *Session) ToggleMute() (bool, error) {
	track, err := s.findTrack(TrackAudio)
	if err != nil {
		return false, err
	}
	track.Enabled = !track.Enabled
	return !track.Enabled, nil
}

// ToggleCamera flips the video track and returns whether video is now off.
func (s *Session) ToggleCamera() (bool, error) {
	track, err := s.findTrack(TrackVideo)
	if err != nil {
		return false, err
	}
	track.Enabled = !track.Enabled
	return !track.Enabled, nil
}

func (s *Session) findTrack(kind TrackKind) (*Track, error) {
	if s.local == nil {
		return nil, models.NewDeviceError("meeting has not started", nil)
	}
	for _, t := range s.local.Tracks {
		if t.Kind == kind && !t.Stopped() {
			return t, nil
		}
	}
	return nil, models.NewDeviceError(fmt.Sprintf("no live %s track", kind), nil)
}

// StartScreenShare acquires a display stream alongside the local one.
func (s *Session) StartScreenShare(ctx context.Context) error {
	if s.screen != nil && s.screen.Active() {
		return nil
	}
	stream, err := s.devices.AcquireDisplayMedia(ctx)
	if err != nil {
		return wrapDeviceError(err)
	}
	s.screen = stream
	return nil
}

// StopScreenShare tears down the display stream, leaving the local stream up.
func (s *Session) StopScreenShare() {
	if s.screen != nil {
		s.screen.StopTracks()
		s.screen = nil
	}
}

// Sharing reports whether a screen-share stream is live.
func (s *Session) Sharing() bool {
	return s.screen != nil && s.screen.Active()
}

// Leave tears down every track in the session.
func (s *Session) Leave() {
	s.StopScreenShare()
	if s.local != nil {
		s.local.StopTracks()
		s.local = nil
	}
}

func wrapDeviceError(err error) error {
	if devErr, ok := AsDeviceError(err); ok {
		return models.NewDeviceError(devErr.UserMessage(), devErr)
	}
	return models.NewDeviceError("device acquisition failed", err)
}
