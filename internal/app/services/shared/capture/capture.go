// Package capture scopes the lifetime of an acquired camera stream. A
// stream is a real external resource: every code path that opens one
// must stop all of its tracks exactly once, whether the capture
// succeeds, the user cancels, or the owning component is torn down.
package capture

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"sync"

	"intake-service/internal/pkg/exceptions"
)

// Track is one live media track of an acquired stream.
type Track interface {
	Stop()
	Live() bool
}

// Source is an acquired stream: a frame producer plus its tracks.
type Source interface {
	Frame(ctx context.Context) (image.Image, error)
	Tracks() []Track
}

// Device opens streams. Implementations wrap whatever camera hardware or
// remote feed the deployment provides.
type Device interface {
	Open(ctx context.Context) (Source, error)
}

// Session owns one acquired stream from Open until release. Release is
// idempotent; Snapshot, Cancel and Close all funnel into the same
// stop-once path.
type Session struct {
	source  Source
	release sync.Once
}

func Open(ctx context.Context, device Device) (*Session, error) {
	source, err := device.Open(ctx)
	if err != nil {
		return nil, exceptions.ErrCaptureFailed(err)
	}
	return &Session{source: source}, nil
}

// Snapshot grabs the current frame, encodes it as JPEG and releases the
// stream. A failed grab or encode leaves the stream open so the caller
// may retry; the caller's deferred Close still guarantees release.
func (s *Session) Snapshot(ctx context.Context) ([]byte, error) {
	frame, err := s.source.Frame(ctx)
	if err != nil {
		return nil, exceptions.ErrCaptureFailed(err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, nil); err != nil {
		return nil, exceptions.ErrCaptureFailed(err)
	}

	s.Close()
	return buf.Bytes(), nil
}

// Cancel releases the stream without capturing.
func (s *Session) Cancel() {
	s.Close()
}

// Close stops every track exactly once. Safe to call from any exit path,
// any number of times.
func (s *Session) Close() {
	s.release.Do(func() {
		for _, track := range s.source.Tracks() {
			track.Stop()
		}
	})
}
