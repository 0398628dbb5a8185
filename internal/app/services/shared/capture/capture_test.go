package capture

import (
	"context"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrack struct {
	stops int
}

func (t *fakeTrack) Stop()      { t.stops++ }
func (t *fakeTrack) Live() bool { return t.stops == 0 }

type fakeSource struct {
	track    *fakeTrack
	frameErr error
}

func (s *fakeSource) Frame(ctx context.Context) (image.Image, error) {
	if s.frameErr != nil {
		return nil, s.frameErr
	}
	return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
}

func (s *fakeSource) Tracks() []Track {
	return []Track{s.track}
}

type fakeDevice struct {
	source  *fakeSource
	openErr error
}

func (d *fakeDevice) Open(ctx context.Context) (Source, error) {
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.source, nil
}

func TestSession(t *testing.T) {
	ctx := context.Background()

	t.Run("snapshot encodes a frame and releases the stream", func(t *testing.T) {
		track := &fakeTrack{}
		session, err := Open(ctx, &fakeDevice{source: &fakeSource{track: track}})
		require.NoError(t, err)

		frame, err := session.Snapshot(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, frame)
		assert.Equal(t, 1, track.stops)
	})

	t.Run("deferred close after snapshot does not stop twice", func(t *testing.T) {
		track := &fakeTrack{}
		session, err := Open(ctx, &fakeDevice{source: &fakeSource{track: track}})
		require.NoError(t, err)

		_, err = session.Snapshot(ctx)
		require.NoError(t, err)
		session.Close()
		session.Close()

		assert.Equal(t, 1, track.stops)
	})

	t.Run("cancel releases without capturing", func(t *testing.T) {
		track := &fakeTrack{}
		session, err := Open(ctx, &fakeDevice{source: &fakeSource{track: track}})
		require.NoError(t, err)

		session.Cancel()
		assert.Equal(t, 1, track.stops)
	})

	t.Run("failed frame leaves the stream open for retry", func(t *testing.T) {
		track := &fakeTrack{}
		source := &fakeSource{track: track, frameErr: errors.New("grab failed")}
		session, err := Open(ctx, &fakeDevice{source: source})
		require.NoError(t, err)

		_, err = session.Snapshot(ctx)
		require.Error(t, err)
		assert.Equal(t, 0, track.stops, "failed snapshot must not release")

		source.frameErr = nil
		_, err = session.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, track.stops)
	})

	t.Run("failed open yields no session", func(t *testing.T) {
		session, err := Open(ctx, &fakeDevice{openErr: errors.New("no camera")})
		assert.Error(t, err)
		assert.Nil(t, session)
	})
}
