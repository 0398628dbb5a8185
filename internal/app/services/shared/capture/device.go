package capture

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"
)

// httpDevice reads frames from a kiosk IP camera's snapshot endpoint.
// Each Open counts as one acquisition; the single track goes dead once
// stopped so a released session cannot keep pulling frames.
type httpDevice struct {
	snapshotURL string
	client      *http.Client
}

func NewHTTPDevice(snapshotURL string) Device {
	return &httpDevice{
		snapshotURL: snapshotURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *httpDevice) Open(ctx context.Context) (Source, error) {
	// Probe once so acquisition fails eagerly, the way grabbing a
	// missing physical camera would.
	if _, err := d.fetch(ctx); err != nil {
		return nil, err
	}
	return &httpSource{device: d, track: &httpTrack{live: true}}, nil
}

func (d *httpDevice) fetch(ctx context.Context) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.snapshotURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("camera snapshot endpoint returned status %d", resp.StatusCode)
	}

	frame, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return frame, nil
}

type httpSource struct {
	device *httpDevice
	track  *httpTrack
}

func (s *httpSource) Frame(ctx context.Context) (image.Image, error) {
	if !s.track.Live() {
		return nil, fmt.Errorf("camera stream already released")
	}
	return s.device.fetch(ctx)
}

func (s *httpSource) Tracks() []Track {
	return []Track{s.track}
}

type httpTrack struct {
	live bool
}

func (t *httpTrack) Stop() {
	t.live = false
}

func (t *httpTrack) Live() bool {
	return t.live
}
