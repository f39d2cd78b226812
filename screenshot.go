// Copyright 2026 The ScreenPilot Authors
//
// Screenshot capture operations

package screenpilot

import "context"

// ScreenshotAPI captures screen images. Capture happens server-side; the
// image comes back base64-encoded in the response.
type ScreenshotAPI struct {
	c *Client
}

// Take captures the primary display.
func (s *ScreenshotAPI) Take(ctx context.Context) (*ScreenshotResult, error) {
	var resp ScreenshotResult
	if err := s.c.call(ctx, "/screenshot/take", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
