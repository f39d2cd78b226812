// Copyright 2026 The ScreenPilot Authors
//
// System inspection operations

package screenpilot

import "context"

// SystemAPI provides read-only queries of the desktop state.
type SystemAPI struct {
	c *Client
}

type windowDetailsRequest struct {
	WindowID string `json:"window_id"`
}

// GetOverview returns a snapshot of all top-level windows and the current
// focus.
func (s *SystemAPI) GetOverview(ctx context.Context) (*Overview, error) {
	var resp Overview
	if err := s.c.call(ctx, "/system/overview", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetWindowDetails returns the automation tree of the given window. Element
// identifiers in the tree are only valid against this snapshot.
func (s *SystemAPI) GetWindowDetails(ctx context.Context, windowID string) (*WindowDetails, error) {
	var resp WindowDetails
	if err := s.c.call(ctx, "/system/window", windowDetailsRequest{WindowID: windowID}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
