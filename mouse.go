// Copyright 2026 The ScreenPilot Authors
//
// Mouse input operations

package screenpilot

import "context"

// MouseAPI simulates mouse input. Calls are fire-and-forget: the server
// acknowledges as soon as the events are posted, and any settling delay the
// target application needs is the caller's concern.
type MouseAPI struct {
	c *Client
}

type mousePositionRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type mouseDragRequest struct {
	FromX int `json:"from_x"`
	FromY int `json:"from_y"`
	ToX   int `json:"to_x"`
	ToY   int `json:"to_y"`
}

type mouseScrollRequest struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Clicks int `json:"clicks"`
}

// Click performs a left click at screen coordinates (x, y).
func (m *MouseAPI) Click(ctx context.Context, x, y int) error {
	return m.c.call(ctx, "/mouse/click", mousePositionRequest{X: x, Y: y}, nil)
}

// DoubleClick performs a left double click at screen coordinates (x, y).
func (m *MouseAPI) DoubleClick(ctx context.Context, x, y int) error {
	return m.c.call(ctx, "/mouse/doubleclick", mousePositionRequest{X: x, Y: y}, nil)
}

// RightClick performs a right click at screen coordinates (x, y).
func (m *MouseAPI) RightClick(ctx context.Context, x, y int) error {
	return m.c.call(ctx, "/mouse/rightclick", mousePositionRequest{X: x, Y: y}, nil)
}

// Move moves the pointer to screen coordinates (x, y) without clicking.
func (m *MouseAPI) Move(ctx context.Context, x, y int) error {
	return m.c.call(ctx, "/mouse/move", mousePositionRequest{X: x, Y: y}, nil)
}

// Drag presses at (fromX, fromY), moves to (toX, toY), and releases.
func (m *MouseAPI) Drag(ctx context.Context, fromX, fromY, toX, toY int) error {
	return m.c.call(ctx, "/mouse/drag", mouseDragRequest{FromX: fromX, FromY: fromY, ToX: toX, ToY: toY}, nil)
}

// Scroll scrolls at (x, y) by the given number of wheel clicks. Positive
// scrolls down, negative scrolls up.
func (m *MouseAPI) Scroll(ctx context.Context, x, y, clicks int) error {
	return m.c.call(ctx, "/mouse/scroll", mouseScrollRequest{X: x, Y: y, Clicks: clicks}, nil)
}
