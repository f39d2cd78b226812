// Copyright 2026 The ScreenPilot Authors
//
// UI automation element operations

package screenpilot

import "context"

// AutomationAPI mutates and actions UI elements by the opaque identifiers
// found in a window's automation tree.
type AutomationAPI struct {
	c *Client
}

type setValueRequest struct {
	ElementID string `json:"element_id"`
	Value     string `json:"value"`
}

type invokeRequest struct {
	ElementID string `json:"element_id"`
}

// SetValue writes a value into an element (typically a text field).
func (a *AutomationAPI) SetValue(ctx context.Context, elementID, value string) error {
	return a.c.call(ctx, "/automation/set-value", setValueRequest{ElementID: elementID, Value: value}, nil)
}

// Invoke performs an element's default action (typically a button press).
func (a *AutomationAPI) Invoke(ctx context.Context, elementID string) error {
	return a.c.call(ctx, "/automation/invoke", invokeRequest{ElementID: elementID}, nil)
}
