// Copyright 2026 The ScreenPilot Authors
//
// Keyboard input operations

package screenpilot

import "context"

// KeyboardAPI simulates keyboard input into whatever currently has focus.
type KeyboardAPI struct {
	c *Client
}

type keyboardTypeRequest struct {
	Text string `json:"text"`
}

type keyboardPressRequest struct {
	Key string `json:"key"`
}

// Type types the given text into the focused element.
func (k *KeyboardAPI) Type(ctx context.Context, text string) error {
	return k.c.call(ctx, "/keyboard/type", keyboardTypeRequest{Text: text}, nil)
}

// Press presses a key or key chord, e.g. "Enter", "Tab", or "Ctrl+S".
func (k *KeyboardAPI) Press(ctx context.Context, key string) error {
	return k.c.call(ctx, "/keyboard/press", keyboardPressRequest{Key: key}, nil)
}
