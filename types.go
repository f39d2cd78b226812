// Copyright 2026 The ScreenPilot Authors
//
// Wire types shared by the category surfaces

package screenpilot

import (
	"encoding/base64"
	"strings"
)

// ActionResponse is the result of a side-effecting UI action.
type ActionResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Bounds is a window or element rectangle in screen coordinates.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// WindowInfo describes one top-level window.
type WindowInfo struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	AppName   string  `json:"app_name"`
	Bounds    *Bounds `json:"bounds,omitempty"`
	PID       int     `json:"pid"`
	IsFocused bool    `json:"is_focused"`
}

// Overview is a snapshot of the desktop: every top-level window plus which
// one currently has focus.
type Overview struct {
	Windows         []WindowInfo `json:"windows"`
	FocusedWindowID string       `json:"focused_window_id"`
}

// FocusedWindow returns the focused window, or nil when nothing has focus.
func (o *Overview) FocusedWindow() *WindowInfo {
	for i := range o.Windows {
		if o.Windows[i].ID == o.FocusedWindowID || o.Windows[i].IsFocused {
			return &o.Windows[i]
		}
	}
	return nil
}

// FindWindow returns the first window whose title contains the given
// substring (case-insensitive), or nil.
func (o *Overview) FindWindow(titlePart string) *WindowInfo {
	want := strings.ToLower(titlePart)
	for i := range o.Windows {
		if strings.Contains(strings.ToLower(o.Windows[i].Title), want) {
			return &o.Windows[i]
		}
	}
	return nil
}

// UINode is one element in a window's automation tree. ElementID is the
// opaque identifier accepted by the Automation surface; it is only valid
// against the tree snapshot it came from.
type UINode struct {
	ElementID        string    `json:"element_id"`
	Role             string    `json:"role"`
	Name             string    `json:"name"`
	Value            string    `json:"value,omitempty"`
	Bounds           *Bounds   `json:"bounds,omitempty"`
	Children         []*UINode `json:"children,omitempty"`
	SupportsSetValue bool      `json:"supports_set_value"`
	SupportsInvoke   bool      `json:"supports_invoke"`
}

// WindowDetails is a window plus its automation tree snapshot.
type WindowDetails struct {
	Window WindowInfo `json:"window"`
	Root   *UINode    `json:"automation_tree"`
}

// Walk visits n and every descendant in depth-first order.
func (n *UINode) Walk(fn func(node *UINode, depth int)) {
	if n == nil {
		return
	}
	n.walk(fn, 0)
}

func (n *UINode) walk(fn func(node *UINode, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.Children {
		if child != nil {
			child.walk(fn, depth+1)
		}
	}
}

// Find returns the first node (depth-first) matching pred, or nil.
func (n *UINode) Find(pred func(*UINode) bool) *UINode {
	if n == nil {
		return nil
	}
	if pred(n) {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(pred); found != nil {
			return found
		}
	}
	return nil
}

// FindByName returns the first node whose name contains the given substring
// (case-insensitive), or nil.
func (n *UINode) FindByName(namePart string) *UINode {
	want := strings.ToLower(namePart)
	return n.Find(func(node *UINode) bool {
		return strings.Contains(strings.ToLower(node.Name), want)
	})
}

// Count returns the number of nodes in the tree rooted at n.
func (n *UINode) Count() int {
	count := 0
	n.Walk(func(*UINode, int) { count++ })
	return count
}

// ScreenshotResult is a captured screen image.
type ScreenshotResult struct {
	ImageBase64 string `json:"image_base64"`
	Format      string `json:"format"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
}

// Decode returns the raw image bytes.
func (s *ScreenshotResult) Decode() ([]byte, error) {
	return base64.StdEncoding.DecodeString(s.ImageBase64)
}
