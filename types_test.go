// Copyright 2026 The ScreenPilot Authors
//
// Wire type helper tests

package screenpilot

import (
	"encoding/base64"
	"reflect"
	"testing"
)

func sampleTree() *UINode {
	return &UINode{
		ElementID: "root", Role: "Window", Name: "Order Entry",
		Children: []*UINode{
			{
				ElementID: "group-1", Role: "Group", Name: "Customer",
				Children: []*UINode{
					{ElementID: "field-name", Role: "Edit", Name: "Customer Name", SupportsSetValue: true},
					{ElementID: "field-street", Role: "Edit", Name: "Street", SupportsSetValue: true},
				},
			},
			{ElementID: "btn-submit", Role: "Button", Name: "Submit Order", SupportsInvoke: true},
		},
	}
}

func TestUINode_Walk(t *testing.T) {
	var ids []string
	var depths []int
	sampleTree().Walk(func(n *UINode, depth int) {
		ids = append(ids, n.ElementID)
		depths = append(depths, depth)
	})

	wantIDs := []string{"root", "group-1", "field-name", "field-street", "btn-submit"}
	if !reflect.DeepEqual(ids, wantIDs) {
		t.Errorf("Walk order = %v, want %v", ids, wantIDs)
	}
	wantDepths := []int{0, 1, 2, 2, 1}
	if !reflect.DeepEqual(depths, wantDepths) {
		t.Errorf("Walk depths = %v, want %v", depths, wantDepths)
	}

	var nilNode *UINode
	nilNode.Walk(func(*UINode, int) { t.Error("Walk on nil node must not visit") })
}

func TestUINode_Find(t *testing.T) {
	tree := sampleTree()

	btn := tree.Find(func(n *UINode) bool { return n.SupportsInvoke })
	if btn == nil || btn.ElementID != "btn-submit" {
		t.Errorf("Find(SupportsInvoke) = %+v, want btn-submit", btn)
	}

	if got := tree.Find(func(n *UINode) bool { return n.Role == "Checkbox" }); got != nil {
		t.Errorf("Find with no match = %+v, want nil", got)
	}

	var nilNode *UINode
	if got := nilNode.Find(func(*UINode) bool { return true }); got != nil {
		t.Errorf("Find on nil node = %+v, want nil", got)
	}
}

func TestUINode_FindByName(t *testing.T) {
	tree := sampleTree()

	if got := tree.FindByName("customer name"); got == nil || got.ElementID != "field-name" {
		t.Errorf("FindByName is case-insensitive; got %+v", got)
	}
	if got := tree.FindByName("SUBMIT"); got == nil || got.ElementID != "btn-submit" {
		t.Errorf("FindByName(SUBMIT) = %+v, want btn-submit", got)
	}
	if got := tree.FindByName("nonexistent"); got != nil {
		t.Errorf("FindByName(nonexistent) = %+v, want nil", got)
	}
}

func TestUINode_Count(t *testing.T) {
	if got := sampleTree().Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	var nilNode *UINode
	if got := nilNode.Count(); got != 0 {
		t.Errorf("Count() on nil node = %d, want 0", got)
	}
}

func TestOverview_FocusedWindow(t *testing.T) {
	o := &Overview{
		Windows: []WindowInfo{
			{ID: "w1", Title: "Background"},
			{ID: "w2", Title: "Order Entry", IsFocused: true},
		},
		FocusedWindowID: "w2",
	}
	if got := o.FocusedWindow(); got == nil || got.ID != "w2" {
		t.Errorf("FocusedWindow() = %+v, want w2", got)
	}

	// Focus flag alone is enough when the ID field is absent.
	o.FocusedWindowID = ""
	if got := o.FocusedWindow(); got == nil || got.ID != "w2" {
		t.Errorf("FocusedWindow() via IsFocused = %+v, want w2", got)
	}

	empty := &Overview{}
	if got := empty.FocusedWindow(); got != nil {
		t.Errorf("FocusedWindow() on empty overview = %+v, want nil", got)
	}
}

func TestOverview_FindWindow(t *testing.T) {
	o := &Overview{Windows: []WindowInfo{
		{ID: "w1", Title: "FormPilot Demo - Order Entry"},
		{ID: "w2", Title: "Untitled"},
	}}
	if got := o.FindWindow("order entry"); got == nil || got.ID != "w1" {
		t.Errorf("FindWindow(order entry) = %+v, want w1", got)
	}
	if got := o.FindWindow("browser"); got != nil {
		t.Errorf("FindWindow(browser) = %+v, want nil", got)
	}
}

func TestScreenshotResult_Decode(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	s := &ScreenshotResult{ImageBase64: base64.StdEncoding.EncodeToString(raw), Format: "png"}
	got, err := s.Decode()
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(got, raw) {
		t.Errorf("Decode() = %v, want %v", got, raw)
	}

	bad := &ScreenshotResult{ImageBase64: "not base64!"}
	if _, err := bad.Decode(); err == nil {
		t.Error("Decode() on invalid base64 should fail")
	}
}
