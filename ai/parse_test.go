// Copyright 2026 The ScreenPilot Authors
//
// Parser unit tests

package ai

import (
	"reflect"
	"testing"
)

func TestParseOrder_WellFormed(t *testing.T) {
	raw := `{
		"customer_name": "Erika Mustermann",
		"items": [
			{"article": "Widget", "quantity": 3, "unit_price": 9.99},
			{"article": "Gadget", "quantity": 1, "unit_price": 24.5}
		]
	}`
	order := ParseOrder(raw)
	if order == nil {
		t.Fatal("ParseOrder returned nil for well-formed input")
	}
	if order.CustomerName != "Erika Mustermann" {
		t.Errorf("CustomerName = %q", order.CustomerName)
	}
	want := []LineItem{
		{Article: "Widget", Quantity: 3, UnitPrice: 9.99},
		{Article: "Gadget", Quantity: 1, UnitPrice: 24.5},
	}
	if !reflect.DeepEqual(order.Items, want) {
		t.Errorf("Items = %+v, want %+v", order.Items, want)
	}
}

func TestParseOrder_AlternateKeys(t *testing.T) {
	raw := `{
		"customerName": "Max Power",
		"line_items": [
			{"name": "Cable", "qty": 2, "price": 4}
		]
	}`
	order := ParseOrder(raw)
	if order == nil {
		t.Fatal("ParseOrder returned nil for alternate key spellings")
	}
	if order.CustomerName != "Max Power" {
		t.Errorf("CustomerName = %q", order.CustomerName)
	}
	if len(order.Items) != 1 || order.Items[0].Article != "Cable" || order.Items[0].Quantity != 2 || order.Items[0].UnitPrice != 4 {
		t.Errorf("Items = %+v", order.Items)
	}
}

func TestParseOrder_Fenced(t *testing.T) {
	raw := "```json\n{\"customer_name\": \"Ada\", \"items\": []}\n```"
	order := ParseOrder(raw)
	if order == nil || order.CustomerName != "Ada" {
		t.Errorf("ParseOrder(fenced) = %+v", order)
	}
}

func TestParseOrder_Malformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"not json at all",
		"{truncated",
		`[1, 2, 3]`,
		`"just a string"`,
	} {
		if got := ParseOrder(raw); got != nil {
			t.Errorf("ParseOrder(%q) = %+v, want nil", raw, got)
		}
	}
}

func TestParseOrder_MissingCustomerName(t *testing.T) {
	raw := `{"items": [{"article": "Widget", "quantity": 1, "unit_price": 2}]}`
	if got := ParseOrder(raw); got != nil {
		t.Errorf("ParseOrder without customer name = %+v, want nil", got)
	}
	if got := ParseOrder(`{"customer_name": "", "items": []}`); got != nil {
		t.Errorf("ParseOrder with empty customer name = %+v, want nil", got)
	}
}

func TestParseOrder_SkipsInvalidItems(t *testing.T) {
	raw := `{
		"customer_name": "Erika",
		"items": [
			{"article": "Good", "quantity": 1, "unit_price": 1.5},
			{"article": "", "quantity": 1, "unit_price": 1},
			{"article": "NoQty", "unit_price": 1},
			{"article": "ZeroQty", "quantity": 0, "unit_price": 1},
			{"article": "NegPrice", "quantity": 1, "unit_price": -2},
			"not an object"
		]
	}`
	order := ParseOrder(raw)
	if order == nil {
		t.Fatal("ParseOrder returned nil")
	}
	if len(order.Items) != 1 || order.Items[0].Article != "Good" {
		t.Errorf("Items = %+v, want only the valid item", order.Items)
	}
}

func TestParseFieldMap_WellFormed(t *testing.T) {
	raw := `{"customer_name": "elem-1", "street": "elem-2", "submit": "elem-9"}`
	fields := ParseFieldMap(raw)
	want := FieldMap{"customer_name": "elem-1", "street": "elem-2", "submit": "elem-9"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("ParseFieldMap = %+v, want %+v", fields, want)
	}
}

func TestParseFieldMap_Rejections(t *testing.T) {
	for name, raw := range map[string]string{
		"malformed":        "{broken",
		"empty string":     "",
		"empty object":     "{}",
		"no customer name": `{"street": "elem-2", "submit": "elem-9"}`,
		"non-string only":  `{"customer_name": 42}`,
	} {
		if got := ParseFieldMap(raw); got != nil {
			t.Errorf("%s: ParseFieldMap(%q) = %+v, want nil", name, raw, got)
		}
	}
}

func TestParseFieldMap_DropsNonStringValues(t *testing.T) {
	raw := `{"customer_name": "elem-1", "count": 7, "empty": ""}`
	fields := ParseFieldMap(raw)
	want := FieldMap{"customer_name": "elem-1"}
	if !reflect.DeepEqual(fields, want) {
		t.Errorf("ParseFieldMap = %+v, want %+v", fields, want)
	}
}

func TestStripCodeFence(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\": 1}", "{\"a\": 1}"},
		{"  {\"a\": 1}  ", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```\n", "{\"a\": 1}"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := StripCodeFence(tc.in); got != tc.want {
			t.Errorf("StripCodeFence(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFieldHelpers(t *testing.T) {
	obj := map[string]any{
		"name":  "x",
		"qty":   float64(3),
		"frac":  2.5,
		"blank": "",
	}

	if s, ok := stringField(obj, "missing", "name"); !ok || s != "x" {
		t.Errorf("stringField = %q, %v", s, ok)
	}
	if _, ok := stringField(obj, "qty"); ok {
		t.Error("stringField should reject non-string values")
	}

	if n, ok := intField(obj, "qty"); !ok || n != 3 {
		t.Errorf("intField = %d, %v", n, ok)
	}
	if _, ok := intField(obj, "frac"); ok {
		t.Error("intField should reject fractional values")
	}

	if f, ok := numberField(obj, "frac"); !ok || f != 2.5 {
		t.Errorf("numberField = %v, %v", f, ok)
	}
	if _, ok := numberField(obj, "name"); ok {
		t.Error("numberField should reject string values")
	}
}
