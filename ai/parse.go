// Copyright 2026 The ScreenPilot Authors
//
// Parsers for the structured answers the demo prompts ask for

package ai

import (
	"encoding/json"
	"strings"
)

// LineItem is one row of an order.
type LineItem struct {
	Article   string
	Quantity  int
	UnitPrice float64
}

// Order is the record the order prompt asks the model to produce: a customer
// name plus line items. Constructed once from model output, consumed once by
// UI entry.
type Order struct {
	CustomerName string
	Items        []LineItem
}

// FieldMap maps logical form field names (e.g. "customer_name", "submit") to
// the opaque element identifiers of a specific automation tree snapshot.
type FieldMap map[string]string

// fieldCustomerName anchors the field-map schema: a mapping that cannot name
// the customer field is useless to the form workflow and is rejected.
const fieldCustomerName = "customer_name"

// ParseOrder parses a model response against the order schema. It tolerates
// markdown code fences and a few key spellings, and returns nil (never
// panics) for malformed or empty input or when the customer name is missing.
func ParseOrder(raw string) *Order {
	obj := parseObject(raw)
	if obj == nil {
		return nil
	}

	name, ok := stringField(obj, "customer_name", "customerName", "customer")
	if !ok || name == "" {
		return nil
	}

	order := &Order{CustomerName: name}
	items, _ := obj["items"].([]any)
	if items == nil {
		items, _ = obj["line_items"].([]any)
	}
	for _, entry := range items {
		itemObj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		article, ok := stringField(itemObj, "article", "name", "article_name")
		if !ok || article == "" {
			continue
		}
		quantity, ok := intField(itemObj, "quantity", "qty")
		if !ok || quantity <= 0 {
			continue
		}
		price, ok := numberField(itemObj, "unit_price", "unitPrice", "price")
		if !ok || price < 0 {
			continue
		}
		order.Items = append(order.Items, LineItem{
			Article:   article,
			Quantity:  quantity,
			UnitPrice: price,
		})
	}
	return order
}

// ParseFieldMap parses a model response against the element-id schema: a
// flat JSON object of logical field name to element identifier. Well-formed
// input passes through unchanged. Returns nil for malformed input, for an
// empty mapping, and for a mapping that lacks the customer-name field.
func ParseFieldMap(raw string) FieldMap {
	obj := parseObject(raw)
	if obj == nil {
		return nil
	}

	fields := make(FieldMap, len(obj))
	for key, value := range obj {
		id, ok := value.(string)
		if !ok || id == "" {
			continue
		}
		fields[key] = id
	}
	if len(fields) == 0 {
		return nil
	}
	if _, ok := fields[fieldCustomerName]; !ok {
		return nil
	}
	return fields
}

// parseObject unmarshals a (possibly fenced) model response into a JSON
// object, returning nil on any failure.
func parseObject(raw string) map[string]any {
	text := StripCodeFence(raw)
	if text == "" {
		return nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil
	}
	return obj
}

// StripCodeFence removes a surrounding markdown code fence (``` or
// ```json) from a model response, and trims whitespace either way.
func StripCodeFence(s string) string {
	text := strings.TrimSpace(s)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	// Drop a language tag like "json" on the opening fence line.
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]") {
			text = text[idx+1:]
		}
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
