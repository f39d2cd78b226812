// Copyright 2026 The ScreenPilot Authors
//
// Loose field extraction for model-produced JSON

package ai

// stringField returns the first of the given keys that holds a non-empty
// string value.
func stringField(obj map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			return s, true
		}
	}
	return "", false
}

// numberField returns the first of the given keys that holds a JSON number.
func numberField(obj map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		value, exists := obj[key]
		if !exists || !isNumber(value) {
			continue
		}
		switch v := value.(type) {
		case float64:
			return v, true
		case float32:
			return float64(v), true
		case int:
			return float64(v), true
		case int64:
			return float64(v), true
		}
	}
	return 0, false
}

// intField returns the first of the given keys that holds a whole number.
// Models routinely emit quantities as JSON numbers, which unmarshal to
// float64; whole-valued floats are accepted.
func intField(obj map[string]any, keys ...string) (int, bool) {
	for _, key := range keys {
		value, exists := obj[key]
		if !exists || !isInteger(value) {
			continue
		}
		switch v := value.(type) {
		case float64:
			return int(v), true
		case int:
			return v, true
		case int64:
			return int(v), true
		}
	}
	return 0, false
}

// isNumber returns true if the value is a valid JSON number.
func isNumber(value any) bool {
	switch value.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// isInteger returns true if the value is a whole number. JSON unmarshaling
// to interface{} produces float64 for all numbers, so whole-valued float64s
// count.
func isInteger(value any) bool {
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	case float32:
		return v == float32(int32(v))
	default:
		return false
	}
}
