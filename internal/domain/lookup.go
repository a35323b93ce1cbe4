package domain

// FirstObject returns the first non-empty nested object stored under one of
// keys, tried in order. It returns nil when none is present.
func FirstObject(obj map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		if nested, ok := obj[key].(map[string]any); ok && len(nested) > 0 {
			return nested
		}
	}
	return nil
}

// FirstString returns the first non-empty string value stored under one of
// keys, tried in order.
func FirstString(obj map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
