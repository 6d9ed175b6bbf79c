package jira

import "strings"

// NormalizeField compacts an arbitrary field value into one of the
// canonical shapes. Jira's field catalog is open-ended (tenant-defined
// custom fields included), so this is a classification cascade over
// decoded JSON rather than a type mapping: the first matching rule
// wins, arrays are normalised element-wise, and anything unmatched
// falls through to a structurally-cleaned copy instead of erroring.
//
// fieldName is a hint, not a schema: it only sharpens the name-bearing
// rule (project fields keep their short key) and triggers the comment
// collection rewrite.
func NormalizeField(v any, fieldName string) any {
	switch val := v.(type) {
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = NormalizeField(item, fieldName)
		}
		return out
	case map[string]any:
		return normalizeObject(val, fieldName)
	default:
		// Primitives and nil pass through unchanged.
		return v
	}
}

// normalizeObject applies the cascade to a single JSON object.
func normalizeObject(obj map[string]any, fieldName string) any {
	hint := strings.ToLower(fieldName)

	// 1. Actor shape: anything that names a person.
	if hasKey(obj, "emailAddress") || hasKey(obj, "displayName") {
		return map[string]any{
			"displayName":  stringOr(obj["displayName"], ""),
			"emailAddress": stringOr(obj["emailAddress"], ""),
		}
	}

	// 2. Rich-text document: flatten to plain text.
	if typ, _ := obj["type"].(string); typ == adfDoc {
		return ADFToText(obj)
	}

	// 3. Name-bearing entity; project-like fields keep their short key.
	if hasKey(obj, "name") {
		out := map[string]any{"name": stringOr(obj["name"], "")}
		if strings.Contains(hint, "project") {
			if key, ok := obj["key"].(string); ok && key != "" {
				out["key"] = key
			}
		}
		return out
	}

	// 4. Enumerated option: value plus id when present.
	if hasKey(obj, "value") {
		out := map[string]any{"value": obj["value"]}
		if id, ok := obj["id"]; ok {
			out["id"] = id
		}
		return out
	}

	// 5. Comment collection, hinted by the field name.
	if strings.Contains(hint, "comment") {
		if comments, ok := obj["comments"].([]any); ok {
			out := make([]any, len(comments))
			for i, raw := range comments {
				out[i] = normalizeComment(raw)
			}
			return out
		}
	}

	// 6. Fallback: clean every property, preserving keys.
	out := make(map[string]any, len(obj))
	for key, val := range obj {
		out[key] = NormalizeField(val, fieldName)
	}
	return out
}

// normalizeComment rewrites one comment object to {authorEmail, body}.
func normalizeComment(v any) any {
	obj, ok := v.(map[string]any)
	if !ok {
		return v
	}
	var email string
	if author, ok := obj["author"].(map[string]any); ok {
		email = stringOr(author["emailAddress"], "")
	}
	return map[string]any{
		"authorEmail": email,
		"body":        ADFToText(obj["body"]),
	}
}

// NormalizeFields applies the cascade across an issue's field map.
func NormalizeFields(fields map[string]any) map[string]any {
	if fields == nil {
		return nil
	}
	out := make(map[string]any, len(fields))
	for name, value := range fields {
		out[name] = NormalizeField(value, name)
	}
	return out
}

func hasKey(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}

func stringOr(v any, fallback string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fallback
}
