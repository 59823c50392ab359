package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Tags is a list of free-text descriptors ("rooftop", "romantic").
// The backend sends them as a JSON array, as a JSON-encoded array inside a
// string, or as a comma-separated string.
type Tags []string

func (t *Tags) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	if data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*t = cleanTags(list)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*t = ParseTags(s)
	return nil
}

// ParseTags decodes a serialized tag string. Malformed JSON falls back to
// comma splitting.
func ParseTags(s string) Tags {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var list []string
		if err := json.Unmarshal([]byte(s), &list); err == nil {
			return cleanTags(list)
		}
		s = strings.Trim(s, "[]")
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"'`)
	}
	return cleanTags(parts)
}

func cleanTags(list []string) Tags {
	out := make(Tags, 0, len(list))
	for _, tag := range list {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			out = append(out, tag)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Contains reports whether any tag contains one of the keywords,
// case-insensitively.
func (t Tags) Contains(keywords ...string) bool {
	for _, tag := range t {
		lower := strings.ToLower(tag)
		for _, k := range keywords {
			if strings.Contains(lower, k) {
				return true
			}
		}
	}
	return false
}
