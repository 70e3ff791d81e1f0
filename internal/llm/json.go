package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ExtractJSON slices the first { to the last } out of model output,
// tolerating markdown fences and prose around the object.
func ExtractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}

// DecodeJSON extracts and unmarshals a JSON object from model output.
func DecodeJSON(text string, v any) error {
	raw := ExtractJSON(text)
	if raw == "" || !json.Valid([]byte(raw)) {
		return errors.New("model returned non-json output")
	}
	return json.Unmarshal([]byte(raw), v)
}
