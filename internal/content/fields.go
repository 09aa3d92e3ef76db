package content

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Fields is the flat bag of named values carried by a content request.
// Values are kept as submitted; templates interpolate them as literal text.
type Fields map[string]string

// Get returns the trimmed value for key, or "" when absent.
func (f Fields) Get(key string) string {
	return strings.TrimSpace(f[key])
}

// Has reports whether key is present with a non-empty value.
func (f Fields) Has(key string) bool {
	return f.Get(key) != ""
}

// ParseFields decodes a JSON request body into a field bag. Non-string
// scalar values are stringified; nested objects and arrays are ignored
// since no endpoint accepts them.
func ParseFields(r io.Reader) (Fields, error) {
	var raw map[string]any
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, ValidationError("invalid JSON body")
	}
	fields := make(Fields, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			fields[key] = v
		case float64:
			fields[key] = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), ".")
		case bool:
			fields[key] = fmt.Sprintf("%t", v)
		}
	}
	return fields, nil
}

// EstimateImageBytes approximates the decoded size of an inline image
// reference. Data URIs carry base64 payloads, so the decoded size is 3/4
// of the encoded length; anything else is counted as-is.
func EstimateImageBytes(imageData string) int64 {
	payload := imageData
	if idx := strings.Index(imageData, ","); idx >= 0 && strings.HasPrefix(imageData, "data:") {
		payload = imageData[idx+1:]
	}
	if strings.Contains(imageData, ";base64,") || !strings.HasPrefix(imageData, "data:") {
		return int64(len(payload)) * 3 / 4
	}
	return int64(len(payload))
}
