package content

import (
	"errors"
	"strings"
	"testing"
)

func TestDefinitionValidateRequiredFields(t *testing.T) {
	def, ok := Lookup("story")
	if !ok {
		t.Fatal("story definition missing")
	}

	tests := []struct {
		name    string
		fields  Fields
		wantErr string
	}{
		{
			name:   "all required present",
			fields: Fields{"artisanName": "Meera", "craftType": "Pottery", "region": "Rajasthan"},
		},
		{
			name:    "missing region",
			fields:  Fields{"artisanName": "Meera", "craftType": "Pottery"},
			wantErr: "region is required",
		},
		{
			name:    "whitespace only counts as absent",
			fields:  Fields{"artisanName": "  ", "craftType": "Pottery", "region": "Rajasthan"},
			wantErr: "artisanName is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := def.Validate(tc.fields)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate returned error: %v", err)
				}
				return
			}
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate returned %T, want *Error", err)
			}
			if cerr.Kind != KindValidation {
				t.Fatalf("Kind = %q, want %q", cerr.Kind, KindValidation)
			}
			if cerr.Message != tc.wantErr {
				t.Fatalf("Message = %q, want %q", cerr.Message, tc.wantErr)
			}
		})
	}
}

func TestDefinitionsCoverEveryEndpoint(t *testing.T) {
	wantKeys := map[string]string{
		"/api/generate-story":          "story",
		"/api/analyze-photo":           "analysis",
		"/api/enhance-photo":           "suggestions",
		"/api/generate-social-content": "content",
		"/api/content-calendar":        "calendar",
		"/api/market-trends":           "analysis",
		"/api/pricing-suggestions":     "pricing",
	}
	if len(Definitions) != len(wantKeys) {
		t.Fatalf("Definitions has %d entries, want %d", len(Definitions), len(wantKeys))
	}
	for _, def := range Definitions {
		key, ok := wantKeys[def.Path]
		if !ok {
			t.Fatalf("unexpected path %q", def.Path)
		}
		if def.SuccessKey != key {
			t.Fatalf("%s success key = %q, want %q", def.Path, def.SuccessKey, key)
		}
		if def.Build == nil {
			t.Fatalf("%s has no builder", def.Path)
		}
		if def.MaxTokens <= 0 || def.Temperature <= 0 {
			t.Fatalf("%s has unset generation parameters", def.Path)
		}
	}
}

func TestParseFields(t *testing.T) {
	fields, err := ParseFields(strings.NewReader(`{"craftType":"Pottery","quantity":2,"flag":true,"nested":{"a":1}}`))
	if err != nil {
		t.Fatalf("ParseFields returned error: %v", err)
	}
	if fields.Get("craftType") != "Pottery" {
		t.Fatalf("craftType = %q", fields.Get("craftType"))
	}
	if fields.Get("quantity") != "2" {
		t.Fatalf("quantity = %q, want %q", fields.Get("quantity"), "2")
	}
	if fields.Get("flag") != "true" {
		t.Fatalf("flag = %q, want %q", fields.Get("flag"), "true")
	}
	if fields.Has("nested") {
		t.Fatal("nested objects should be ignored")
	}
}

func TestParseFieldsRejectsMalformedJSON(t *testing.T) {
	_, err := ParseFields(strings.NewReader(`{"craftType":`))
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != KindValidation {
		t.Fatalf("ParseFields error = %v, want validation error", err)
	}
}

func TestEstimateImageBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"base64 data uri", "data:image/png;base64," + strings.Repeat("A", 400), 300},
		{"bare base64", strings.Repeat("B", 400), 300},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateImageBytes(tc.input); got != tc.want {
				t.Fatalf("EstimateImageBytes = %d, want %d", got, tc.want)
			}
		})
	}
}
