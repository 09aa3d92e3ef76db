package content

import "fmt"

// Definition is the per-kind configuration record that drives the generic
// content handler: which fields must be present, how the prompt is built,
// the fixed generation parameters, and the key the generated text is
// returned under. Adding a content kind is a data change here, not new
// handler code.
type Definition struct {
	Kind        string
	Path        string
	SuccessKey  string
	Required    []string
	ImageField  string
	MaxTokens   int
	Temperature float64
	Build       BuilderFunc
}

// Validate checks the presence invariants for this kind. Field values are
// never inspected beyond non-emptiness; unknown sub-kind values route to a
// default template instead of failing.
func (d Definition) Validate(f Fields) error {
	for _, key := range d.Required {
		if !f.Has(key) {
			return ValidationError(fmt.Sprintf("%s is required", key))
		}
	}
	return nil
}

// Definitions lists every content kind the service generates, in route
// order. Parameter tuples are compile-time constants per kind and cannot be
// overridden by callers.
var Definitions = []Definition{
	{
		Kind:        "story",
		Path:        "/api/generate-story",
		SuccessKey:  "story",
		Required:    []string{"artisanName", "craftType", "region"},
		MaxTokens:   500,
		Temperature: 0.7,
		Build:       buildStoryPrompt,
	},
	{
		Kind:        "photo-analysis",
		Path:        "/api/analyze-photo",
		SuccessKey:  "analysis",
		Required:    []string{"imageData", "craftType", "productType"},
		ImageField:  "imageData",
		MaxTokens:   600,
		Temperature: 0.7,
		Build:       buildPhotoAnalysisPrompt,
	},
	{
		Kind:        "photo-enhancement",
		Path:        "/api/enhance-photo",
		SuccessKey:  "suggestions",
		Required:    []string{"imageData", "enhancementType"},
		ImageField:  "imageData",
		MaxTokens:   400,
		Temperature: 0.6,
		Build:       buildPhotoEnhancePrompt,
	},
	{
		Kind:        "social-content",
		Path:        "/api/generate-social-content",
		SuccessKey:  "content",
		Required:    []string{"platform", "contentType", "craftType", "region", "productName", "tone", "targetAudience"},
		MaxTokens:   800,
		Temperature: 0.7,
		Build:       buildSocialPrompt,
	},
	{
		Kind:        "content-calendar",
		Path:        "/api/content-calendar",
		SuccessKey:  "calendar",
		Required:    []string{"craftType", "region", "timeframe", "postFrequency"},
		MaxTokens:   1000,
		Temperature: 0.6,
		Build:       buildCalendarPrompt,
	},
	{
		Kind:        "market-analysis",
		Path:        "/api/market-trends",
		SuccessKey:  "analysis",
		Required:    []string{"craftType", "region", "timeframe", "analysisType"},
		MaxTokens:   1000,
		Temperature: 0.6,
		Build:       buildMarketPrompt,
	},
	{
		Kind:        "product-pricing",
		Path:        "/api/pricing-suggestions",
		SuccessKey:  "pricing",
		Required:    []string{"productName", "craftType", "materials", "timeToMake", "skillLevel", "region", "productSize", "uniqueFeatures"},
		MaxTokens:   600,
		Temperature: 0.5,
		Build:       buildPricingPrompt,
	},
}

// Lookup returns the definition for a content kind.
func Lookup(kind string) (Definition, bool) {
	for _, def := range Definitions {
		if def.Kind == kind {
			return def, true
		}
	}
	return Definition{}, false
}
