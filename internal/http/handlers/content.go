package handlers

import (
	"net/http"

	"server/internal/content"
	"server/internal/providers/genai"
)

// Generate returns the handler for one content kind. The flow is identical
// for every kind: decode the field bag, check presence invariants, render
// the prompt, make one bounded backend call, wrap the text under the kind's
// success key.
func (a *App) Generate(def content.Definition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fields, err := content.ParseFields(r.Body)
		if err != nil {
			a.fail(w, err)
			return
		}
		if err := def.Validate(fields); err != nil {
			a.fail(w, err)
			return
		}
		if def.ImageField != "" {
			if content.EstimateImageBytes(fields.Get(def.ImageField)) > a.MaxImageBytes {
				a.fail(w, content.ValidationError(def.ImageField+" exceeds the maximum image size"))
				return
			}
		}

		spec := def.Build(fields)
		text, err := a.Generator.GenerateText(r.Context(), genai.GenerateRequest{
			Prompt:      spec.Text,
			Images:      spec.Images,
			MaxTokens:   def.MaxTokens,
			Temperature: def.Temperature,
		})
		if err != nil {
			a.Logger.Error().Err(err).Str("kind", def.Kind).Msg("generation failed")
			a.fail(w, content.BackendError(err))
			return
		}

		a.json(w, http.StatusOK, map[string]string{def.SuccessKey: text})
	}
}
