// Package provider defines the result types shared between external provider
// adapters and the services that consume them.
package provider

// InferenceResult is the outcome of a successful text-generation call:
// the raw response text and the model identifier that produced it.
// Exhaustion of the fallback chain is reported as an error wrapping
// domain.ErrInferenceExhausted, not as a zero InferenceResult.
type InferenceResult struct {
	Text  string
	Model string
}
