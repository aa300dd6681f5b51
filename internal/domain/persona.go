package domain

import (
	"time"

	"github.com/google/uuid"
)

// Persona is the final structured, privacy-filtered behavioral-archetype
// record produced for a subject. It is immutable once constructed and always
// exists after a pipeline run: either populated from the inference service or
// replaced wholesale by a deterministic default. No partially-populated state
// is ever exposed downstream.
//
// Demographic and classification fields carry short free-form labels; the
// prompt recommends a vocabulary (age ranges like "25-35", archetypes like
// "The Creator") but the parser validates types only, never label values.
// Motivations and PersonalityScores are open maps: the recommended keys
// (CONVENIENCE/WELLNESS/... and introvert_extrovert/...) are a soft contract
// of the prompt template, and unknown keys are accepted as-is.
type Persona struct {
	Name    string              `json:"name"`
	Profile *StatisticalProfile `json:"profile"`

	AgeRange           string `json:"age_range"`
	OccupationCategory string `json:"occupation_category"`
	Status             string `json:"status"`
	LocationType       string `json:"location_type"`

	Tier      string `json:"tier"`
	Archetype string `json:"archetype"`

	PersonalityTraits []string           `json:"personality_traits"`
	Motivations       map[string]int     `json:"motivations"`        // 0-10 scale
	PersonalityScores map[string]float64 `json:"personality_scores"` // 0.0-1.0 axes

	BehaviorHabits []string `json:"behavior_habits"`
	Frustrations   []string `json:"frustrations"`
	GoalsNeeds     []string `json:"goals_needs"`

	Quote string `json:"quote"`

	// Citations maps a characteristic category to "source-id: excerpt" strings.
	Citations map[string][]string `json:"citations"`

	// Model is the inference model identifier that produced this persona,
	// empty for the default persona.
	Model       string    `json:"model,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// PersonaRun is one archived pipeline run: the subject analyzed, the persona
// produced, and the model that produced it.
type PersonaRun struct {
	ID        uuid.UUID
	Subject   string
	Model     string
	Persona   *Persona
	CreatedAt time.Time
}

// PersonaRunFilter selects archived runs in list queries.
// Zero-value fields are ignored.
type PersonaRunFilter struct {
	Subject      string
	CreatedAfter time.Time
	Limit        int
}
