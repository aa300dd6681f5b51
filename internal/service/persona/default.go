package persona

import "github.com/heartmarshall/personalens/internal/domain"

// DefaultPersona builds the deterministic fallback persona used whenever
// inference fails or its output cannot be parsed. Given the same profile,
// two defaults are identical except for the generation timestamp.
func (s *Service) DefaultPersona(prof *domain.StatisticalProfile) *domain.Persona {
	return &domain.Persona{
		Name:    prof.Username + " Persona",
		Profile: prof,

		AgeRange:           "Unknown",
		OccupationCategory: "Unknown",
		Status:             "Unknown",
		LocationType:       "Unknown",
		Tier:               "Unknown",
		Archetype:          "Unknown",

		PersonalityTraits: []string{"Unknown"},
		Motivations:       map[string]int{},
		PersonalityScores: map[string]float64{},

		BehaviorHabits: []string{"Unknown"},
		Frustrations:   []string{"Unknown"},
		GoalsNeeds:     []string{"Unknown"},

		Quote:     "No quote available",
		Citations: map[string][]string{},

		GeneratedAt: s.now(),
	}
}
