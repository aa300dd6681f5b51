package persona

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/personalens/internal/domain"
)

// Parse extracts the persona JSON embedded in raw inference output and
// validates it into a Persona. It never fails: if no JSON object can be
// located or decoded, the deterministic default persona is returned; within
// a decoded object every field is independently optional and degrades to a
// type-appropriate default (missing string -> "Unknown", missing list ->
// empty list, missing mapping -> empty mapping). Unknown mapping keys are
// accepted as-is.
func (s *Service) Parse(raw string, prof *domain.StatisticalProfile) *domain.Persona {
	jsonStr, err := extractJSON(raw)
	if err != nil {
		return s.DefaultPersona(prof)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return s.DefaultPersona(prof)
	}

	return &domain.Persona{
		Name:    getString(fields, "name", prof.Username+" Persona"),
		Profile: prof,

		AgeRange:           getString(fields, "age_range", "Unknown"),
		OccupationCategory: getString(fields, "occupation_category", "Unknown"),
		Status:             getString(fields, "status", "Unknown"),
		LocationType:       getString(fields, "location_type", "Unknown"),
		Tier:               getString(fields, "tier", "Unknown"),
		Archetype:          getString(fields, "archetype", "Unknown"),

		PersonalityTraits: getStringList(fields, "personality_traits"),
		Motivations:       getIntMap(fields, "motivations"),
		PersonalityScores: getFloatMap(fields, "personality_scores"),

		BehaviorHabits: getStringList(fields, "behavior_habits"),
		Frustrations:   getStringList(fields, "frustrations"),
		GoalsNeeds:     getStringList(fields, "goals_needs"),

		Quote:     getString(fields, "quote", ""),
		Citations: getCitations(fields, "citations"),

		GeneratedAt: s.now(),
	}
}

// extractJSON finds the first complete JSON object in a string
// (between the first '{' and the last '}').
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}

// getString returns the string value at key, or def when the key is absent
// or holds a non-string value.
func getString(m map[string]any, key, def string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return def
}

// getStringList returns the string entries of the list at key. Non-string
// entries are dropped; a missing or wrong-shape value yields an empty list.
func getStringList(m map[string]any, key string) []string {
	out := []string{}
	raw, ok := m[key].([]any)
	if !ok {
		return out
	}
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getIntMap returns the numeric entries of the mapping at key, truncated to
// integers. JSON numbers decode as float64.
func getIntMap(m map[string]any, key string) map[string]int {
	out := map[string]int{}
	raw, ok := m[key].(map[string]any)
	if !ok {
		return out
	}
	for k, v := range raw {
		if n, ok := v.(float64); ok {
			out[k] = int(n)
		}
	}
	return out
}

// getFloatMap returns the numeric entries of the mapping at key.
func getFloatMap(m map[string]any, key string) map[string]float64 {
	out := map[string]float64{}
	raw, ok := m[key].(map[string]any)
	if !ok {
		return out
	}
	for k, v := range raw {
		if n, ok := v.(float64); ok {
			out[k] = n
		}
	}
	return out
}

// getCitations returns the category -> excerpt-list mapping at key.
// Categories with wrong-shape values are dropped; non-string excerpts are
// skipped within an otherwise valid list.
func getCitations(m map[string]any, key string) map[string][]string {
	out := map[string][]string{}
	raw, ok := m[key].(map[string]any)
	if !ok {
		return out
	}
	for category, v := range raw {
		list, ok := v.([]any)
		if !ok {
			continue
		}
		entries := []string{}
		for _, e := range list {
			if s, ok := e.(string); ok {
				entries = append(entries, s)
			}
		}
		out[category] = entries
	}
	return out
}
