package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/personalens/internal/domain"
)

func samplePersona() *domain.Persona {
	return &domain.Persona{
		Name:               "someone Persona",
		AgeRange:           "25-35",
		OccupationCategory: "Technology",
		Status:             "Single",
		LocationType:       "Urban",
		Tier:               "Early Adopter",
		Archetype:          "The Creator",
		PersonalityTraits:  []string{"analytical", "curious"},
		Motivations:        map[string]int{"WELLNESS": 7, "SPEED": 3},
		PersonalityScores:  map[string]float64{"introvert_extrovert": 0.25},
		BehaviorHabits:     []string{"reads changelogs"},
		Frustrations:       []string{"flaky builds"},
		GoalsNeeds:         []string{"ship faster"},
		Quote:              "I build things",
		Citations:          map[string][]string{"personality_traits": {"p1: excerpt"}},
		Model:              "gemini-1.5-pro",
		GeneratedAt:        time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
		Profile: &domain.StatisticalProfile{
			Username:         "someone",
			Karma:            domain.Karma{Post: 1200, Comment: 3400, Total: 4600},
			AccountAge:       "8 years, 5 months",
			TopCommunities:   []domain.CommunityActivity{{Name: "golang", Count: 12}},
			SocialLinks:      []string{"https://github.com/someone"},
			TotalPosts:       10,
			TotalComments:    40,
			AvgScore:         4.5,
			PostingFrequency: "1.2 posts/day",
		},
	}
}

func TestText_ContainsSections(t *testing.T) {
	t.Parallel()

	out := Text(samplePersona())

	assert.Contains(t, out, "SOMEONE PERSONA")
	assert.Contains(t, out, "- Age Range: 25-35")
	assert.Contains(t, out, "[analytical]  [curious]")
	assert.Contains(t, out, "- r/golang: 12 posts")
	assert.Contains(t, out, `"I build things"`)
	assert.Contains(t, out, "Posting Frequency: 1.2 posts/day")
	assert.Contains(t, out, "PERSONALITY_TRAITS:")
	assert.Contains(t, out, "  - p1: excerpt")
	assert.Contains(t, out, "Generated on: 2025-06-15 12:00:00")
}

func TestText_MotivationBar(t *testing.T) {
	t.Parallel()

	out := Text(samplePersona())

	// WELLNESS=7 is 7 filled and 3 empty blocks.
	assert.Contains(t, out, strings.Repeat("█", 7)+strings.Repeat("░", 3))
	// SPEED=3 is 3 filled and 7 empty blocks.
	assert.Contains(t, out, strings.Repeat("█", 3)+strings.Repeat("░", 7))
}

func TestText_PersonalitySlider(t *testing.T) {
	t.Parallel()

	out := Text(samplePersona())

	// 0.25 on a 20-position slider puts the thumb at index 5.
	assert.Contains(t, out, "INTROVERT")
	assert.Contains(t, out, "EXTROVERT")
	assert.Contains(t, out, strings.Repeat("░", 5)+"█"+strings.Repeat("░", 14))
}

func TestText_EmptyCollections(t *testing.T) {
	t.Parallel()

	p := &domain.Persona{Name: "bare Persona", Quote: "No quote available"}
	out := Text(p)

	assert.Contains(t, out, "- None specified")
	assert.Contains(t, out, "- No citations available")
	assert.NotContains(t, out, "PROFILE DATA")
}

func TestText_MotivationClampedForDisplay(t *testing.T) {
	t.Parallel()

	p := samplePersona()
	p.Motivations = map[string]int{"OVER": 15}
	out := Text(p)

	assert.Contains(t, out, strings.Repeat("█", 10))
	assert.NotContains(t, out, strings.Repeat("█", 11))
}

func TestHTML_RendersAndEscapes(t *testing.T) {
	t.Parallel()

	p := samplePersona()
	p.Quote = `<script>alert("x")</script>`

	out, err := HTML(p)
	require.NoError(t, err)

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "someone Persona")
	assert.Contains(t, out, "r/golang (12)")
	assert.Contains(t, out, "https://github.com/someone")
	assert.NotContains(t, out, "<script>alert")
}

func TestHTML_EmptyPersona(t *testing.T) {
	t.Parallel()

	out, err := HTML(&domain.Persona{Name: "bare Persona"})
	require.NoError(t, err)

	assert.Contains(t, out, "None specified")
	assert.Contains(t, out, "No citations available")
}

func TestJSON_RoundTrips(t *testing.T) {
	t.Parallel()

	p := samplePersona()
	out, err := JSON(p)
	require.NoError(t, err)

	var got domain.Persona
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Motivations, got.Motivations)
	assert.Equal(t, p.Profile.Username, got.Profile.Username)
}
