package persona

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/personalens/internal/provider"
)

var fixedNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// llmStub is a func-field mock of the textGenerator interface.
type llmStub struct {
	GenerateFunc func(ctx context.Context, prompt string) (provider.InferenceResult, error)
	prompts      []string
}

func (m *llmStub) Generate(ctx context.Context, prompt string) (provider.InferenceResult, error) {
	m.prompts = append(m.prompts, prompt)
	return m.GenerateFunc(ctx, prompt)
}

func newTestService(t *testing.T, llm textGenerator) *Service {
	t.Helper()
	return &Service{
		log: slog.Default(),
		llm: llm,
		now: func() time.Time { return fixedNow },
	}
}

const fullPayload = `Sure! Here is the persona you asked for:
{
  "name": "The Pragmatic Builder",
  "age_range": "25-35",
  "occupation_category": "Technology",
  "status": "Professional",
  "location_type": "Urban",
  "tier": "Early Adopter",
  "archetype": "The Creator",
  "personality_traits": ["Practical", "Analytical", "Helpful", "Critical"],
  "motivations": {"CONVENIENCE": 7, "SPEED": 9},
  "personality_scores": {"introvert_extrovert": 0.3, "feeling_thinking": 0.8},
  "behavior_habits": ["posts late at night", "answers beginner questions", "links to docs"],
  "frustrations": ["flaky tooling", "vague bug reports", "meetings"],
  "goals_needs": ["ship reliable software", "learn new languages", "automate chores"],
  "quote": "Works on my machine is not a test plan.",
  "citations": {
    "personality_traits": ["abc123: I benchmarked all three options"],
    "frustrations": ["def456: the build broke again"]
  }
}
Hope this helps!`

func TestParse_HappyPathRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	prof := testProfile()

	p := svc.Parse(fullPayload, prof)

	require.NotNil(t, p)
	assert.Equal(t, "The Pragmatic Builder", p.Name)
	assert.Same(t, prof, p.Profile)
	assert.Equal(t, "25-35", p.AgeRange)
	assert.Equal(t, "Technology", p.OccupationCategory)
	assert.Equal(t, "Professional", p.Status)
	assert.Equal(t, "Urban", p.LocationType)
	assert.Equal(t, "Early Adopter", p.Tier)
	assert.Equal(t, "The Creator", p.Archetype)
	assert.Equal(t, []string{"Practical", "Analytical", "Helpful", "Critical"}, p.PersonalityTraits)
	assert.Equal(t, map[string]int{"CONVENIENCE": 7, "SPEED": 9}, p.Motivations)
	assert.Equal(t, map[string]float64{"introvert_extrovert": 0.3, "feeling_thinking": 0.8}, p.PersonalityScores)
	assert.Len(t, p.BehaviorHabits, 3)
	assert.Len(t, p.Frustrations, 3)
	assert.Len(t, p.GoalsNeeds, 3)
	assert.Equal(t, "Works on my machine is not a test plan.", p.Quote)
	assert.Equal(t, []string{"abc123: I benchmarked all three options"}, p.Citations["personality_traits"])
	assert.Equal(t, fixedNow, p.GeneratedAt)
}

func TestParse_NoJSONYieldsDefault(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	prof := testProfile()

	for _, raw := range []string{"no json here", "", "}{", "{", "just { a brace"} {
		p := svc.Parse(raw, prof)
		assert.Equal(t, svc.DefaultPersona(prof), p, "raw=%q", raw)
	}
}

func TestParse_MalformedJSONYieldsDefault(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	prof := testProfile()

	p := svc.Parse(`{"name": "Truncated", "age_range":`+"}", prof)
	assert.Equal(t, svc.DefaultPersona(prof), p)
}

func TestParse_DefaultIsDeterministic(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	prof := testProfile()

	first := svc.Parse("garbage", prof)
	second := svc.Parse("different garbage", prof)

	assert.Equal(t, first, second)
}

func TestParse_MissingQuoteKey(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	p := svc.Parse(`{"name": "Quiet One", "age_range": "45+"}`, testProfile())

	assert.Equal(t, "", p.Quote)
	assert.Equal(t, "Quiet One", p.Name)
	assert.Equal(t, "45+", p.AgeRange)
	// Everything else degrades field-by-field.
	assert.Equal(t, "Unknown", p.Status)
	assert.Empty(t, p.PersonalityTraits)
	assert.Empty(t, p.Motivations)
}

func TestParse_MissingNameFallsBackToUsername(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	p := svc.Parse(`{"age_range": "18-25"}`, testProfile())

	assert.Equal(t, "subject Persona", p.Name)
}

func TestParse_WrongShapeFieldsDegradeIndividually(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	p := svc.Parse(`{
		"name": 42,
		"personality_traits": "not a list",
		"motivations": ["not", "a", "map"],
		"personality_scores": {"introvert_extrovert": "high", "feeling_thinking": 0.5},
		"behavior_habits": ["valid", 7, "entries"],
		"citations": {"goals_needs": ["ok: fine"], "broken": "not a list"},
		"quote": "still here"
	}`, testProfile())

	assert.Equal(t, "subject Persona", p.Name)
	assert.Empty(t, p.PersonalityTraits)
	assert.Empty(t, p.Motivations)
	// Only the numeric axis survives.
	assert.Equal(t, map[string]float64{"feeling_thinking": 0.5}, p.PersonalityScores)
	// Non-string list entries are dropped, not fatal.
	assert.Equal(t, []string{"valid", "entries"}, p.BehaviorHabits)
	assert.Equal(t, map[string][]string{"goals_needs": {"ok: fine"}}, p.Citations)
	assert.Equal(t, "still here", p.Quote)
}

func TestParse_MotivationValuesTruncatedToInt(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	p := svc.Parse(`{"motivations": {"SPEED": 7.9, "COMFORT": 3}}`, testProfile())

	assert.Equal(t, map[string]int{"SPEED": 7, "COMFORT": 3}, p.Motivations)
}

func TestParse_JSONInsideMarkdownFences(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	p := svc.Parse("```json\n{\"name\": \"Fenced\"}\n```", testProfile())

	assert.Equal(t, "Fenced", p.Name)
}

func TestDefaultPersona_Shape(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, nil)
	prof := testProfile()

	p := svc.DefaultPersona(prof)

	assert.Equal(t, "subject Persona", p.Name)
	assert.Same(t, prof, p.Profile)
	for _, label := range []string{p.AgeRange, p.OccupationCategory, p.Status, p.LocationType, p.Tier, p.Archetype} {
		assert.Equal(t, "Unknown", label)
	}
	assert.Equal(t, []string{"Unknown"}, p.PersonalityTraits)
	assert.Equal(t, []string{"Unknown"}, p.BehaviorHabits)
	assert.Equal(t, []string{"Unknown"}, p.Frustrations)
	assert.Equal(t, []string{"Unknown"}, p.GoalsNeeds)
	assert.NotNil(t, p.Motivations)
	assert.Empty(t, p.Motivations)
	assert.NotNil(t, p.PersonalityScores)
	assert.Empty(t, p.PersonalityScores)
	assert.Equal(t, "No quote available", p.Quote)
	assert.NotNil(t, p.Citations)
	assert.Empty(t, p.Citations)
	assert.Empty(t, p.Model)
	assert.Equal(t, fixedNow, p.GeneratedAt)
}
