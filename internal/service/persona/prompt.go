package persona

import (
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/personalens/internal/domain"
)

// Request payload bounds. The excerpt takes the first maxPromptRecords
// records in store order (no ranking) and truncates each body to
// maxBodyChars characters to respect the inference capability's input limits.
const (
	maxPromptRecords = 50
	maxBodyChars     = 500
)

// truncationMarker flags bodies cut at the character budget.
const truncationMarker = "... [truncated]"

// BuildPrompt serializes the profile and a bounded excerpt of the activity
// log into one inference request. The embedded instruction template is a
// contract: it enumerates the exact schema keys and value types the parser
// expects, plus the advisory constraint that no directly-identifying personal
// information be inferred. That constraint is advisory to the model; the
// parser enforces structure only, never privacy.
func BuildPrompt(prof *domain.StatisticalProfile, activity *domain.ActivityLog) string {
	return fmt.Sprintf(promptTemplate, profileBlock(prof), activityBlock(activity))
}

// profileBlock renders the statistical profile as a fixed-layout summary.
func profileBlock(prof *domain.StatisticalProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Username: %s\n", prof.Username)
	fmt.Fprintf(&b, "Account Age: %s\n", prof.AccountAge)
	if !prof.AccountCreated.IsZero() {
		fmt.Fprintf(&b, "Account Created: %s\n", prof.AccountCreated.Format(time.RFC3339))
	}

	b.WriteString("\nKARMA:\n")
	fmt.Fprintf(&b, "- Post Karma: %d\n", prof.Karma.Post)
	fmt.Fprintf(&b, "- Comment Karma: %d\n", prof.Karma.Comment)
	fmt.Fprintf(&b, "- Total Karma: %d\n", prof.Karma.Total)

	b.WriteString("\nACTIVITY:\n")
	fmt.Fprintf(&b, "- Total Posts: %d\n", prof.TotalPosts)
	fmt.Fprintf(&b, "- Total Comments: %d\n", prof.TotalComments)
	fmt.Fprintf(&b, "- Average Score: %.1f\n", prof.AvgScore)
	fmt.Fprintf(&b, "- Posting Frequency: %s\n", prof.PostingFrequency)

	b.WriteString("\nACTIVE COMMUNITIES:\n")
	if len(prof.TopCommunities) == 0 {
		b.WriteString("- None\n")
	}
	for _, c := range prof.TopCommunities {
		fmt.Fprintf(&b, "- r/%s: %d posts\n", c.Name, c.Count)
	}

	bio := prof.Bio
	if bio == "" {
		bio = "No bio provided"
	}
	fmt.Fprintf(&b, "\nBIO: %s\n", bio)

	links := "None"
	if len(prof.SocialLinks) > 0 {
		links = strings.Join(prof.SocialLinks, ", ")
	}
	fmt.Fprintf(&b, "\nSOCIAL LINKS: %s\n", links)

	b.WriteString("\nACCOUNT STATUS:\n")
	fmt.Fprintf(&b, "- Verified: %t\n", prof.Verified)
	fmt.Fprintf(&b, "- Premium: %t\n", prof.Premium)

	return b.String()
}

// activityBlock renders at most maxPromptRecords records as labeled blocks.
func activityBlock(activity *domain.ActivityLog) string {
	records := activity.Records()
	if len(records) > maxPromptRecords {
		records = records[:maxPromptRecords]
	}
	if len(records) == 0 {
		return "No posts or comments available.\n"
	}

	var b strings.Builder
	for i, rec := range records {
		fmt.Fprintf(&b, "\n--- Record %d (ID: %s) ---\n", i+1, rec.ID)
		fmt.Fprintf(&b, "Type: %s\n", rec.Kind)
		fmt.Fprintf(&b, "Community: r/%s\n", rec.Community)
		fmt.Fprintf(&b, "Score: %d\n", rec.Score)
		fmt.Fprintf(&b, "Date: %s\n", rec.CreatedAt.Format(time.RFC3339))
		if rec.Title != "" {
			fmt.Fprintf(&b, "Title: %s\n", rec.Title)
		}
		fmt.Fprintf(&b, "Content: %s\n", truncateBody(rec.Body))
	}
	return b.String()
}

// truncateBody cuts a body at the character budget, marking the cut.
func truncateBody(body string) string {
	runes := []rune(body)
	if len(runes) <= maxBodyChars {
		return body
	}
	return string(runes[:maxBodyChars]) + truncationMarker
}

const promptTemplate = `Analyze the following social-media user profile and posts/comments and create a detailed user persona like the professional personas used in UX design.

IMPORTANT: DO NOT extract or infer personally identifying information such as real names, exact ages, specific locations or addresses, identifying occupation details, or relationship/family information. Infer GENERAL categories and ranges only.

USER PROFILE INFORMATION:
%s

POSTS AND COMMENTS:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "name": "<generated persona name, not a real name>",
  "age_range": "<e.g. 18-25, 25-35, 35-45, 45+>",
  "occupation_category": "<e.g. Technology, Creative, Healthcare, Student, Business>",
  "status": "<e.g. Student, Professional, Freelancer, Retired>",
  "location_type": "<Urban, Suburban or Rural>",
  "tier": "<Early Adopter, Mainstream or Late Adopter, based on observed behavior>",
  "archetype": "<one of: The Creator, The Explorer, The Caregiver, The Rebel, The Sage, The Innocent, The Hero, The Magician, The Lover, The Jester, The Everyman, The Ruler>",
  "personality_traits": ["<trait1>", "<trait2>", "<trait3>", "<trait4>"],
  "motivations": {
    "CONVENIENCE": 7,
    "WELLNESS": 5,
    "SPEED": 6,
    "PREFERENCES": 8,
    "COMFORT": 7,
    "DIETARY_NEEDS": 6
  },
  "personality_scores": {
    "introvert_extrovert": 0.3,
    "intuition_sensing": 0.7,
    "feeling_thinking": 0.4,
    "perceiving_judging": 0.6
  },
  "behavior_habits": ["<3-5 specific behaviors observed in the activity>"],
  "frustrations": ["<3-5 pain points or complaints expressed in the posts>"],
  "goals_needs": ["<3-4 main objectives or desires based on the content>"],
  "quote": "<a representative quote capturing their communication style>",
  "citations": {
    "personality_traits": ["<record id>: <brief excerpt>"],
    "behavior_habits": ["<record id>: <brief excerpt>"],
    "frustrations": ["<record id>: <brief excerpt>"],
    "goals_needs": ["<record id>: <brief excerpt>"]
  }
}

Rules:
- Provide exactly 4 personality traits
- Rate each motivation 1-10; personality scores are 0.0-1.0 axes (INTROVERT 0.0 vs EXTROVERT 1.0, INTUITION 0.0 vs SENSING 1.0, FEELING 0.0 vs THINKING 1.0, PERCEIVING 0.0 vs JUDGING 1.0)
- Base all inferences on actual content from the posts and profile; focus on behavioral patterns, interests and communication style rather than personal details
- Output ONLY the JSON, no markdown, no explanations`
