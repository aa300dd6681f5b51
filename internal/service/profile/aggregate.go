package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/heartmarshall/personalens/internal/domain"
)

// topCommunitiesLimit bounds the top-communities ranking.
const topCommunitiesLimit = 10

// Aggregate derives a StatisticalProfile from raw account metadata and the
// subject's activity log. It always terminates with a fully-populated
// profile: karma is copied verbatim, counts/averages are computed over the
// records, and fields without data stay at their zero values.
func (s *Service) Aggregate(ctx context.Context, username string, meta domain.AccountMetadata, activity *domain.ActivityLog) *domain.StatisticalProfile {
	records := activity.Records()

	prof := &domain.StatisticalProfile{
		Username: username,
		Karma: domain.Karma{
			Post:    meta.PostKarma,
			Comment: meta.CommentKarma,
			Total:   meta.TotalKarma,
		},
		Bio:            meta.Bio,
		AccountCreated: meta.CreatedAt,
		Verified:       meta.Verified,
		Premium:        meta.Premium,
		AvatarURL:      meta.AvatarURL,
		BannerURL:      meta.BannerURL,
	}

	if !meta.CreatedAt.IsZero() {
		prof.AccountAge = ageDescription(s.now(), meta.CreatedAt)
	}

	prof.SocialLinks = ExtractSocialLinks(meta.Bio + " " + meta.Description)

	var totalScore int
	for _, rec := range records {
		switch rec.Kind {
		case domain.KindPost:
			prof.TotalPosts++
		case domain.KindComment:
			prof.TotalComments++
		}
		totalScore += rec.Score
	}
	if len(records) > 0 {
		prof.AvgScore = float64(totalScore) / float64(len(records))
	}

	prof.TopCommunities = topCommunities(records)
	prof.PostingFrequency = classifyFrequency(records)

	s.log.DebugContext(ctx, "profile aggregated",
		slog.String("username", username),
		slog.Int("posts", prof.TotalPosts),
		slog.Int("comments", prof.TotalComments),
		slog.Int("communities", len(prof.TopCommunities)),
	)

	return prof
}

// topCommunities tallies activity per community label and returns the top 10
// by count descending. Ties keep the order communities first appear in the
// record sequence (stable sort).
func topCommunities(records []domain.ActivityRecord) []domain.CommunityActivity {
	counts := make(map[string]int)
	var firstSeen []string

	for _, rec := range records {
		if rec.Community == "" {
			continue
		}
		if _, ok := counts[rec.Community]; !ok {
			firstSeen = append(firstSeen, rec.Community)
		}
		counts[rec.Community]++
	}

	ranked := make([]domain.CommunityActivity, 0, len(firstSeen))
	for _, name := range firstSeen {
		ranked = append(ranked, domain.CommunityActivity{Name: name, Count: counts[name]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topCommunitiesLimit {
		ranked = ranked[:topCommunitiesLimit]
	}
	return ranked
}

// ageDescription renders the account age as a coarse (years, months) string,
// e.g. "2 years, 3 months" or "7 months" for accounts younger than a year.
func ageDescription(now, created time.Time) string {
	days := int(now.Sub(created).Hours() / 24)
	if days < 0 {
		days = 0
	}

	years := days / 365
	months := (days % 365) / 30

	if years > 0 {
		return fmt.Sprintf("%s, %s", plural(years, "year"), plural(months, "month"))
	}
	return plural(months, "month")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
