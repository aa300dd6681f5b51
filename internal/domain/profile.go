package domain

import "time"

// AccountMetadata is the raw account information produced by the retrieval
// layer. All fields are optional: a zero AccountMetadata is a valid input to
// aggregation and yields a profile with zeroed/empty fields.
type AccountMetadata struct {
	PostKarma    int
	CommentKarma int
	TotalKarma   int
	CreatedAt    time.Time // zero when the platform did not report it
	Verified     bool
	Premium      bool
	Bio          string
	Description  string // longer profile description, scanned for social links
	AvatarURL    string
	BannerURL    string
}

// Karma holds the karma triple copied verbatim from account metadata.
type Karma struct {
	Post    int `json:"post_karma"`
	Comment int `json:"comment_karma"`
	Total   int `json:"total_karma"`
}

// CommunityActivity is one entry of the top-communities ranking.
type CommunityActivity struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// StatisticalProfile is the derived, purely computed summary of a subject's
// account metadata and activity. It is created once per run by the profile
// aggregator and read-only afterward.
type StatisticalProfile struct {
	Username       string `json:"username"`
	Karma          Karma  `json:"karma"`
	Bio            string `json:"bio"`
	AccountAge     string `json:"account_age"` // coarse "N years, M months"; empty if unknown
	AccountCreated time.Time `json:"account_created"`

	// TopCommunities is ordered by activity count descending, ties broken by
	// first appearance in the record sequence. Bounded to 10 entries.
	TopCommunities []CommunityActivity `json:"most_active_communities"`

	SocialLinks []string `json:"social_links"`

	TotalPosts       int     `json:"total_posts"`
	TotalComments    int     `json:"total_comments"`
	AvgScore         float64 `json:"avg_score"`
	PostingFrequency string  `json:"posting_frequency"`

	Verified bool `json:"verified"`
	Premium  bool `json:"premium"`

	AvatarURL string `json:"profile_img"`
	BannerURL string `json:"banner_img"`
}
