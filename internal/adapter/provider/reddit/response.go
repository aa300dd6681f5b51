package reddit

// aboutResponse is the raw shape of /user/<name>/about/.json.
type aboutResponse struct {
	Data aboutData `json:"data"`
}

type aboutData struct {
	LinkKarma    int     `json:"link_karma"`
	CommentKarma int     `json:"comment_karma"`
	TotalKarma   int     `json:"total_karma"`
	CreatedUTC   float64 `json:"created_utc"`
	Verified     bool    `json:"verified"`
	IsGold       bool    `json:"is_gold"`
	IconImg      string  `json:"icon_img"`
	BannerImg    string  `json:"banner_img"`

	Subreddit aboutSubreddit `json:"subreddit"`
}

// aboutSubreddit is the user's profile "subreddit" carrying bio text.
type aboutSubreddit struct {
	PublicDescription string `json:"public_description"`
	Description       string `json:"description"`
}

// listingResponse is the raw shape of /submitted/.json and /comments/.json.
type listingResponse struct {
	Data listingData `json:"data"`
}

type listingData struct {
	Children []listingChild `json:"children"`
}

type listingChild struct {
	Data itemData `json:"data"`
}

// itemData covers both posts and comments: posts carry title/selftext,
// comments carry body.
type itemData struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	SelfText   string  `json:"selftext"`
	Body       string  `json:"body"`
	Subreddit  string  `json:"subreddit"`
	Score      int     `json:"score"`
	CreatedUTC float64 `json:"created_utc"`
	Permalink  string  `json:"permalink"`
}
