package dto

// PageSpeedRequest identifies the site to audit.
type PageSpeedRequest struct {
	URL      string `json:"url"`
	Strategy string `json:"strategy,omitempty"`
}

// PageSpeedScores holds the 0-100 Lighthouse category scores; nil means unscored.
type PageSpeedScores struct {
	Performance   *int `json:"performance"`
	Accessibility *int `json:"accessibility"`
	BestPractices *int `json:"bestPractices"`
	SEO           *int `json:"seo"`
}

// PageSpeedResponse is the site-performance envelope.
type PageSpeedResponse struct {
	Success bool             `json:"success"`
	Data    *PageSpeedScores `json:"data,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// GitHubStatsRequest identifies the org or user to look up.
type GitHubStatsRequest struct {
	Username string `json:"username"`
}

// GitHubStats summarises a developer-presence signal.
type GitHubStats struct {
	Username    string `json:"username"`
	PublicRepos *int   `json:"publicRepos"`
	Followers   *int   `json:"followers"`
	Stars       *int   `json:"stars"`
}

// GitHubStatsResponse is the developer-presence envelope.
type GitHubStatsResponse struct {
	Success bool         `json:"success"`
	Data    *GitHubStats `json:"data,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// YouTubeChannelRequest identifies the channel to look up.
type YouTubeChannelRequest struct {
	ChannelID string `json:"channelId"`
}

// YouTubeChannelStats carries the channel statistics used by the dashboard.
type YouTubeChannelStats struct {
	ChannelID   string `json:"channelId"`
	Title       string `json:"title,omitempty"`
	Subscribers *int64 `json:"subscribers"`
	Views       *int64 `json:"views"`
	Videos      *int64 `json:"videos"`
}

// YouTubeChannelResponse is the video-platform envelope.
type YouTubeChannelResponse struct {
	Success bool                 `json:"success"`
	Data    *YouTubeChannelStats `json:"data,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// TwitterFollowersRequest identifies the account to look up.
type TwitterFollowersRequest struct {
	Username string `json:"username"`
}

// TwitterFollowers carries the follower signal for one account.
type TwitterFollowers struct {
	Username  string `json:"username"`
	Followers *int64 `json:"followers"`
	Verified  bool   `json:"verified"`
}

// TwitterFollowersResponse is the social-graph envelope.
type TwitterFollowersResponse struct {
	Success bool              `json:"success"`
	Data    *TwitterFollowers `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// TrustpilotRequest identifies the business review page by website domain.
type TrustpilotRequest struct {
	Domain string `json:"domain"`
}

// TrustpilotSummary carries the scraped review signal.
type TrustpilotSummary struct {
	Domain      string   `json:"domain"`
	TrustScore  *float64 `json:"trustScore"`
	ReviewCount *int     `json:"reviewCount"`
	Reviews     []Review `json:"reviews"`
}

// TrustpilotResponse is the consumer-review envelope.
type TrustpilotResponse struct {
	Success bool               `json:"success"`
	Data    *TrustpilotSummary `json:"data,omitempty"`
	Error   string             `json:"error,omitempty"`
}

// SemrushRequest identifies the domain to profile.
type SemrushRequest struct {
	Domain string `json:"domain"`
}

// SemrushMetrics carries the scraped SEO signal.
type SemrushMetrics struct {
	Domain          string `json:"domain"`
	AuthorityScore  *int   `json:"authorityScore"`
	OrganicKeywords *int64 `json:"organicKeywords"`
	MonthlyTraffic  *int64 `json:"monthlyTraffic"`
	Backlinks       *int64 `json:"backlinks"`
}

// SemrushResponse is the SEO envelope.
type SemrushResponse struct {
	Success bool            `json:"success"`
	Data    *SemrushMetrics `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}
