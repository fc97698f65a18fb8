package dto

// SocialProfile identifies one social account to resolve followers for.
// Followers is nil when the count is unknown, never zero.
type SocialProfile struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Username  string `json:"username,omitempty"`
	Followers *int64 `json:"followers"`
	Verified  bool   `json:"verified,omitempty"`
}

// SocialFollowersRequest carries the profiles to enrich.
type SocialFollowersRequest struct {
	Profiles []SocialProfile `json:"profiles"`
}

// SocialFollowersResponse returns the enriched profiles plus the summed total.
type SocialFollowersResponse struct {
	Success        bool            `json:"success"`
	Profiles       []SocialProfile `json:"profiles"`
	TotalFollowers int64           `json:"totalFollowers"`
	Error          string          `json:"error,omitempty"`
}
