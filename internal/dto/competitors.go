package dto

// CompetitorSearchRequest is the payload for the competitor discovery endpoint.
type CompetitorSearchRequest struct {
	BusinessName string `json:"businessName"`
	Address      string `json:"address"`
	Radius       int    `json:"radius,omitempty"`
	Limit        int    `json:"limit,omitempty"`
}

// Competitor is a nearby business discovered for the searched subject.
// Rating and ReviewCount stay nil when the provider did not measure them,
// so "unknown" is never flattened into zero.
type Competitor struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"reviewCount"`
	PlaceID     string   `json:"placeId"`
	Phone       *string  `json:"phone,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// CompetitorSearchResponse is the discovery envelope. Error carries an
// explanatory string on fail-open degradations while Success stays true.
type CompetitorSearchResponse struct {
	Success          bool         `json:"success"`
	Competitors      []Competitor `json:"competitors"`
	SearchedBusiness string       `json:"searchedBusiness"`
	Error            string       `json:"error,omitempty"`
}

// CompetitorReviewsRequest accepts a single place id or a batch.
type CompetitorReviewsRequest struct {
	PlaceID  string   `json:"placeId,omitempty"`
	PlaceIDs []string `json:"placeIds,omitempty"`
}

// Review is one customer review in provider-supplied order.
type Review struct {
	Author       string  `json:"author"`
	Rating       float64 `json:"rating"`
	Text         string  `json:"text"`
	Time         string  `json:"time"`
	RelativeTime string  `json:"relativeTime,omitempty"`
	AvatarURL    *string `json:"avatarUrl,omitempty"`
}

// PlaceReviews groups the reviews fetched for one place id.
type PlaceReviews struct {
	BusinessName string   `json:"businessName"`
	PlaceID      string   `json:"placeId"`
	Rating       *float64 `json:"rating"`
	ReviewCount  *int     `json:"reviewCount"`
	Reviews      []Review `json:"reviews"`
}

// CompetitorReviewsResponse is the batch review envelope.
type CompetitorReviewsResponse struct {
	Success            bool           `json:"success"`
	CompetitorsReviews []PlaceReviews `json:"competitorsReviews"`
	Error              string         `json:"error,omitempty"`
}

// AutocompletePrediction mirrors the place suggestion shape the dashboard consumes.
type AutocompletePrediction struct {
	Description          string               `json:"description"`
	PlaceID              string               `json:"place_id"`
	StructuredFormatting StructuredFormatting `json:"structured_formatting"`
}

// StructuredFormatting splits a prediction into main and secondary text.
type StructuredFormatting struct {
	MainText      string `json:"main_text"`
	SecondaryText string `json:"secondary_text"`
}

// AutocompleteResponse is the place autocomplete envelope.
type AutocompleteResponse struct {
	Success     bool                     `json:"success"`
	Predictions []AutocompletePrediction `json:"predictions"`
	Error       string                   `json:"error,omitempty"`
}
