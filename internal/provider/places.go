package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nyaruka/phonenumbers"
)

const defaultPlacesBaseURL = "https://maps.googleapis.com/maps/api"

// PlacesClient talks to the Google Maps / Places web services.
type PlacesClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
}

// NewPlacesClient builds a Places adapter. A nil client gets a 10s timeout.
func NewPlacesClient(client *http.Client, apiKey, baseURL string) *PlacesClient {
	if client == nil {
		client = defaultClient(10 * time.Second)
	}
	if baseURL == "" {
		baseURL = defaultPlacesBaseURL
	}
	return &PlacesClient{client: client, apiKey: apiKey, baseURL: baseURL}
}

// LatLng is a resolved geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NearbyPlace is one raw nearby-search result, in upstream order.
type NearbyPlace struct {
	Name        string
	Vicinity    string
	Rating      *float64
	ReviewCount *int
	PlaceID     string
	Category    *string
}

// PlaceReview is one raw review from place details, in upstream order.
type PlaceReview struct {
	Author       string
	Rating       float64
	Text         string
	Time         int64
	RelativeTime string
	AvatarURL    *string
}

// PlaceDetail carries the subset of place details the system consumes.
type PlaceDetail struct {
	Name        string
	Rating      *float64
	ReviewCount *int
	Phone       *string
	Website     *string
	Reviews     []PlaceReview
}

// Prediction is one autocomplete suggestion.
type Prediction struct {
	Description   string
	PlaceID       string
	MainText      string
	SecondaryText string
}

// Geocode resolves a postal address into coordinates. A zero-result response
// is an error so callers can degrade with an explanation.
func (p *PlacesClient) Geocode(ctx context.Context, address string) (*LatLng, error) {
	if address == "" {
		return nil, fmt.Errorf("address is required")
	}
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/geocode/json?address=%s&key=%s",
		p.baseURL, url.QueryEscape(address), url.QueryEscape(p.apiKey))

	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location LatLng `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := getJSON(ctx, p.client, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("geocode: %w", err)
	}
	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, fmt.Errorf("geocode returned no results for address (status %s)", resp.Status)
	}

	loc := resp.Results[0].Geometry.Location
	return &loc, nil
}

// NearbySearch finds places around the coordinates matching the keyword.
// Results come back in upstream ranking order; no sort is imposed.
func (p *PlacesClient) NearbySearch(ctx context.Context, loc LatLng, radius int, keyword string) ([]NearbyPlace, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}
	if radius <= 0 {
		radius = 5000
	}

	endpoint := fmt.Sprintf("%s/place/nearbysearch/json?location=%f,%f&radius=%d&keyword=%s&key=%s",
		p.baseURL, loc.Lat, loc.Lng, radius, url.QueryEscape(keyword), url.QueryEscape(p.apiKey))

	var resp struct {
		Status  string `json:"status"`
		Results []struct {
			Name             string   `json:"name"`
			Vicinity         string   `json:"vicinity"`
			Rating           *float64 `json:"rating"`
			UserRatingsTotal *int     `json:"user_ratings_total"`
			PlaceID          string   `json:"place_id"`
			Types            []string `json:"types"`
		} `json:"results"`
	}
	if err := getJSON(ctx, p.client, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("nearby search: %w", err)
	}
	if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("nearby search failed with status %s", resp.Status)
	}

	places := make([]NearbyPlace, 0, len(resp.Results))
	for _, r := range resp.Results {
		place := NearbyPlace{
			Name:        r.Name,
			Vicinity:    r.Vicinity,
			Rating:      r.Rating,
			ReviewCount: r.UserRatingsTotal,
			PlaceID:     r.PlaceID,
		}
		if len(r.Types) > 0 {
			category := r.Types[0]
			place.Category = &category
		}
		places = append(places, place)
	}
	return places, nil
}

// Details fetches name, rating and reviews for one place id.
func (p *PlacesClient) Details(ctx context.Context, placeID string) (*PlaceDetail, error) {
	if placeID == "" {
		return nil, fmt.Errorf("place id is required")
	}
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/place/details/json?place_id=%s&fields=%s&key=%s",
		p.baseURL,
		url.QueryEscape(placeID),
		url.QueryEscape("name,rating,user_ratings_total,reviews,formatted_phone_number,website"),
		url.QueryEscape(p.apiKey))

	var resp struct {
		Status string `json:"status"`
		Result struct {
			Name             string   `json:"name"`
			Rating           *float64 `json:"rating"`
			UserRatingsTotal *int     `json:"user_ratings_total"`
			Phone            *string  `json:"formatted_phone_number"`
			Website          *string  `json:"website"`
			Reviews          []struct {
				AuthorName      string  `json:"author_name"`
				Rating          float64 `json:"rating"`
				Text            string  `json:"text"`
				Time            int64   `json:"time"`
				RelativeTime    string  `json:"relative_time_description"`
				ProfilePhotoURL *string `json:"profile_photo_url"`
			} `json:"reviews"`
		} `json:"result"`
	}
	if err := getJSON(ctx, p.client, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("place details failed with status %s", resp.Status)
	}

	detail := &PlaceDetail{
		Name:        resp.Result.Name,
		Rating:      resp.Result.Rating,
		ReviewCount: resp.Result.UserRatingsTotal,
		Phone:       normalizePhone(resp.Result.Phone),
		Website:     resp.Result.Website,
	}
	for _, r := range resp.Result.Reviews {
		detail.Reviews = append(detail.Reviews, PlaceReview{
			Author:       r.AuthorName,
			Rating:       r.Rating,
			Text:         r.Text,
			Time:         r.Time,
			RelativeTime: r.RelativeTime,
			AvatarURL:    r.ProfilePhotoURL,
		})
	}
	return detail, nil
}

// Autocomplete returns place suggestions for a partial input.
func (p *PlacesClient) Autocomplete(ctx context.Context, input string) ([]Prediction, error) {
	if input == "" {
		return nil, fmt.Errorf("input is required")
	}
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/place/autocomplete/json?input=%s&key=%s",
		p.baseURL, url.QueryEscape(input), url.QueryEscape(p.apiKey))

	var resp struct {
		Status      string `json:"status"`
		Predictions []struct {
			Description          string `json:"description"`
			PlaceID              string `json:"place_id"`
			StructuredFormatting struct {
				MainText      string `json:"main_text"`
				SecondaryText string `json:"secondary_text"`
			} `json:"structured_formatting"`
		} `json:"predictions"`
	}
	if err := getJSON(ctx, p.client, endpoint, nil, &resp); err != nil {
		return nil, fmt.Errorf("autocomplete: %w", err)
	}
	if resp.Status != "OK" && resp.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("autocomplete failed with status %s", resp.Status)
	}

	predictions := make([]Prediction, 0, len(resp.Predictions))
	for _, pr := range resp.Predictions {
		predictions = append(predictions, Prediction{
			Description:   pr.Description,
			PlaceID:       pr.PlaceID,
			MainText:      pr.StructuredFormatting.MainText,
			SecondaryText: pr.StructuredFormatting.SecondaryText,
		})
	}
	return predictions, nil
}

// normalizePhone formats provider phone strings as E.164 where parseable,
// keeping the raw value otherwise.
func normalizePhone(raw *string) *string {
	if raw == nil || *raw == "" {
		return raw
	}
	parsed, err := phonenumbers.Parse(*raw, "US")
	if err != nil || !phonenumbers.IsValidNumber(parsed) {
		return raw
	}
	formatted := phonenumbers.Format(parsed, phonenumbers.E164)
	return &formatted
}
