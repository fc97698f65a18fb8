package provider

import (
	"io"
	"net/http"
	"strings"
)

// roundTripFunc lets tests stand in for upstream services.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func stubResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func stubClient(fn roundTripFunc) *http.Client {
	return &http.Client{Transport: fn}
}
