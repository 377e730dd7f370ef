package dto

import (
	"net/url"

	"offertracker/internal/domain/models"
)

// Request
type ShortLinkRequest struct {
	Slug    string `json:"slug"`
	Country string `json:"c"`
	User    string `json:"u"`
}

// Response
type ShortLinkResponse struct {
	ID   string `json:"id"`
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

func ShortLinkPath(id string) string {
	return "/s/" + id
}

// RedirectPath собирает длинный маршрут /r/{slug}?c=..&u=..
func RedirectPath(slug string, country models.Country, user string) string {
	q := url.Values{}
	q.Set("c", string(country))
	if user != "" {
		q.Set("u", user)
	}
	return "/r/" + url.PathEscape(slug) + "?" + q.Encode()
}

// Domain → Response
func ShortLinkResponseFromDomain(link models.ShortLink, baseURL string) ShortLinkResponse {
	path := ShortLinkPath(link.ID)
	resp := ShortLinkResponse{ID: link.ID, Path: path}
	if baseURL != "" {
		resp.URL = baseURL + path
	}
	return resp
}
