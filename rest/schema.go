package rest

import "github.com/heyybhargav/personal-newsletter-sub000/domain"

type DispatchRequest struct {
	Email string `json:"email"`
}

type ResolveSourceRequest struct {
	URL string `json:"url"`
}

type RegisterSourceRequest struct {
	Email string `json:"email"`
	URL   string `json:"url"`
}

type SetSourceEnabledRequest struct {
	Enabled *bool `json:"enabled"`
}

type SourcesResponse struct {
	Sources []domain.Source `json:"sources"`
}

type SearchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

type ArchiveDatesResponse struct {
	Dates []string `json:"dates"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
