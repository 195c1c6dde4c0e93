package model

// SearchResult is a single mock search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchResponse is the payload returned by the search endpoint.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
