package service

import (
	"errors"
	"fmt"
	"strings"

	"webrelay/internal/model"
)

// ErrMissingQuery is returned when a search has no query string.
var ErrMissingQuery = errors.New("no search query provided")

// SearchService produces canned search results. It never calls out.
type SearchService struct{}

// NewSearchService creates a SearchService.
func NewSearchService() *SearchService {
	return &SearchService{}
}

// Search returns four results templated from query.
func (s *SearchService) Search(query string) (*model.SearchResponse, error) {
	if query == "" {
		return nil, ErrMissingQuery
	}

	return &model.SearchResponse{
		Results: []model.SearchResult{
			{
				Title:   fmt.Sprintf(`Search results for "%s"`, query),
				URL:     "https://www.google.com/search?q=" + quoteQuery(query),
				Snippet: fmt.Sprintf(`About 1,000,000 results for "%s" (0.45 seconds)`, query),
			},
			{
				Title:   "First Result for " + query,
				URL:     "https://example.com/first-result-" + query,
				Snippet: fmt.Sprintf(`This is the first search result for "%s". It contains relevant information about the search term.`, query),
			},
			{
				Title:   "Second Result for " + query,
				URL:     "https://example.com/second-result-" + query,
				Snippet: fmt.Sprintf(`Another relevant result for "%s". This provides additional information and context.`, query),
			},
			{
				Title:   "Third Result for " + query,
				URL:     "https://example.com/third-result-" + query,
				Snippet: fmt.Sprintf(`The third search result for "%s". More information and details about the topic.`, query),
			},
		},
	}, nil
}

// quoteQuery percent-encodes every byte except ASCII letters, digits,
// "_.-~" and "/". A space becomes %20.
func quoteQuery(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '_', c == '.', c == '-', c == '~', c == '/':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}
