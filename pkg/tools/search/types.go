package search

// search specific types

// SearchArgs represents the parameters of one search invocation.
type SearchArgs struct {
	Query  string `json:"query" jsonschema:"required,description=The search query string."`
	Count  int    `json:"count,omitempty" jsonschema:"description=Number of results to return. Defaults to 5."`
	Offset int    `json:"offset,omitempty" jsonschema:"description=Result offset passed through to the API. Defaults to 0."`
}

// SearchResult is one normalized web result. Fields missing from the API
// response stay empty strings.
type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// SearchData is the data payload of a successful search envelope.
type SearchData struct {
	Results []SearchResult `json:"results"`
}

// braveResponse mirrors the part of the Brave Search API response we read.
// The result items share the SearchResult field names, so they decode
// directly into the normalized shape.
type braveResponse struct {
	Web struct {
		Results []SearchResult `json:"results"`
	} `json:"web"`
}
