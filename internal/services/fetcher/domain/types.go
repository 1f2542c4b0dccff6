// Package domain holds types and ports for the content fetcher
package domain

// Page is one fetched unit of content reduced to plain text
type Page struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}
