package domain

import "context"

// RetrieverPort fetches an application page plus hint-matched linked pages
// and returns them as plain text. A transport or decode failure surfaces as
// an error; a reachable page with no eligibility content returns zero pages
type RetrieverPort interface {
	Retrieve(ctx context.Context, rawURL string) ([]Page, error)
}
