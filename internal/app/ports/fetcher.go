package ports

import (
	"context"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
)

// DisruptionFetcher performs one classified call to the upstream disruption API.
type DisruptionFetcher interface {
	Fetch(ctx context.Context) domain.FetchResult
}
