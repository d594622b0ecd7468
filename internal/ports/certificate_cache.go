package ports

import (
	"context"

	"github.com/normgirm/addisland-locator/internal/domain"
)

// Port: persistent cache of parsed certificates keyed by deed number, so the
// registry is not re-scraped on every lookup.
type CertificateCache interface {
	// Return the cached certificate, or (nil, nil) on a miss.
	Get(ctx context.Context, deedNumber string) (*domain.Certificate, error)
	// Store a parsed certificate, replacing any previous entry.
	Put(ctx context.Context, cert *domain.Certificate) error
}
