package ports

import (
	"context"

	"github.com/normgirm/addisland-locator/internal/domain"
)

// Port: a boundary for retrieving land-title certificates from the registry.
type CertificateFetcher interface {
	// Fetch and parse the certificate published under the given deed number.
	FetchCertificate(ctx context.Context, deedNumber string) (*domain.Certificate, error)
}
