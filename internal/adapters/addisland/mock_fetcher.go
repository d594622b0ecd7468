package addisland

import (
	"context"
	"fmt"

	"github.com/normgirm/addisland-locator/internal/domain"
)

// MockFetcher serves certificates from memory for tests.
type MockFetcher struct {
	m     map[string]domain.Certificate
	Calls int
}

func NewMockFetcher(certs []domain.Certificate) *MockFetcher {
	m := make(map[string]domain.Certificate, len(certs))
	for _, c := range certs {
		m[c.DeedNumber] = c
	}
	return &MockFetcher{m: m}
}

func (f *MockFetcher) FetchCertificate(ctx context.Context, deedNumber string) (*domain.Certificate, error) {
	f.Calls++
	c, ok := f.m[deedNumber]
	if !ok {
		return nil, fmt.Errorf("missing certificate %q: %w", deedNumber, ErrCertificateNotFound)
	}
	return &c, nil
}
