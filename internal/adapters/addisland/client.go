package addisland

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/normgirm/addisland-locator/internal/platform/obs"
)

// ErrCertificateNotFound reports that the registry has no certificate
// published under the requested deed number.
var ErrCertificateNotFound = errors.New("certificate not found")

// Client implements CertificateFetcher against the public land-registry
// certificate pages.
//
// It coordinates:
//   - Certificate page retrieval with retry/backoff
//   - HTML parsing of the boundary table and title metadata
//
// The client is safe for concurrent use.
type Client struct {
	session   *http.Client
	baseURL   string
	userAgent string
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("registry base URL is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid registry base URL %q: %w", baseURL, err)
	}

	return &Client{
		session:   &http.Client{Timeout: 15 * time.Second},
		baseURL:   baseURL,
		userAgent: "addisland-locator/1.0",
	}, nil
}

// FetchCertificate retrieves and parses the certificate page for one deed.
func (c *Client) FetchCertificate(
	ctx context.Context,
	deedNumber string,
) (_ *domain.Certificate, err error) {
	defer obs.Time(ctx, "registry.FetchCertificate")(&err)

	if deedNumber == "" {
		return nil, errors.New("fetch certificate: deed number must be non-empty")
	}

	endpoint := fmt.Sprintf("%s/en-us/certificate/%s", c.baseURL, url.PathEscape(deedNumber))

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		return c.newRequest(ctx, endpoint)
	})
	if err != nil {
		var he *httpStatusError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			return nil, fmt.Errorf("fetch certificate %q: %w", deedNumber, ErrCertificateNotFound)
		}
		return nil, fmt.Errorf("fetch certificate %q: %w", deedNumber, err)
	}
	defer resp.Body.Close()

	cert, err := ParseCertificate(resp.Body, deedNumber)
	if err != nil {
		return nil, fmt.Errorf("fetch certificate %q: %w", deedNumber, err)
	}

	return cert, nil
}
