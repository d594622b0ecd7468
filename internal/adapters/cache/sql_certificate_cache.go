package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/normgirm/addisland-locator/internal/platform/obs"
)

// SQLCertificateCache is the Postgres flavor of the certificate cache, used
// by deployed runs where the cache outlives a single host.
type SQLCertificateCache struct {
	DB *sql.DB
}

func NewSQLCertificateCache(db *sql.DB) *SQLCertificateCache {
	return &SQLCertificateCache{DB: db}
}

// Fetch the cached certificate for one deed number. A miss is (nil, nil).
func (s *SQLCertificateCache) Get(
	ctx context.Context,
	deedNumber string,
) (_ *domain.Certificate, err error) {
	defer obs.Time(ctx, "certificate.cache.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("certificate cache: db is nil")
	}

	deedNumber = strings.TrimSpace(deedNumber)
	if deedNumber == "" {
		return nil, errors.New("get certificate cache: deed number must not be empty")
	}

	q := `
	SELECT payload
	FROM certificate_cache
	WHERE deed_number = $1;
	`

	var payload []byte
	err = s.DB.QueryRowContext(ctx, q, deedNumber).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get certificate cache: query certificate_cache table: %w", err)
	}

	var cert domain.Certificate
	if err := json.Unmarshal(payload, &cert); err != nil {
		return nil, fmt.Errorf("get certificate cache: decode payload for %q: %w", deedNumber, err)
	}

	return &cert, nil
}

// Store a parsed certificate, replacing any previous entry for its deed.
func (s *SQLCertificateCache) Put(ctx context.Context, cert *domain.Certificate) error {
	if s.DB == nil {
		return errors.New("certificate cache: db is nil")
	}

	if cert == nil || strings.TrimSpace(cert.DeedNumber) == "" {
		return errors.New("insert certificate cache: certificate with deed number required")
	}

	payload, err := json.Marshal(cert)
	if err != nil {
		return fmt.Errorf("insert certificate cache: encode payload: %w", err)
	}

	q := `
	INSERT INTO certificate_cache (deed_number, payload, fetched_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (deed_number) DO UPDATE
	SET payload = EXCLUDED.payload,
		fetched_at = EXCLUDED.fetched_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, cert.DeedNumber, payload, time.Now().UTC()); err != nil {
		return fmt.Errorf("insert certificate cache deed=%q: %w", cert.DeedNumber, err)
	}

	return nil
}
