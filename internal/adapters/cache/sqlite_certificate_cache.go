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
)

// SQLite-backed cache of parsed certificates, keyed by deed number.
// Deed numbers are expected to be trimmed by the caller.
type SqliteCertificateCache struct {
	DB *sql.DB
}

func NewSqliteCertificateCache(db *sql.DB) *SqliteCertificateCache {
	return &SqliteCertificateCache{DB: db}
}

// Fetch the cached certificate for one deed number. A miss is (nil, nil).
func (s *SqliteCertificateCache) Get(
	ctx context.Context,
	deedNumber string,
) (*domain.Certificate, error) {
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
	WHERE deed_number = ?;
	`

	var payload []byte
	err := s.DB.QueryRowContext(ctx, q, deedNumber).Scan(&payload)
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
func (s *SqliteCertificateCache) Put(ctx context.Context, cert *domain.Certificate) error {
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
	INSERT OR REPLACE INTO certificate_cache (
		deed_number,
		payload,
		fetched_at
	)
	VALUES (?, ?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, cert.DeedNumber, payload, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("insert certificate cache deed=%q: %w", cert.DeedNumber, err)
	}

	return nil
}
