package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/normgirm/addisland-locator/internal/ports"
)

// TransformAndAssemble is the core pipeline entry point: raw survey points,
// plus an optional reference geographic point for zone resolution, to a
// closed plot polygon.
//
// The survey sequence is taken verbatim as the open ring: a closing copy of
// the first vertex is always appended, even when the certificate already
// repeats the first corner, so the output ring is one vertex longer than the
// input. Re-assembling an assembled ring stays a no-op; only this entry
// point treats its input as open.
//
// The pipeline is atomic. Calibration, conversion, and assembly either all
// succeed or the call fails with one of the typed errors in this package;
// no stage substitutes default geometry.
func TransformAndAssemble(
	points []domain.SurveyPoint,
	ref *domain.GeoPoint,
	surface *CalibrationSurface,
) (domain.PlotPolygon, error) {
	zone, err := ResolveZone(ref)
	if err != nil {
		return domain.PlotPolygon{}, fmt.Errorf("transform and assemble: %w", err)
	}

	geo, err := Transform(points, surface, zone)
	if err != nil {
		return domain.PlotPolygon{}, fmt.Errorf("transform and assemble: %w", err)
	}

	geo = append(geo, geo[0])

	polygon, err := AssemblePolygon(geo)
	if err != nil {
		return domain.PlotPolygon{}, fmt.Errorf("transform and assemble: %w", err)
	}

	return polygon, nil
}

type LocatePlotRequest struct {
	DeedNumber string
	Reference  *domain.GeoPoint
}

// LocatePlot resolves a deed number to a located plot: certificate lookup
// (cache-first), boundary extraction, then the transform pipeline.
func LocatePlot(
	ctx context.Context,
	req LocatePlotRequest,
	fetcher ports.CertificateFetcher,
	cache ports.CertificateCache,
	surface *CalibrationSurface,
) (*domain.PlotLocation, error) {
	deed := strings.TrimSpace(req.DeedNumber)
	if deed == "" {
		return nil, fmt.Errorf("locate plot: deed number must be non-empty: %w", ErrMalformedInput)
	}

	var cert *domain.Certificate
	if cache != nil {
		cached, err := cache.Get(ctx, deed)
		if err != nil {
			return nil, fmt.Errorf("locate plot: certificate cache: %w", err)
		}
		cert = cached
	}

	if cert == nil {
		fetched, err := fetcher.FetchCertificate(ctx, deed)
		if err != nil {
			return nil, fmt.Errorf("locate plot: fetch certificate %q: %w", deed, err)
		}
		cert = fetched

		if cache != nil {
			if err := cache.Put(ctx, cert); err != nil {
				log.Printf("certificate cache write failed: deed=%s err=%v", deed, err)
			}
		}
	}

	if !cert.HasBoundary() {
		return nil, fmt.Errorf(
			"locate plot: certificate %q has %d boundary vertices: %w",
			deed, len(cert.Boundary), ErrMalformedInput,
		)
	}

	polygon, err := TransformAndAssemble(cert.Boundary, req.Reference, surface)
	if err != nil {
		return nil, fmt.Errorf("locate plot: deed %q: %w", deed, err)
	}

	return &domain.PlotLocation{Certificate: *cert, Polygon: polygon}, nil
}
