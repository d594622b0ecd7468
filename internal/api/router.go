package api

import (
	"net/http"

	"github.com/normgirm/addisland-locator/internal/api/handlers"
	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/normgirm/addisland-locator/internal/ports"
	"github.com/normgirm/addisland-locator/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(
	fetcher ports.CertificateFetcher,
	cache ports.CertificateCache,
	surface *services.CalibrationSurface,
	defaultRef *domain.GeoPoint,
) http.Handler {
	mux := http.NewServeMux()

	plotHandler := &handlers.PlotHandler{
		Fetcher:          fetcher,
		Cache:            cache,
		Surface:          surface,
		DefaultReference: defaultRef,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/plots", plotHandler.Locate)
	mux.HandleFunc("/plots/map", plotHandler.Map)

	return loggingMiddleware(mux)
}
