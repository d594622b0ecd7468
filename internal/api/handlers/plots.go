package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/normgirm/addisland-locator/internal/adapters/addisland"
	"github.com/normgirm/addisland-locator/internal/api/dto"
	"github.com/normgirm/addisland-locator/internal/domain"
	"github.com/normgirm/addisland-locator/internal/ports"
	"github.com/normgirm/addisland-locator/internal/render"
	"github.com/normgirm/addisland-locator/internal/services"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

type PlotHandler struct {
	Fetcher ports.CertificateFetcher
	Cache   ports.CertificateCache
	Surface *services.CalibrationSurface

	// Fixed, well-known landmark used for zone resolution when the request
	// carries no reference point. Nil falls through to the default zone.
	DefaultReference *domain.GeoPoint
}

// Locate resolves a deed number to a transformed plot polygon.
func (h *PlotHandler) Locate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.LocateRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if strings.TrimSpace(req.DeedNumber) == "" {
		writeError(w, r, http.StatusBadRequest, "deed_number is required")
		return
	}

	ref := h.DefaultReference
	if req.Reference != nil {
		ref = &domain.GeoPoint{Lat: req.Reference.Lat, Lon: req.Reference.Lon}
	}

	loc, err := services.LocatePlot(r.Context(), services.LocatePlotRequest{
		DeedNumber: req.DeedNumber,
		Reference:  ref,
	}, h.Fetcher, h.Cache, h.Surface)
	if err != nil {
		h.writeLocateError(w, r, err)
		return
	}

	res, err := plotResponse(loc)
	if err != nil {
		log.Printf("build plot response failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Map serves the interactive map page for a deed number.
func (h *PlotHandler) Map(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	deed := strings.TrimSpace(r.URL.Query().Get("deed"))
	if deed == "" {
		writeError(w, r, http.StatusBadRequest, "deed query parameter is required")
		return
	}

	loc, err := services.LocatePlot(r.Context(), services.LocatePlotRequest{
		DeedNumber: deed,
		Reference:  h.DefaultReference,
	}, h.Fetcher, h.Cache, h.Surface)
	if err != nil {
		h.writeLocateError(w, r, err)
		return
	}

	page, err := render.MapPage(loc)
	if err != nil {
		log.Printf("render map page failed: deed=%s err=%v", deed, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		log.Printf("write map page failed: deed=%s err=%v", deed, err)
	}
}

// writeLocateError maps pipeline failures to distinct statuses so clients
// can tell bad input from an out-of-range calibration or an upstream fault.
func (h *PlotHandler) writeLocateError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("locate plot failed: %v", err)

	switch {
	case errors.Is(err, addisland.ErrCertificateNotFound):
		writeError(w, r, http.StatusNotFound, "certificate not found")
	case errors.Is(err, services.ErrMalformedInput):
		writeError(w, r, http.StatusBadRequest, "certificate boundary is unusable")
	case errors.Is(err, services.ErrCalibrationOutOfRange):
		writeError(w, r, http.StatusUnprocessableEntity, "plot lies outside the calibrated region")
	case errors.Is(err, services.ErrProjectionFailure):
		writeError(w, r, http.StatusBadGateway, "coordinate conversion failed")
	default:
		writeError(w, r, http.StatusBadGateway, "registry lookup failed")
	}
}

func plotResponse(loc *domain.PlotLocation) (dto.PlotResponse, error) {
	feature := geojson.NewFeature(orb.Polygon{loc.Polygon.Ring})
	feature.Properties["deed_number"] = loc.Certificate.DeedNumber
	feature.Properties["possessor_name"] = loc.Certificate.PossessorName

	raw, err := feature.MarshalJSON()
	if err != nil {
		return dto.PlotResponse{}, err
	}

	ring := make([]dto.GeoPointDTO, 0, len(loc.Polygon.Ring))
	for _, p := range loc.Polygon.Ring {
		ring = append(ring, dto.GeoPointDTO{Lat: p.Lat(), Lon: p.Lon()})
	}

	return dto.PlotResponse{
		DeedNumber:    loc.Certificate.DeedNumber,
		PossessorName: loc.Certificate.PossessorName,
		DateIssued:    loc.Certificate.DateIssued,
		PDFExportURL:  loc.Certificate.PDFExportURL,
		Centroid:      dto.GeoPointDTO{Lat: loc.Polygon.Centroid.Lat(), Lon: loc.Polygon.Centroid.Lon()},
		VertexCount:   loc.Polygon.VertexCount(),
		Ring:          ring,
		GeoJSON:       raw,
	}, nil
}
