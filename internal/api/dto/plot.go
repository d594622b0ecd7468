package dto

import "encoding/json"

type GeoPointDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type LocateRequest struct {
	DeedNumber string       `json:"deed_number"`
	Reference  *GeoPointDTO `json:"reference"`
}

type PlotResponse struct {
	DeedNumber    string          `json:"deed_number"`
	PossessorName string          `json:"possessor_name"`
	DateIssued    string          `json:"date_issued"`
	PDFExportURL  string          `json:"pdf_export_url,omitempty"`
	Centroid      GeoPointDTO     `json:"centroid"`
	VertexCount   int             `json:"vertex_count"`
	Ring          []GeoPointDTO   `json:"ring"`
	GeoJSON       json.RawMessage `json:"geojson"`
}
