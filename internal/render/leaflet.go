// Package render produces the interactive map page for a located plot.
// The page is a self-contained Leaflet document over ESRI World Imagery
// tiles, with a marker per boundary vertex and the closed ring drawn on top.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"

	"github.com/normgirm/addisland-locator/internal/domain"
)

// marshalTemplateJS encodes a value as JSON tagged safe for embedding in a
// script block, so vertex arrays can be handed straight to Leaflet.
func marshalTemplateJS(value any) (template.JS, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return template.JS(""), err
	}
	return template.JS(payload), nil
}

var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Plot {{.DeedNumber}}</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body { margin: 0; height: 100%; }
  #map { height: 100%; }
  .plot-info { font: 13px/1.4 sans-serif; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var vertices = {{.Vertices}};
var ring = {{.Ring}};
var map = L.map('map').setView({{.Centroid}}, 18);

L.tileLayer('https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}', {
  maxZoom: 19,
  attribution: 'Tiles &copy; Esri &mdash; Source: Esri, Maxar, Earthstar Geographics'
}).addTo(map);

vertices.forEach(function (v) {
  L.marker(v).addTo(map).bindPopup('<div class="plot-info">{{.Popup}}</div>');
});

L.polyline(ring, { color: 'blue', weight: 2.5, opacity: 1 }).addTo(map);
</script>
</body>
</html>
`))

type mapPageData struct {
	DeedNumber string
	Popup      string
	Vertices   template.JS
	Ring       template.JS
	Centroid   template.JS
}

// MapPage renders the full HTML document for one located plot.
func MapPage(loc *domain.PlotLocation) ([]byte, error) {
	if loc == nil || len(loc.Polygon.Ring) == 0 {
		return nil, fmt.Errorf("render map page: empty plot polygon")
	}

	// Leaflet expects [lat, lon] pairs.
	ring := make([][2]float64, 0, len(loc.Polygon.Ring))
	for _, p := range loc.Polygon.Ring {
		ring = append(ring, [2]float64{p.Lat(), p.Lon()})
	}

	ringJS, err := marshalTemplateJS(ring)
	if err != nil {
		return nil, fmt.Errorf("render map page: encode ring: %w", err)
	}

	// Markers only on distinct vertices; the closing repeat gets no pin.
	verticesJS, err := marshalTemplateJS(ring[:len(ring)-1])
	if err != nil {
		return nil, fmt.Errorf("render map page: encode vertices: %w", err)
	}

	centroidJS, err := marshalTemplateJS([2]float64{
		loc.Polygon.Centroid.Lat(),
		loc.Polygon.Centroid.Lon(),
	})
	if err != nil {
		return nil, fmt.Errorf("render map page: encode centroid: %w", err)
	}

	popup := "Deed " + loc.Certificate.DeedNumber
	if loc.Certificate.PossessorName != "" {
		popup += " / " + loc.Certificate.PossessorName
	}

	var buf bytes.Buffer
	err = mapTemplate.Execute(&buf, mapPageData{
		DeedNumber: loc.Certificate.DeedNumber,
		Popup:      popup,
		Vertices:   verticesJS,
		Ring:       ringJS,
		Centroid:   centroidJS,
	})
	if err != nil {
		return nil, fmt.Errorf("render map page: execute template: %w", err)
	}

	return buf.Bytes(), nil
}
