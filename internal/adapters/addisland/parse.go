package addisland

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/normgirm/addisland-locator/internal/domain"
)

// The boundary table is the one whose header spans carry this marker text
// (sic, as published by the registry).
const boundaryTableMarker = "Cordnates/"

var pdfExportPattern = regexp.MustCompile(`Reserved\.ReportViewerWebControl\.axd\?[^"']*Format=PDF`)

// ParseCertificate extracts a certificate record from registry page markup.
//
// Only the boundary table is required. Title metadata (possessor name, date
// issued) and the PDF export link default to empty strings when absent, so a
// sparsely rendered page still yields a usable record.
func ParseCertificate(r io.Reader, deedNumber string) (*domain.Certificate, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse certificate: %w", err)
	}

	table := findBoundaryTable(doc)
	if table == nil {
		return nil, errors.New("parse certificate: no boundary table in document")
	}

	boundary := parseBoundaryRows(table)
	if len(boundary) == 0 {
		return nil, errors.New("parse certificate: boundary table has no numeric rows")
	}

	cert := &domain.Certificate{
		DeedNumber:    deedNumber,
		PossessorName: labeledValue(doc, "Possessor"),
		DateIssued:    labeledValue(doc, "Date Issued"),
		Boundary:      boundary,
		PDFExportURL:  pdfExportLink(doc),
	}

	return cert, nil
}

// findBoundaryTable walks every table and selects the one marked as holding
// the surveyed coordinates.
func findBoundaryTable(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection

	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		marked := false
		table.Find("span").EachWithBreak(func(_ int, span *goquery.Selection) bool {
			if strings.Contains(span.Text(), boundaryTableMarker) {
				marked = true
				return false
			}
			return true
		})

		if marked {
			found = table
			return false
		}
		return true
	})

	return found
}

// parseBoundaryRows reads (easting, northing) pairs from the table body,
// skipping the header row and any row whose cells are not both numeric.
func parseBoundaryRows(table *goquery.Selection) []domain.SurveyPoint {
	var points []domain.SurveyPoint

	table.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}

		cells := row.Find("td")
		if cells.Length() != 2 {
			return
		}

		e, okE := parseCoordinate(cells.Eq(0).Text())
		n, okN := parseCoordinate(cells.Eq(1).Text())
		if !okE || !okN {
			return
		}

		points = append(points, domain.SurveyPoint{Easting: e, Northing: n})
	})

	return points
}

func parseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}

// labeledValue finds a span whose text contains the label and returns the
// text of the next span in document order, or "" when the label is absent.
func labeledValue(doc *goquery.Document, label string) string {
	spans := doc.Find("span")

	value := ""
	spans.EachWithBreak(func(i int, span *goquery.Selection) bool {
		if !strings.Contains(span.Text(), label) {
			return true
		}
		if i+1 < spans.Length() {
			value = strings.TrimSpace(spans.Eq(i + 1).Text())
		}
		return false
	})

	return value
}

func pdfExportLink(doc *goquery.Document) string {
	link := ""

	doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		href, ok := a.Attr("href")
		if ok && pdfExportPattern.MatchString(href) {
			link = href
			return false
		}
		return true
	})

	return link
}
