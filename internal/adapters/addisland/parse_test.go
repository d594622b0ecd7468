package addisland

import (
	"strings"
	"testing"
)

const sampleCertificatePage = `
<html><body>
<span>Name of Possessor</span><span>W/ro Almaz T.</span>
<span>Date Issued</span><span>2014-03-11</span>
<table>
  <tr><td>Parcel</td><td>07/1234</td></tr>
</table>
<table>
  <tr><th><span>Cordnates/X Y</span></th></tr>
  <tr><td>482000.00</td><td>990500.00</td></tr>
  <tr><td>482500.00</td><td>990800.00</td></tr>
  <tr><td>N/A</td><td>991000.00</td></tr>
  <tr><td>482200.00</td><td>991000.00</td></tr>
</table>
<a href="https://www.addisland.gov.et/Reserved.ReportViewerWebControl.axd?ExecutionID=abc&Format=PDF">Save As PDF</a>
</body></html>
`

func TestParseCertificate(t *testing.T) {
	cert, err := ParseCertificate(strings.NewReader(sampleCertificatePage), "AA-123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cert.DeedNumber != "AA-123456" {
		t.Fatalf("deed number = %q", cert.DeedNumber)
	}
	if cert.PossessorName != "W/ro Almaz T." {
		t.Fatalf("possessor name = %q", cert.PossessorName)
	}
	if cert.DateIssued != "2014-03-11" {
		t.Fatalf("date issued = %q", cert.DateIssued)
	}

	// The N/A row must be skipped, not fail the parse.
	if len(cert.Boundary) != 3 {
		t.Fatalf("boundary length = %d, want 3", len(cert.Boundary))
	}
	if cert.Boundary[0].Easting != 482000 || cert.Boundary[0].Northing != 990500 {
		t.Fatalf("first vertex = %+v", cert.Boundary[0])
	}
	if cert.Boundary[2].Easting != 482200 || cert.Boundary[2].Northing != 991000 {
		t.Fatalf("last vertex = %+v", cert.Boundary[2])
	}

	if !strings.Contains(cert.PDFExportURL, "Format=PDF") {
		t.Fatalf("pdf export url = %q", cert.PDFExportURL)
	}
}

func TestParseCertificateDefaultsAbsentMetadata(t *testing.T) {
	page := `
	<html><body>
	<table>
	  <tr><th><span>Cordnates/X Y</span></th></tr>
	  <tr><td>482000.00</td><td>990500.00</td></tr>
	  <tr><td>482500.00</td><td>990800.00</td></tr>
	  <tr><td>482200.00</td><td>991000.00</td></tr>
	</table>
	</body></html>
	`

	cert, err := ParseCertificate(strings.NewReader(page), "AA-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cert.PossessorName != "" || cert.DateIssued != "" || cert.PDFExportURL != "" {
		t.Fatalf("absent metadata should default to empty, got %+v", cert)
	}
}

func TestParseCertificateWithoutBoundaryTable(t *testing.T) {
	page := `<html><body><table><tr><td>1</td><td>2</td></tr></table></body></html>`

	if _, err := ParseCertificate(strings.NewReader(page), "AA-9"); err == nil {
		t.Fatal("expected error for document without boundary table")
	}
}

func TestParseCertificateWithoutNumericRows(t *testing.T) {
	page := `
	<html><body>
	<table>
	  <tr><th><span>Cordnates/X Y</span></th></tr>
	  <tr><td>N/A</td><td>N/A</td></tr>
	</table>
	</body></html>
	`

	if _, err := ParseCertificate(strings.NewReader(page), "AA-9"); err == nil {
		t.Fatal("expected error for boundary table without numeric rows")
	}
}
