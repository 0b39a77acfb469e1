package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	boreholeModel "betulabla_backend/internals/features/program/boreholes/model"
	orphanModel "betulabla_backend/internals/features/program/orphans/model"
	outreachModel "betulabla_backend/internals/features/program/outreach/model"
)

const (
	orgName       = "Betul Abla Foundation"
	detailRowCap  = 20
	reportDateFmt = "2006-01-02"
)

// ReportFilename builds the attachment name, e.g. orphans-report-2026-09-01.pdf
func ReportFilename(reportType string, now time.Time) string {
	return fmt.Sprintf("%s-report-%s.pdf", reportType, now.Format(reportDateFmt))
}

func newReportPDF(title string, now time.Time) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 10, orgName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 6, "Generated on: "+now.Format("2 January 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)
	return pdf
}

func writeSummaryLines(pdf *gofpdf.Fpdf, lines []string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(33, 37, 41)
	pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, l := range lines {
		pdf.CellFormat(0, 6, l, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

func writeTable(pdf *gofpdf.Fpdf, headers []string, widths []float64, rows [][]string) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(52, 73, 94)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(33, 37, 41)
	for ri, row := range rows {
		// striped rows for readability
		if ri%2 == 0 {
			pdf.SetFillColor(245, 246, 248)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		for ci, cell := range row {
			pdf.CellFormat(widths[ci], 6, cell, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// ============================
// Per-entity reports
// ============================

func RenderOrphanReport(rows []orphanModel.OrphanModel, now time.Time) ([]byte, error) {
	pdf := newReportPDF("Orphan Support Report", now)

	s := SummarizeOrphans(rows)
	writeSummaryLines(pdf, []string{
		fmt.Sprintf("Total orphans: %d", s.Total),
		fmt.Sprintf("School fees covered: %d", s.Sponsored),
		fmt.Sprintf("Approved cases: %d", s.Approved),
	})

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.FullName,
			intOrDash(r.Age),
			orDash(r.Location),
			orDash(r.SchoolName),
			yesNo(r.SchoolFeesCovered),
			r.Status,
		})
	}
	writeTable(pdf,
		[]string{"Name", "Age", "Location", "School", "Fees", "Status"},
		[]float64{50, 12, 40, 48, 14, 26},
		table)

	return outputPDF(pdf)
}

func RenderBoreholeReport(rows []boreholeModel.BoreholeModel, now time.Time) ([]byte, error) {
	pdf := newReportPDF("Borehole Projects Report", now)

	s := SummarizeBoreholes(rows)
	writeSummaryLines(pdf, []string{
		fmt.Sprintf("Total projects: %d", s.TotalProjects),
		fmt.Sprintf("Completed: %d", s.Completed),
		fmt.Sprintf("People served: %d", s.TotalBeneficiaries),
	})

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		depth := "-"
		if r.DepthMeters != nil {
			depth = fmt.Sprintf("%.1f m", *r.DepthMeters)
		}
		completed := "-"
		if r.CompletionDate != nil {
			completed = r.CompletionDate.Format(reportDateFmt)
		}
		table = append(table, []string{
			r.CommunityName,
			r.Location,
			depth,
			completed,
			intOrDash(r.BeneficiariesCount),
			r.Status,
		})
	}
	writeTable(pdf,
		[]string{"Community", "Location", "Depth", "Completed", "Served", "Status"},
		[]float64{42, 42, 20, 26, 20, 40},
		table)

	return outputPDF(pdf)
}

func RenderOutreachReport(rows []outreachModel.OutreachModel, now time.Time) ([]byte, error) {
	pdf := newReportPDF("Community Outreach Report", now)

	s := SummarizeOutreach(rows)
	writeSummaryLines(pdf, []string{
		fmt.Sprintf("Total activities: %d", s.TotalActivities),
		fmt.Sprintf("People reached: %d", s.TotalBeneficiaries),
		fmt.Sprintf("Activity types: %d", s.ActivityTypes),
	})

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			r.Title,
			r.ActivityType,
			r.Location,
			r.Date.Format(reportDateFmt),
			intOrDash(r.BeneficiariesCount),
			r.Status,
		})
	}
	writeTable(pdf,
		[]string{"Title", "Type", "Location", "Date", "Reached", "Status"},
		[]float64{48, 36, 34, 24, 20, 28},
		table)

	return outputPDF(pdf)
}

// ============================
// Comprehensive report
// ============================

func RenderComprehensiveReport(
	orphans []orphanModel.OrphanModel,
	boreholes []boreholeModel.BoreholeModel,
	outreach []outreachModel.OutreachModel,
	now time.Time,
) ([]byte, error) {
	pdf := newReportPDF("Comprehensive Impact Report", now)

	os := SummarizeOrphans(orphans)
	bs := SummarizeBoreholes(boreholes)
	xs := SummarizeOutreach(outreach)

	writeSummaryLines(pdf, []string{
		fmt.Sprintf("Orphans supported: %d (%d sponsored, %d approved)", os.Total, os.Sponsored, os.Approved),
		fmt.Sprintf("Borehole projects: %d (%d completed, %d people served)", bs.TotalProjects, bs.Completed, bs.TotalBeneficiaries),
		fmt.Sprintf("Outreach activities: %d (%d people reached)", xs.TotalActivities, xs.TotalBeneficiaries),
	})

	impact := os.Total + bs.TotalBeneficiaries + xs.TotalBeneficiaries
	pdf.SetFont("Arial", "B", 12)
	pdf.SetTextColor(39, 96, 54)
	pdf.CellFormat(0, 8, fmt.Sprintf("Overall lives impacted: %d", impact), "", 1, "L", false, 0, "")
	pdf.SetTextColor(33, 37, 41)
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Orphans (first %d)", detailRowCap), "", 1, "L", false, 0, "")
	orphanRows := make([][]string, 0, detailRowCap)
	for i, r := range orphans {
		if i >= detailRowCap {
			break
		}
		orphanRows = append(orphanRows, []string{r.FullName, intOrDash(r.Age), orDash(r.Location), r.Status})
	}
	writeTable(pdf,
		[]string{"Name", "Age", "Location", "Status"},
		[]float64{60, 16, 70, 44},
		orphanRows)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Outreach activities (first %d)", detailRowCap), "", 1, "L", false, 0, "")
	outreachRows := make([][]string, 0, detailRowCap)
	for i, r := range outreach {
		if i >= detailRowCap {
			break
		}
		outreachRows = append(outreachRows, []string{r.Title, r.ActivityType, r.Date.Format(reportDateFmt), r.Status})
	}
	writeTable(pdf,
		[]string{"Title", "Type", "Date", "Status"},
		[]float64{70, 46, 30, 44},
		outreachRows)

	return outputPDF(pdf)
}

func outputPDF(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
