package services

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"placement-backend/internal/models"
)

// ErrNoMatchingRows blocks an export that would produce an empty file.
var ErrNoMatchingRows = errors.New("no records match the report filter")

var reportHeader = []string{
	"ID", "Student Name", "Major", "Type", "Location", "Position",
	"Term", "Year", "Start Date", "End Date", "Status",
}

// ReportFilter selects records by major and then by exactly one of the
// two modes: an inclusive ISO date range, or exact term + academic-year
// strings. Date comparison is lexicographic on the yyyy-mm-dd form;
// year comparison is exact string equality on the trimmed value, never
// numeric ("2567" matches "2567 " but not "2568").
type ReportFilter struct {
	Major string
	Start string
	End   string
	Term  string
	Year  string
}

func (f ReportFilter) byDateRange() bool { return f.Start != "" || f.End != "" }

// FilterStatuses applies the filter over the collection, preserving
// order.
func FilterStatuses(records []models.StudentStatusRecord, f ReportFilter) []models.StudentStatusRecord {
	out := make([]models.StudentStatusRecord, 0, len(records))
	for _, rec := range records {
		if rec.Major != f.Major {
			continue
		}
		if f.byDateRange() {
			if rec.StartDate == "" || rec.EndDate == "" {
				continue
			}
			if f.Start != "" && rec.StartDate < f.Start {
				continue
			}
			if f.End != "" && rec.EndDate > f.End {
				continue
			}
		} else {
			if strings.TrimSpace(rec.Term) != strings.TrimSpace(f.Term) {
				continue
			}
			if strings.TrimSpace(rec.AcademicYear) != strings.TrimSpace(f.Year) {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}

func reportRow(rec models.StudentStatusRecord) []string {
	return []string{
		rec.StudentID, rec.Name, rec.Major, rec.Type, rec.Location,
		rec.Position, rec.Term, rec.AcademicYear, rec.StartDate,
		rec.EndDate, rec.Status,
	}
}

// BuildReportCSV serializes the filtered records as the spreadsheet
// import format the department uses: UTF-8 with a BOM prefix, every
// field wrapped in double quotes. Embedded quotes are not escaped —
// this matches the file the remote spreadsheet already accepts, so the
// byte format stays as is rather than switching to encoding/csv.
func BuildReportCSV(records []models.StudentStatusRecord, f ReportFilter) ([]byte, error) {
	rows := FilterStatuses(records, f)
	if len(rows) == 0 {
		return nil, ErrNoMatchingRows
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	writeQuotedRow(&buf, reportHeader)
	for _, rec := range rows {
		writeQuotedRow(&buf, reportRow(rec))
	}
	return buf.Bytes(), nil
}

func writeQuotedRow(buf *bytes.Buffer, fields []string) {
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(field)
		buf.WriteByte('"')
	}
	buf.WriteByte('\n')
}

// BuildReportXLSX serializes the same rows as a workbook for staff who
// want the native spreadsheet format instead of CSV.
func BuildReportXLSX(records []models.StudentStatusRecord, f ReportFilter) ([]byte, error) {
	rows := FilterStatuses(records, f)
	if len(rows) == 0 {
		return nil, ErrNoMatchingRows
	}

	wb := excelize.NewFile()
	defer func() { _ = wb.Close() }()

	sheet := wb.GetSheetName(0)
	if err := wb.SetSheetRow(sheet, "A1", &reportHeader); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}
	for i, rec := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := reportRow(rec)
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := wb.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// ReportFilename builds Internship_Report_<ISO-date>.<ext>.
func ReportFilename(ext string) string {
	return fmt.Sprintf("Internship_Report_%s.%s", time.Now().UTC().Format("2006-01-02"), ext)
}
