// Package export writes analysis history and ranking results as Excel workbooks.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/ats-analyzer/internal/ranking"
	"github.com/jonathan/ats-analyzer/internal/types"
	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of an .xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	historySheet = "History"
	rankingSheet = "Ranking"
	summarySheet = "Summary"
)

// styles holds the cell styles shared by the sheets of one workbook
type styles struct {
	header int
	label  int
	bands  [4]int // strong, good, fair, weak
}

//nolint:gochecknoglobals
var bandColors = [4]string{"C6EFCE", "FFEB9C", "FFC7CE", "FF9999"}

func newStyles(f *excelize.File) (*styles, error) {
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}

	var s styles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    border,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create label style: %w", err)
	}
	for i, color := range bandColors {
		s.bands[i], err = f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
			Border:    border,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create band style: %w", err)
		}
	}
	return &s, nil
}

// Band returns the score band index: 0 for 80+, 1 for 60+, 2 for 40+, 3 below.
func Band(score float64) int {
	switch {
	case score >= 80:
		return 0
	case score >= 60:
		return 1
	case score >= 40:
		return 2
	default:
		return 3
	}
}

// WriteHistory writes persisted analyses as a single-sheet workbook.
func WriteHistory(w io.Writer, entries []types.HistoryEntry) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", historySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	headers := []string{"Analyzed At", "Job Title", "Company", "Resume", "ATS Score", "Matching Skills", "Missing Skills"}
	rows := make([][]any, len(entries))
	scores := make([]float64, len(entries))
	for i, e := range entries {
		rows[i] = []any{
			e.AnalyzedAt.UTC().Format(time.DateTime),
			e.JobTitle,
			e.Company,
			e.ResumeFilename,
			e.ATSScore,
			strings.Join(e.MatchingSkills, ", "),
			strings.Join(e.MissingSkills, ", "),
		}
		scores[i] = e.ATSScore
	}
	widths := []float64{20, 30, 25, 25, 12, 40, 40}

	if err := writeTable(f, historySheet, st, headers, widths, rows, scores); err != nil {
		return err
	}
	return write(f, w)
}

// WriteRanking writes ranked jobs plus a summary sheet.
func WriteRanking(w io.Writer, resumeName string, ranked []ranking.Ranked) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(rankingSheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	st, err := newStyles(f)
	if err != nil {
		return err
	}

	if err := writeRankingSummary(f, st, resumeName, ranked); err != nil {
		return err
	}

	headers := []string{"Rank", "Job", "ATS Score", "Semantic", "Lexical", "Keyword", "Missing Skills", "Notes"}
	rows := make([][]any, len(ranked))
	scores := make([]float64, len(ranked))
	for i, r := range ranked {
		b := r.Result.ScoreBreakdown
		rows[i] = []any{
			i + 1,
			r.Job,
			r.Result.ATSScore,
			fmt.Sprintf("%.3f", b.Semantic),
			fmt.Sprintf("%.3f", b.Lexical),
			fmt.Sprintf("%.3f", b.Keyword),
			strings.Join(r.Result.MissingSkills, ", "),
			r.Notes,
		}
		scores[i] = r.Result.ATSScore
	}
	widths := []float64{8, 30, 12, 10, 10, 10, 40, 50}

	if err := writeTable(f, rankingSheet, st, headers, widths, rows, scores); err != nil {
		return err
	}
	return write(f, w)
}

func writeRankingSummary(f *excelize.File, st *styles, resumeName string, ranked []ranking.Ranked) error {
	if err := f.SetColWidth(summarySheet, "A", "A", 22); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 40); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	pairs := [][2]any{
		{"Resume:", resumeName},
		{"Generated:", time.Now().UTC().Format(time.DateTime)},
		{"Jobs Scored:", len(ranked)},
	}
	if len(ranked) > 0 {
		var total float64
		for _, r := range ranked {
			total += r.Result.ATSScore
		}
		pairs = append(pairs,
			[2]any{"Best Match:", ranked[0].Job},
			[2]any{"Highest Score:", ranked[0].Result.ATSScore},
			[2]any{"Average Score:", fmt.Sprintf("%.2f", total/float64(len(ranked)))},
		)
	}

	for i, p := range pairs {
		row := i + 1
		label, _ := excelize.CoordinatesToCellName(1, row)
		value, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(summarySheet, label, p[0]); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		if err := f.SetCellStyle(summarySheet, label, label, st.label); err != nil {
			return fmt.Errorf("failed to style summary: %w", err)
		}
		if err := f.SetCellValue(summarySheet, value, p[1]); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// writeTable writes a header row and data rows, colouring each row by its score band.
func writeTable(f *excelize.File, sheet string, st *styles, headers []string, widths []float64, rows [][]any, scores []float64) error {
	for col, width := range widths {
		name, _ := excelize.ColumnNumberToName(col + 1)
		if err := f.SetColWidth(sheet, name, name, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, 1)
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, first, last, st.header); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, values := range rows {
		row := i + 2
		start, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, start, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		end, _ := excelize.CoordinatesToCellName(len(headers), row)
		if err := f.SetCellStyle(sheet, start, end, st.bands[Band(scores[i])]); err != nil {
			return fmt.Errorf("failed to style row %d: %w", row, err)
		}
	}

	if len(rows) > 0 {
		ref := fmt.Sprintf("%s:%s", first, mustCell(len(headers), len(rows)+1))
		if err := f.AutoFilter(sheet, ref, []excelize.AutoFilterOptions{}); err != nil {
			return fmt.Errorf("failed to add filter: %w", err)
		}
	}

	// Freeze top row
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func mustCell(col, row int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

func write(f *excelize.File, w io.Writer) error {
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// SaveFile writes a workbook to path, adding the .xlsx extension when missing.
func SaveFile(path string, writeFn func(io.Writer) error) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writeFn(out); err != nil {
		_ = out.Close()
		return "", err
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", path, err)
	}
	return path, nil
}
