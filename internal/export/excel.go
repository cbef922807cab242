package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/wmutahi/ai-resume-tools/internal/models"
)

// MatchReport generates an Excel workbook for a job-match result.
func MatchReport(match *models.JobMatch, outputPath string) error {
	f := excelize.NewFile()
	defer f.Close()

	if !strings.HasSuffix(strings.ToLower(outputPath), ".xlsx") {
		outputPath = outputPath + ".xlsx"
	}
	outputPath = filepath.Clean(outputPath)

	summarySheet := "Summary"
	skillsSheet := "Skills"
	recommendationsSheet := "Recommendations"

	f.SetSheetName("Sheet1", summarySheet)
	f.NewSheet(skillsSheet)
	f.NewSheet(recommendationsSheet)

	if err := createSummarySheet(f, summarySheet, match); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}
	if err := createSkillsSheet(f, skillsSheet, match); err != nil {
		return fmt.Errorf("failed to create skills sheet: %w", err)
	}
	if err := createRecommendationsSheet(f, recommendationsSheet, match); err != nil {
		return fmt.Errorf("failed to create recommendations sheet: %w", err)
	}

	if err := f.SaveAs(outputPath); err != nil {
		// Direct save can fail on some Windows paths; fall back to a
		// buffered write.
		var buf bytes.Buffer
		if writeErr := f.Write(&buf); writeErr != nil {
			return fmt.Errorf("failed to save Excel file: direct save failed (%v), buffer write also failed: %w", err, writeErr)
		}
		if fileErr := os.WriteFile(outputPath, buf.Bytes(), 0644); fileErr != nil {
			return &models.OutputWriteError{Path: outputPath, Cause: fileErr}
		}
	}

	return nil
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
}

func createSummarySheet(f *excelize.File, sheetName string, match *models.JobMatch) error {
	f.SetColWidth(sheetName, "A", "A", 25)
	f.SetColWidth(sheetName, "B", "B", 70)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	labelStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	row := 1
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Job Match Report")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), header)
	f.MergeCell(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row))
	row += 2

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Generated:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), time.Now().Format("2006-01-02 15:04:05"))
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Match Score:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fmt.Sprintf("%d%%", match.MatchScore))
	row++

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Experience Alignment:")
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), labelStyle)
	f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), match.ExperienceAlignment)

	return nil
}

func createSkillsSheet(f *excelize.File, sheetName string, match *models.JobMatch) error {
	f.SetColWidth(sheetName, "A", "B", 40)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Matching Skills")
	f.SetCellValue(sheetName, "B1", "Missing Skills")
	f.SetCellStyle(sheetName, "A1", "B1", header)

	for i, skill := range match.MatchingSkills {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+2), skill)
	}
	for i, skill := range match.MissingSkills {
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+2), skill)
	}

	return nil
}

func createRecommendationsSheet(f *excelize.File, sheetName string, match *models.JobMatch) error {
	f.SetColWidth(sheetName, "A", "C", 50)

	header, err := headerStyle(f)
	if err != nil {
		return err
	}

	f.SetCellValue(sheetName, "A1", "Strengths")
	f.SetCellValue(sheetName, "B1", "Weaknesses")
	f.SetCellValue(sheetName, "C1", "Recommendations")
	f.SetCellStyle(sheetName, "A1", "C1", header)

	for i, s := range match.Strengths {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+2), s)
	}
	for i, w := range match.Weaknesses {
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+2), w)
	}
	for i, r := range match.Recommendations {
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", i+2), r)
	}

	return nil
}
