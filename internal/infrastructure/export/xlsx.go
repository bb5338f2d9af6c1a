// Package export renders survey responses into downloadable XLSX reports.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/PavaniTiago/satisfaction-survey-api/internal/domain/entities"
)

// Variant seleciona o layout do relatório
type Variant string

const (
	// VariantGrouped has a grouped header band over a sub-header row.
	VariantGrouped Variant = "grouped"
	// VariantFlat has a single header row with ids, timestamps and status.
	VariantFlat Variant = "flat"
)

// ParseVariant defaults to the grouped layout.
func ParseVariant(raw string) Variant {
	if Variant(raw) == VariantFlat {
		return VariantFlat
	}
	return VariantGrouped
}

// SheetName is the single worksheet of every report.
const SheetName = "Survey Responses"

// ContentType of the rendered document.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Band is one cell of the grouped header row, spanning Span columns.
type Band struct {
	Label string
	Span  int
}

var (
	GroupedBands = []Band{
		{Label: "Date", Span: 1},
		{Label: "Client Info", Span: 4},
		{Label: "School", Span: 1},
		{Label: "Type", Span: 1},
		{Label: "Rating", Span: 1},
		{Label: "Reason", Span: 1},
	}

	GroupedColumns = []string{
		"Transaction Date",
		"First Name",
		"Middle Name",
		"Last Name",
		"Email",
		"School/HEI",
		"Transaction Type",
		"Satisfaction Rating",
		"Reason",
	}

	FlatColumns = []string{
		"ID",
		"Full Name",
		"Email",
		"Transaction Date",
		"Submitted At",
		"School",
		"Transaction Type",
		"Satisfaction Rating",
		"Reason",
		"Status",
	}

	groupedWidths = []float64{16, 18, 18, 18, 28, 36, 26, 20, 60}
	flatWidths    = []float64{38, 32, 28, 16, 20, 36, 26, 20, 60, 12}
)

// Renderer monta as planilhas; timestamps são exibidos no fuso configurado
type Renderer struct {
	location *time.Location
}

func NewRenderer(location *time.Location) *Renderer {
	if location == nil {
		location = time.UTC
	}
	return &Renderer{location: location}
}

// Render writes the records, in the given order, into a new workbook.
func (r *Renderer) Render(variant Variant, records []entities.SurveyResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	var err error
	if variant == VariantFlat {
		err = r.writeFlat(f, records)
	} else {
		err = r.writeGrouped(f, records)
	}
	if err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func (r *Renderer) writeGrouped(f *excelize.File, records []entities.SurveyResponse) error {
	col := 1
	for _, band := range GroupedBands {
		start, _ := excelize.CoordinatesToCellName(col, 1)
		if err := f.SetCellValue(SheetName, start, band.Label); err != nil {
			return err
		}
		if band.Span > 1 {
			end, _ := excelize.CoordinatesToCellName(col+band.Span-1, 1)
			if err := f.MergeCell(SheetName, start, end); err != nil {
				return fmt.Errorf("failed to merge header band %q: %w", band.Label, err)
			}
		}
		col += band.Span
	}

	if err := f.SetSheetRow(SheetName, "A2", &GroupedColumns); err != nil {
		return err
	}
	if err := r.styleHeader(f, len(GroupedColumns), 2, groupedWidths); err != nil {
		return err
	}

	for i, s := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		row := []interface{}{
			s.TransactionDate.Format("2006-01-02"),
			s.FirstName,
			s.MiddleName,
			s.LastName,
			s.Email,
			s.SchoolDisplayName(),
			s.TransactionTypeDisplay(),
			s.SatisfactionRating.Label(),
			s.Reason,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+3, err)
		}
	}
	return nil
}

func (r *Renderer) writeFlat(f *excelize.File, records []entities.SurveyResponse) error {
	if err := f.SetSheetRow(SheetName, "A1", &FlatColumns); err != nil {
		return err
	}
	if err := r.styleHeader(f, len(FlatColumns), 1, flatWidths); err != nil {
		return err
	}

	for i, s := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			s.ID,
			s.FullName(),
			s.Email,
			s.TransactionDate.Format("2006-01-02"),
			s.CreatedAt.In(r.location).Format("2006-01-02 15:04:05"),
			s.SchoolDisplayName(),
			s.TransactionType.Label(),
			s.SatisfactionRating.Label(),
			s.Reason,
			s.Status,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	return nil
}

// styleHeader aplica um único estilo às linhas de cabeçalho e congela o painel abaixo delas
func (r *Renderer) styleHeader(f *excelize.File, columns, headerRows int, widths []float64) error {
	border := []excelize.Border{
		{Type: "left", Color: "FFFFFF", Style: 1},
		{Type: "right", Color: "FFFFFF", Style: 1},
		{Type: "top", Color: "FFFFFF", Style: 1},
		{Type: "bottom", Color: "FFFFFF", Style: 1},
	}
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"1F4E78"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
		Border:    border,
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	last, _ := excelize.CoordinatesToCellName(columns, headerRows)
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return err
	}

	for i, width := range widths {
		name, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetName, name, name, width); err != nil {
			return err
		}
	}

	topLeft, _ := excelize.CoordinatesToCellName(1, headerRows+1)
	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRows,
		TopLeftCell: topLeft,
		ActivePane:  "bottomLeft",
	})
}
