package export

import (
	"fmt"

	domain "greenmarket-backend/internal/domain/quotation"

	"github.com/xuri/excelize/v2"
)

const (
	SheetSummary  = "Quotation"
	SheetCosts    = "Cost Breakdown"
	SheetTimeline = "Timeline"

	dateTimeLayout = "2006-01-02 15:04"
)

// XLSX renders quotation versions as Excel workbooks.
type XLSX struct{}

func NewXLSX() *XLSX { return &XLSX{} }

type styles struct {
	title, header, money int
}

func (x *XLSX) ExportVersion(q *domain.Quotation, v *domain.Version) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	// NewFile starts with Sheet1; rename it instead of adding an extra sheet
	if err := f.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	for _, name := range []string{SheetCosts, SheetTimeline} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeSummary(f, st, q, v); err != nil {
		return nil, fmt.Errorf("summary sheet: %w", err)
	}
	if err := writeCosts(f, st, v); err != nil {
		return nil, fmt.Errorf("cost sheet: %w", err)
	}
	if err := writeTimeline(f, st, v); err != nil {
		return nil, fmt.Errorf("timeline sheet: %w", err)
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		st  styles
		err error
	)
	if st.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	}); err != nil {
		return st, err
	}
	if st.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2E7D32"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	}); err != nil {
		return st, err
	}
	// #,##0.00
	st.money, err = f.NewStyle(&excelize.Style{NumFmt: 4})
	return st, err
}

func writeSummary(f *excelize.File, st styles, q *domain.Quotation, v *domain.Version) error {
	s := SheetSummary
	title := fmt.Sprintf("Quotation %s (version %d)", q.QuotationID, v.VersionNumber)
	if err := f.SetCellValue(s, "A1", title); err != nil {
		return err
	}
	if err := f.SetCellStyle(s, "A1", "A1", st.title); err != nil {
		return err
	}
	if err := f.SetRowHeight(s, 1, 30); err != nil {
		return err
	}

	rows := [][2]any{
		{"Status", string(v.Status)},
		{"Consumer", q.ConsumerName},
		{"Email", q.ConsumerEmail},
		{"Phone", q.ConsumerPhone},
		{"Address", q.Address},
		{"Property type", q.PropertyType},
		{"Average monthly bill", q.AvgElectricityBill},
		{"Roof area (m²)", q.RoofArea},
		{"System size", v.SystemSize},
		{"Panel specifications", v.PanelSpecifications},
		{"Estimated energy production", v.EstimatedEnergyProduction},
		{"Savings", v.Savings},
		{"Payback period", v.PaybackPeriod},
		{"ROI", v.ROI},
		{"Incentives", v.Incentives},
		{"Product warranties", v.ProductWarranties},
		{"Total cost", v.TotalCost},
	}
	if v.SubmittedAt != nil {
		rows = append(rows, [2]any{"Submitted at", v.SubmittedAt.UTC().Format(dateTimeLayout)})
	}
	if v.FinalizedAt != nil {
		rows = append(rows, [2]any{"Finalized at", v.FinalizedAt.UTC().Format(dateTimeLayout)})
	}

	for i, r := range rows {
		row := i + 3
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(s, cell, &[]any{r[0], r[1]}); err != nil {
			return err
		}
		if r[0] == "Total cost" || r[0] == "Average monthly bill" {
			val, _ := excelize.CoordinatesToCellName(2, row)
			if err := f.SetCellStyle(s, val, val, st.money); err != nil {
				return err
			}
		}
	}
	return f.SetColWidth(s, "A", "B", 32)
}

func writeCosts(f *excelize.File, st styles, v *domain.Version) error {
	s := SheetCosts
	if err := f.SetSheetRow(s, "A1", &[]any{"Item", "Quantity", "Unit price", "Total"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(s, "A1", "D1", st.header); err != nil {
		return err
	}
	for i, c := range v.CostBreakdown {
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(s, cell, &[]any{c.Item, c.Quantity, c.UnitPrice, c.Quantity * c.UnitPrice}); err != nil {
			return err
		}
	}

	totalRow := len(v.CostBreakdown) + 2
	label, _ := excelize.CoordinatesToCellName(3, totalRow)
	total, _ := excelize.CoordinatesToCellName(4, totalRow)
	if err := f.SetCellValue(s, label, "Total"); err != nil {
		return err
	}
	if err := f.SetCellValue(s, total, v.TotalCost); err != nil {
		return err
	}
	if len(v.CostBreakdown) > 0 {
		if err := f.SetCellFormula(s, total, fmt.Sprintf("SUM(D2:D%d)", totalRow-1)); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(s, "C2", total, st.money); err != nil {
		return err
	}
	if err := f.SetColWidth(s, "A", "A", 30); err != nil {
		return err
	}
	return f.SetColWidth(s, "B", "D", 14)
}

func writeTimeline(f *excelize.File, st styles, v *domain.Version) error {
	s := SheetTimeline
	if err := f.SetSheetRow(s, "A1", &[]any{"Phase", "Start", "End", "Description"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(s, "A1", "D1", st.header); err != nil {
		return err
	}
	for i, p := range v.Timeline {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(s, cell, &[]any{p.Phase, p.StartDate, p.EndDate, p.Description}); err != nil {
			return err
		}
	}
	if err := f.SetColWidth(s, "A", "C", 16); err != nil {
		return err
	}
	return f.SetColWidth(s, "D", "D", 48)
}
