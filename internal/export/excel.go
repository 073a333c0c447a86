// Package export renders a computed feasibility study as an Excel workbook
// for sharing outside the application.
package export

import (
	"bytes"
	"fmt"

	"github.com/calcconstru/calcconstru/internal/engine"
	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary  = "Resumo"
	sheetPL       = "DRE"
	sheetCashFlow = "Fluxo de Caixa"
)

// Workbook renders the study as an .xlsx file: a summary sheet with KPIs
// and the cost breakdown, the synthetic and analytical P&L, and the monthly
// cash-flow schedule.
func Workbook(p project.Project, result engine.Result) ([]byte, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	currencyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create currency style: %w", err)
	}

	if err := writeSummarySheet(f, p, result, headerStyle, currencyStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writePLSheet(f, result, headerStyle, currencyStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeCashFlowSheet(f, result, headerStyle, currencyStyle); err != nil {
		f.Close()
		return nil, err
	}

	f.DeleteSheet("Sheet1")

	var buffer bytes.Buffer
	if _, err := f.WriteTo(&buffer); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buffer.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, p project.Project, result engine.Result, headerStyle, currencyStyle int) error {
	index, err := f.NewSheet(sheetSummary)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	rows := []struct {
		label    string
		value    any
		currency bool
	}{
		{"Projeto", p.Name, false},
		{"Tipo", string(p.Type), false},
		{"Padrão", string(p.Standard), false},
		{"VGV", result.VGV, true},
		{"Custo Total", result.TotalCost, true},
		{"Lucro", result.Profit, true},
		{"ROI (%)", result.ROI, false},
		{"Margem (%)", result.Margin, false},
		{"Prazo de Obra (meses)", result.ConstructionTime, false},
		{"Área Construída (m²)", result.BuiltArea, false},
		{"Área Privativa (m²)", result.PrivateArea, false},
		{"Eficiência (%)", result.Efficiency, false},
		{"Exposição de Caixa", result.Dashboard.KPIs.CashExposure, true},
		{"Valor Máximo do Terreno", result.Dashboard.KPIs.MaxLandValue, true},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		valueCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue(sheetSummary, labelCell, row.label); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", labelCell, err)
		}
		if err := f.SetCellValue(sheetSummary, valueCell, row.value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", valueCell, err)
		}
		if row.currency {
			if err := f.SetCellStyle(sheetSummary, valueCell, valueCell, currencyStyle); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", valueCell, err)
			}
		}
	}

	breakdownStart := len(rows) + 2
	if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", breakdownStart), "Composição de Custos"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetSummary, fmt.Sprintf("A%d", breakdownStart), fmt.Sprintf("A%d", breakdownStart), headerStyle); err != nil {
		return err
	}
	for i, item := range result.Breakdown {
		row := breakdownStart + 1 + i
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("A%d", row), item.Category); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("B%d", row), item.Value); err != nil {
			return err
		}
		if err := f.SetCellValue(sheetSummary, fmt.Sprintf("C%d", row), item.Percentage); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetSummary, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), currencyStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheetSummary, "A", "A", 28); err != nil {
		return err
	}
	return f.SetColWidth(sheetSummary, "B", "C", 18)
}

func writePLSheet(f *excelize.File, result engine.Result, headerStyle, currencyStyle int) error {
	if _, err := f.NewSheet(sheetPL); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	synthetic := result.Dashboard.Synthetic
	analytical := result.Dashboard.Analytical

	rows := []struct {
		label  string
		value  float64
		header bool
	}{
		{"DRE Sintético", 0, true},
		{"Receita", synthetic.Revenue, false},
		{"Terreno", -synthetic.LandCost, false},
		{"Construção", -synthetic.ConstructionCost, false},
		{"Despesas", -synthetic.Expenses, false},
		{"Impostos", -synthetic.Taxes, false},
		{"Resultado", synthetic.Result, false},
		{"", 0, true},
		{"DRE Analítico", 0, true},
		{"Receita Total", analytical.Revenue.Total, false},
		{"Terreno: Aquisição", -analytical.Land.Acquisition, false},
		{"Terreno: Comissão", -analytical.Land.Commission, false},
		{"Terreno: Registro/ITBI", -analytical.Land.Taxes, false},
		{"Construção: Direta", -analytical.Construction.Direct, false},
		{"Construção: Indireta", -analytical.Construction.Indirect, false},
		{"Despesas: Marketing Lançamento", -analytical.Expenses.MarketingLaunch, false},
		{"Despesas: Marketing Manutenção", -analytical.Expenses.MarketingMaintenance, false},
		{"Despesas: Administrativas", -analytical.Expenses.Admin, false},
		{"Despesas: Comissão de Vendas", -analytical.Expenses.Sales, false},
		{"Impostos sobre Vendas", -analytical.Taxes.Total, false},
	}

	for i, row := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		if err := f.SetCellValue(sheetPL, labelCell, row.label); err != nil {
			return err
		}
		if row.header {
			if row.label != "" {
				if err := f.SetCellStyle(sheetPL, labelCell, labelCell, headerStyle); err != nil {
					return err
				}
			}
			continue
		}
		valueCell := fmt.Sprintf("B%d", i+1)
		if err := f.SetCellValue(sheetPL, valueCell, row.value); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetPL, valueCell, valueCell, currencyStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetPL, "A", "A", 34)
}

func writeCashFlowSheet(f *excelize.File, result engine.Result, headerStyle, currencyStyle int) error {
	if _, err := f.NewSheet(sheetCashFlow); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := f.SetCellValue(sheetCashFlow, "A1", "Mês"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheetCashFlow, "B1", "Desembolso"); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetCashFlow, "A1", "B1", headerStyle); err != nil {
		return err
	}

	for i, entry := range result.CashFlow {
		row := i + 2
		if err := f.SetCellValue(sheetCashFlow, fmt.Sprintf("A%d", row), entry.Month); err != nil {
			return err
		}
		valueCell := fmt.Sprintf("B%d", row)
		if err := f.SetCellValue(sheetCashFlow, valueCell, entry.Amount); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheetCashFlow, valueCell, valueCell, currencyStyle); err != nil {
			return err
		}
	}

	return f.SetColWidth(sheetCashFlow, "B", "B", 18)
}
