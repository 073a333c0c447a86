// Package output provides utilities for formatting and displaying
// feasibility results.
package output

import (
	"fmt"
	"strings"

	"github.com/calcconstru/calcconstru/internal/engine"
	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/calcconstru/calcconstru/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(p project.Project, result engine.Result) {
	fmt.Print(PrettyString(p, result))
}

// PrettyString renders the report that PrettyFormat prints.
func PrettyString(p project.Project, result engine.Result) string {
	printer := message.NewPrinter(language.BrazilianPortuguese)
	var b strings.Builder

	fmt.Fprintf(&b, "--- Viabilidade: %s (%s, padrão %s) ---\n", p.Name, p.Type, p.Standard)
	fmt.Fprintf(&b, "VGV:            %s\n", format.Currency(result.VGV))
	fmt.Fprintf(&b, "Custo total:    %s\n", format.Currency(result.TotalCost))
	fmt.Fprintf(&b, "Lucro:          %s\n", format.Currency(result.Profit))
	fmt.Fprintf(&b, "ROI:            %s   Margem: %s\n", format.Percent(result.ROI), format.Percent(result.Margin))
	fmt.Fprintf(&b, "Prazo de obra:  %d meses\n", result.ConstructionTime)
	printer.Fprintf(&b, "Área construída: %.0f m²   Área privativa: %.0f m²\n", result.BuiltArea, result.PrivateArea)

	b.WriteString("\nComposição de custos\n")
	b.WriteString("Categoria   | Valor           | %\n")
	b.WriteString("_________   | _____           | _\n")
	for _, item := range result.Breakdown {
		fmt.Fprintf(&b, "%-11s | %15s | %s\n", item.Category, format.Currency(item.Value), format.Percent(item.Percentage))
	}

	b.WriteString("\nFluxo de caixa\n")
	b.WriteString("Mês  | Desembolso\n")
	b.WriteString("___  | __________\n")
	for _, entry := range result.CashFlow {
		fmt.Fprintf(&b, "%-4d | %s\n", entry.Month, format.Currency(entry.Amount))
	}

	return b.String()
}

// CsvFormat outputs the cash-flow schedule in comma-separated value format.
func CsvFormat(result engine.Result) {
	fmt.Print(CsvString(result))
}

// CsvString renders the schedule that CsvFormat prints.
func CsvString(result engine.Result) string {
	var b strings.Builder
	b.WriteString("\"month\",\"amount\"\n")
	for _, entry := range result.CashFlow {
		fmt.Fprintf(&b, "\"%d\",\"%.2f\"\n", entry.Month, entry.Amount)
	}
	return b.String()
}
