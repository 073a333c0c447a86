package export

import (
	"bytes"
	"testing"

	"github.com/calcconstru/calcconstru/internal/engine"
	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/xuri/excelize/v2"
)

func TestWorkbook(t *testing.T) {
	p := project.NewProject()
	result := engine.Compute(p)

	data, err := Workbook(p, result)
	if err != nil {
		t.Fatalf("Workbook() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Workbook() returned an empty file")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated file is not a readable workbook: %v", err)
	}
	defer f.Close()

	for _, sheet := range []string{sheetSummary, sheetPL, sheetCashFlow} {
		if index, err := f.GetSheetIndex(sheet); err != nil || index < 0 {
			t.Errorf("workbook missing sheet %q", sheet)
		}
	}

	name, err := f.GetCellValue(sheetSummary, "B1")
	if err != nil {
		t.Fatalf("read summary cell: %v", err)
	}
	if name != p.Name {
		t.Errorf("summary project name = %q, expected %q", name, p.Name)
	}

	month, err := f.GetCellValue(sheetCashFlow, "A2")
	if err != nil {
		t.Fatalf("read cash-flow cell: %v", err)
	}
	if month != "1" {
		t.Errorf("first cash-flow month = %q, expected 1", month)
	}

	rows, err := f.GetRows(sheetCashFlow)
	if err != nil {
		t.Fatalf("read cash-flow rows: %v", err)
	}
	if len(rows)-1 != result.ConstructionTime {
		t.Errorf("cash-flow sheet has %d data rows, expected %d", len(rows)-1, result.ConstructionTime)
	}
}
