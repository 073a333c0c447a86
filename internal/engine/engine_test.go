package engine

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/calcconstru/calcconstru/internal/project"
)

func quickProject() project.Project {
	return project.Project{
		Name:        "Estudo Rápido",
		Type:        project.TypeBuilding,
		CostMode:    project.CostModeFlat,
		RevenueMode: project.RevenueModeQuick,
		QuickFeasibility: &project.QuickFeasibility{
			LandArea:               1000,
			AskingPrice:            2000000,
			ConstructionPotential:  2.5,
			Efficiency:             70,
			SalePricePerSqm:        12000,
			ConstructionCostPerSqm: 5500,
			SoftCostRate:           10,
			RequiredMargin:         20,
		},
		Financials: project.DefaultFinancials(),
	}
}

func unitProject() project.Project {
	p := project.NewProject()
	p.Units = []project.Unit{
		{Quantity: 10, Area: 65, PricePerSqm: 7500},
	}
	p.RevenueMode = project.RevenueModeUnits
	return p
}

func approx(t *testing.T, name string, got, expected, tolerance float64) {
	t.Helper()
	if math.Abs(got-expected) > tolerance {
		t.Errorf("%s = %v, expected %v", name, got, expected)
	}
}

func TestComputeQuickFeasibilityScenario(t *testing.T) {
	result := Compute(quickProject())

	approx(t, "BuiltArea", result.BuiltArea, 2500, 0.01)
	approx(t, "PrivateArea", result.PrivateArea, 1750, 0.01)
	approx(t, "VGV", result.VGV, 21000000, 0.01)
	approx(t, "ConstructionCost", result.ConstructionCost, 13750000, 0.01)
	approx(t, "Efficiency", result.Efficiency, 70, 0.01)
}

func TestComputeExplicitUnits(t *testing.T) {
	result := Compute(unitProject())

	approx(t, "VGV", result.VGV, 4875000, 0.01)
	approx(t, "PrivateArea", result.PrivateArea, 650, 0.01)
	// 650 m² private over 1200 m² built
	approx(t, "Efficiency", result.Efficiency, 650.0/1200.0*100, 0.01)
}

func TestComputeAllZeroInputs(t *testing.T) {
	result := Compute(project.Project{})

	approx(t, "TotalCost", result.TotalCost, 0, 0)
	approx(t, "VGV", result.VGV, 0, 0)
	approx(t, "Profit", result.Profit, 0, 0)
	approx(t, "ROI", result.ROI, 0, 0)
	approx(t, "Margin", result.Margin, 0, 0)

	for _, item := range result.Breakdown {
		if math.IsNaN(item.Percentage) || math.IsInf(item.Percentage, 0) {
			t.Errorf("breakdown %s percentage is not finite: %v", item.Category, item.Percentage)
		}
	}
	for _, kpi := range []float64{
		result.Dashboard.KPIs.Utilization,
		result.Dashboard.KPIs.VGVPerPrivateArea,
		result.Dashboard.KPIs.CostPerBuiltArea,
	} {
		if math.IsNaN(kpi) || math.IsInf(kpi, 0) {
			t.Errorf("KPI is not finite: %v", kpi)
		}
	}
}

func TestTotalCostIdentity(t *testing.T) {
	tests := []struct {
		name    string
		project project.Project
	}{
		{"Default scenario", project.NewProject()},
		{"Quick feasibility", quickProject()},
		{"Explicit units", unitProject()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compute(tt.project)

			landCommission := tt.project.LandValue * tt.project.Financials.LandCommissionPct / 100
			landTaxes := tt.project.LandValue * tt.project.Financials.LandRegistryPct / 100
			landTotal := tt.project.LandValue + landCommission + landTaxes
			expenses := tt.project.DocumentationCost + tt.project.MarketingCost + tt.project.OtherCosts
			taxes := result.VGV * tt.project.Financials.TaxesPct / 100
			salesCommission := result.VGV * tt.project.Financials.SaleCommissionPct / 100

			expected := result.TotalConstruction + landTotal + expenses + taxes + salesCommission
			approx(t, "TotalCost", result.TotalCost, expected, 1e-6)
			approx(t, "Profit", result.Profit, result.VGV-expected, 1e-6)
		})
	}
}

func TestCostModes(t *testing.T) {
	base := project.NewProject()

	tests := []struct {
		name                 string
		mode                 project.CostMode
		expectedConstruction float64
		expectedFoundation   float64
	}{
		{
			name:                 "Flat mode uses CUB over the built area",
			mode:                 project.CostModeFlat,
			expectedConstruction: 1200 * 2480.20,
			expectedFoundation:   350000,
		},
		{
			name:                 "Detailed mode sums the six sub-costs",
			mode:                 project.CostModeDetailed,
			expectedConstruction: 1200 * (650 + 400 + 150 + 120 + 850 + 250),
			expectedFoundation:   350000,
		},
		{
			name: "Segmented mode prices by typology",
			mode: project.CostModeSegmented,
			// 300×1800 + 150×2800 + 750×2480 + 0×3200
			expectedConstruction: 300*1800 + 150*2800 + 750*2480,
			// (300+150+750) × 350
			expectedFoundation: 1200 * 350,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.CostMode = tt.mode
			result := Compute(p)
			approx(t, "ConstructionCost", result.ConstructionCost, tt.expectedConstruction, 0.01)
			approx(t, "FoundationCost", result.FoundationCost, tt.expectedFoundation, 0.01)
		})
	}
}

func TestCostModeIsolation(t *testing.T) {
	base := project.NewProject()
	var results []Result
	for _, mode := range []project.CostMode{project.CostModeFlat, project.CostModeDetailed, project.CostModeSegmented} {
		p := base
		p.CostMode = mode
		results = append(results, Compute(p))
	}

	reference := results[0].Dashboard.Analytical
	for i, result := range results[1:] {
		analytical := result.Dashboard.Analytical
		if !reflect.DeepEqual(analytical.Land, reference.Land) {
			t.Errorf("cost mode %d changed the land decomposition: %+v vs %+v", i+1, analytical.Land, reference.Land)
		}
		if !reflect.DeepEqual(analytical.Taxes, reference.Taxes) {
			t.Errorf("cost mode %d changed the tax decomposition", i+1)
		}
		if analytical.Expenses.Admin != reference.Expenses.Admin ||
			analytical.Expenses.MarketingLaunch != reference.Expenses.MarketingLaunch {
			t.Errorf("cost mode %d changed the expense decomposition", i+1)
		}
	}
}

func TestLegacyFlagPrecedence(t *testing.T) {
	tests := []struct {
		name         string
		useSegmented bool
		useDetailed  bool
		expected     project.CostMode
	}{
		{"Both flags prefer segmented", true, true, project.CostModeSegmented},
		{"Detailed only", false, true, project.CostModeDetailed},
		{"Neither flag is flat", false, false, project.CostModeFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if mode := project.CostModeFromFlags(tt.useSegmented, tt.useDetailed); mode != tt.expected {
				t.Errorf("CostModeFromFlags(%v, %v) = %q, expected %q", tt.useSegmented, tt.useDetailed, mode, tt.expected)
			}
		})
	}
}

func TestBreakdownPercentagesSumToHundred(t *testing.T) {
	for _, p := range []project.Project{project.NewProject(), quickProject(), unitProject()} {
		result := Compute(p)
		var valueSum, percentageSum float64
		for _, item := range result.Breakdown {
			valueSum += item.Value
			percentageSum += item.Percentage
		}
		approx(t, "breakdown value sum", valueSum, result.TotalCost, 0.01)
		if result.TotalCost > 0 {
			approx(t, "breakdown percentage sum", percentageSum, 100, 1e-6)
		}
	}
}

func TestRoundTripDeterminism(t *testing.T) {
	original := project.NewProject()
	first := Compute(original)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal project: %v", err)
	}
	var restored project.Project
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal project: %v", err)
	}
	second := Compute(restored)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("recomputing a round-tripped project produced a different result")
	}
}

func TestNegativeInputsStayFinite(t *testing.T) {
	p := project.NewProject()
	p.LandValue = -500000
	p.OtherCosts = -10000

	result := Compute(p)
	for _, val := range []float64{result.TotalCost, result.Profit, result.ROI, result.Margin} {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			t.Errorf("negative inputs produced a non-finite value: %v", val)
		}
	}
}
