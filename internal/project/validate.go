package project

import "fmt"

// Validate performs general validation of a project and returns warnings.
// Warnings never block computation: the engine is total over its inputs and
// these only flag data a user probably wants to revisit.
func (p *Project) Validate() []string {
	var warnings []string

	if p.Name == "" {
		warnings = append(warnings, "project has no name")
	}

	switch p.Type {
	case TypeHouse, TypeBuilding:
	default:
		warnings = append(warnings, fmt.Sprintf("unknown project type %q", p.Type))
	}

	if p.CostMode == CostModeFlat && p.TotalBuiltArea == 0 && p.QuickFeasibility == nil {
		warnings = append(warnings, "flat cost mode with zero built area and no quick-feasibility block yields zero construction cost")
	}
	if p.CostMode == CostModeSegmented && p.SegmentedCosts.BuiltArea() == 0 {
		warnings = append(warnings, "segmented cost mode selected but all segment areas are zero")
	}
	if p.RevenueMode == RevenueModeQuick && p.QuickFeasibility == nil {
		warnings = append(warnings, "quick revenue mode selected but no quick-feasibility block is present")
	}
	if p.RevenueMode == RevenueModeUnits && len(p.Units) == 0 {
		warnings = append(warnings, "unit revenue mode selected but the unit list is empty; VGV will be zero")
	}

	for _, check := range []struct {
		name  string
		value float64
	}{
		{"totalBuiltArea", p.TotalBuiltArea},
		{"landArea", p.LandArea},
		{"landValue", p.LandValue},
		{"foundationCost", p.FoundationCost},
		{"documentationCost", p.DocumentationCost},
		{"marketingCost", p.MarketingCost},
		{"otherCosts", p.OtherCosts},
		{"cubValue", p.CUBValue},
	} {
		if check.value < 0 {
			warnings = append(warnings, fmt.Sprintf("%s is negative", check.name))
		}
	}

	for i, unit := range p.Units {
		if unit.Quantity < 0 || unit.Area < 0 || unit.PricePerSqm < 0 {
			warnings = append(warnings, fmt.Sprintf("unit %d has negative values", i+1))
		}
	}

	if p.Financials.MarketingSplitLaunch < 0 || p.Financials.MarketingSplitLaunch > 100 {
		warnings = append(warnings, "marketingSplitLaunch should be between 0 and 100")
	}

	return warnings
}
