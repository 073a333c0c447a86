package engine

import (
	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/calcconstru/calcconstru/pkg/constants"
	"github.com/calcconstru/calcconstru/pkg/mathutil"
)

// Breakdown category labels.
const (
	CategoryConstruction = "Construção"
	CategoryLand         = "Terreno"
	CategoryTaxes        = "Impostos"
	CategoryExpenses     = "Despesas"
)

// construction carries the resolved construction-side figures.
type construction struct {
	cost       float64
	foundation float64
	builtArea  float64
}

// revenue carries the resolved revenue-side figures.
type revenue struct {
	vgv         float64
	privateArea float64
	efficiency  float64
	builtArea   float64 // adopted when the construction side had none
	landArea    float64 // quick-block land area, for KPI fallback
}

// Compute maps a project into its full set of derived financial metrics.
func Compute(p project.Project) Result {
	p.Normalize()

	cons := resolveConstruction(p)
	totalConstruction := cons.cost + cons.foundation

	rev := resolveRevenue(p, cons.builtArea)
	builtArea := cons.builtArea
	if builtArea == 0 && rev.builtArea > 0 {
		builtArea = rev.builtArea
	}

	fin := p.Financials
	landCommission := mathutil.ApplyPercentage(p.LandValue, fin.LandCommissionPct)
	landTaxes := mathutil.ApplyPercentage(p.LandValue, fin.LandRegistryPct)
	landTotal := p.LandValue + landCommission + landTaxes

	indirect := mathutil.ApplyPercentage(totalConstruction, fin.IndirectCostsPct)
	direct := totalConstruction - indirect

	taxesValue := mathutil.ApplyPercentage(rev.vgv, fin.TaxesPct)
	salesCommission := mathutil.ApplyPercentage(rev.vgv, fin.SaleCommissionPct)

	totalExpenses := p.DocumentationCost + p.MarketingCost + p.OtherCosts

	profit := rev.vgv - landTotal - totalConstruction - totalExpenses - taxesValue - salesCommission
	totalCost := totalConstruction + landTotal + totalExpenses + taxesValue + salesCommission

	landArea := p.LandArea
	if landArea == 0 && rev.landArea > 0 {
		landArea = rev.landArea
	}

	result := Result{
		ConstructionCost:  cons.cost,
		FoundationCost:    cons.foundation,
		TotalConstruction: totalConstruction,
		TotalCost:         totalCost,
		VGV:               rev.vgv,
		Profit:            profit,
		ROI:               mathutil.Percentage(profit, totalCost),
		Margin:            mathutil.Percentage(profit, rev.vgv),
		BuiltArea:         builtArea,
		PrivateArea:       rev.privateArea,
		Efficiency:        rev.efficiency,
		PermittedArea:     p.LandArea * p.Zoning.UtilizationCoefficient,
	}

	result.Breakdown = buildBreakdown(totalConstruction, p.LandValue, landCommission, landTaxes, taxesValue, totalExpenses, salesCommission, totalCost)
	result.ConstructionTime = constructionMonths(p, builtArea)
	result.CashFlow = buildCashFlow(result.ConstructionTime, totalConstruction, landTotal, p.DocumentationCost, p.OtherCosts, p.MarketingCost)
	result.Dashboard = buildDashboard(dashboardInputs{
		vgv:               rev.vgv,
		landValue:         p.LandValue,
		landCommission:    landCommission,
		landTaxes:         landTaxes,
		landTotal:         landTotal,
		totalConstruction: totalConstruction,
		direct:            direct,
		indirect:          indirect,
		documentation:     p.DocumentationCost,
		marketing:         p.MarketingCost,
		otherCosts:        p.OtherCosts,
		totalExpenses:     totalExpenses,
		marketingSplit:    fin.MarketingSplitLaunch,
		taxesValue:        taxesValue,
		salesCommission:   salesCommission,
		profit:            profit,
		margin:            result.Margin,
		landArea:          landArea,
		builtArea:         builtArea,
		privateArea:       rev.privateArea,
		efficiency:        rev.efficiency,
		occupancyRate:     p.Zoning.OccupancyRate,
	})

	return result
}

// resolveConstruction evaluates whichever cost mode the record was built
// with. The tag is authoritative; no flag precedence is re-derived here.
func resolveConstruction(p project.Project) construction {
	switch p.CostMode {
	case project.CostModeSegmented:
		return construction{
			cost:       p.SegmentedCosts.ConstructionCost(),
			foundation: p.SegmentedCosts.FoundationCost(),
			builtArea:  p.SegmentedCosts.BuiltArea(),
		}
	case project.CostModeDetailed:
		return construction{
			cost:       p.TotalBuiltArea * p.DetailedCosts.UnitCost(),
			foundation: p.FoundationCost,
			builtArea:  p.TotalBuiltArea,
		}
	default:
		builtArea := p.TotalBuiltArea
		unitCost := p.CUBValue
		if builtArea == 0 && p.QuickFeasibility != nil {
			qf := p.QuickFeasibility
			builtArea = qf.LandArea * buildPotential(qf, p.Zoning)
			if qf.ConstructionCostPerSqm > 0 {
				unitCost = qf.ConstructionCostPerSqm
			}
		}
		return construction{
			cost:       builtArea * unitCost,
			foundation: p.FoundationCost,
			builtArea:  builtArea,
		}
	}
}

// resolveRevenue evaluates the tagged revenue source.
func resolveRevenue(p project.Project, builtArea float64) revenue {
	if p.RevenueMode == project.RevenueModeQuick && p.QuickFeasibility != nil {
		qf := p.QuickFeasibility
		effectiveBuiltArea := qf.LandArea * buildPotential(qf, p.Zoning)
		privateArea := effectiveBuiltArea * qf.Efficiency / constants.PercentageMultiplier
		return revenue{
			vgv:         privateArea * qf.SalePricePerSqm,
			privateArea: privateArea,
			efficiency:  qf.Efficiency,
			builtArea:   effectiveBuiltArea,
			landArea:    qf.LandArea,
		}
	}

	var vgv, privateArea float64
	for _, unit := range p.Units {
		vgv += unit.Quantity * unit.Area * unit.PricePerSqm
		privateArea += unit.Quantity * unit.Area
	}
	return revenue{
		vgv:         vgv,
		privateArea: privateArea,
		efficiency:  mathutil.Percentage(privateArea, builtArea),
	}
}

// buildPotential prefers the quick block's construction potential and falls
// back to the zoning utilization coefficient.
func buildPotential(qf *project.QuickFeasibility, zoning project.Zoning) float64 {
	if qf.ConstructionPotential > 0 {
		return qf.ConstructionPotential
	}
	return zoning.UtilizationCoefficient
}

// buildBreakdown groups the total cost into four chartable categories. Land
// registry taxes ride with sales taxes and the sales commission with the
// expenses so the slices always sum to the full total cost.
func buildBreakdown(totalConstruction, landValue, landCommission, landTaxes, taxesValue, totalExpenses, salesCommission, totalCost float64) []BreakdownItem {
	categories := []BreakdownItem{
		{Category: CategoryConstruction, Value: totalConstruction},
		{Category: CategoryLand, Value: landValue + landCommission},
		{Category: CategoryTaxes, Value: taxesValue + landTaxes},
		{Category: CategoryExpenses, Value: totalExpenses + salesCommission},
	}
	for i := range categories {
		categories[i].Percentage = mathutil.Percentage(categories[i].Value, totalCost)
	}
	return categories
}
