package engine

import (
	"github.com/calcconstru/calcconstru/pkg/constants"
	"github.com/calcconstru/calcconstru/pkg/mathutil"
)

type dashboardInputs struct {
	vgv               float64
	landValue         float64
	landCommission    float64
	landTaxes         float64
	landTotal         float64
	totalConstruction float64
	direct            float64
	indirect          float64
	documentation     float64
	marketing         float64
	otherCosts        float64
	totalExpenses     float64
	marketingSplit    float64
	taxesValue        float64
	salesCommission   float64
	profit            float64
	margin            float64
	landArea          float64
	builtArea         float64
	privateArea       float64
	efficiency        float64
	occupancyRate     float64
}

// buildDashboard assembles the synthetic view, the analytical decomposition
// and the KPI block from figures the engine already resolved.
func buildDashboard(in dashboardInputs) Dashboard {
	marketingLaunch := mathutil.ApplyPercentage(in.marketing, in.marketingSplit)
	marketingMaintenance := in.marketing - marketingLaunch
	admin := in.documentation + in.otherCosts
	expensesTotal := in.totalExpenses + in.salesCommission

	return Dashboard{
		Synthetic: Synthetic{
			Revenue:          in.vgv,
			LandCost:         in.landTotal,
			ConstructionCost: in.totalConstruction,
			Expenses:         expensesTotal,
			Taxes:            in.taxesValue,
			Result:           in.profit,
			Margin:           in.margin,
		},
		Analytical: Analytical{
			Revenue: RevenueBreakdown{Total: in.vgv},
			Land: LandBreakdown{
				Total:       in.landTotal,
				Acquisition: in.landValue,
				Commission:  in.landCommission,
				Taxes:       in.landTaxes,
			},
			Construction: ConstructionBreakdown{
				Total:    in.totalConstruction,
				Direct:   in.direct,
				Indirect: in.indirect,
			},
			Expenses: ExpenseBreakdown{
				Total:                expensesTotal,
				MarketingLaunch:      marketingLaunch,
				MarketingMaintenance: marketingMaintenance,
				Admin:                admin,
				Sales:                in.salesCommission,
			},
			Taxes: TaxBreakdown{Total: in.taxesValue},
		},
		KPIs: KPIs{
			LandArea:          in.landArea,
			BuiltArea:         in.builtArea,
			PrivateArea:       in.privateArea,
			Efficiency:        in.efficiency,
			OccupancyRate:     in.occupancyRate,
			Utilization:       mathutil.SafeRatio(in.builtArea, in.landArea),
			VGVPerPrivateArea: mathutil.SafeRatio(in.vgv, in.privateArea),
			CostPerBuiltArea:  mathutil.SafeRatio(in.totalConstruction, in.builtArea),
			CashExposure:      in.landTotal + in.totalConstruction*constants.CashExposureConstructionShare,
			MaxLandValue: in.vgv*constants.MaxLandValueRevenueFactor -
				in.totalConstruction - in.totalExpenses - in.taxesValue - in.salesCommission,
		},
	}
}
