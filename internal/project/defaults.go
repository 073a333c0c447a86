package project

import "github.com/calcconstru/calcconstru/pkg/constants"

// DefaultUnitCost returns the CUB-like unit cost for a finish standard.
func DefaultUnitCost(standard Standard) float64 {
	switch standard {
	case StandardLow:
		return constants.DefaultCUBLow
	case StandardHigh:
		return constants.DefaultCUBHigh
	default:
		return constants.DefaultCUBNormal
	}
}

// DefaultFinancials returns the market-typical assumption rates.
func DefaultFinancials() FinancialAssumptions {
	return FinancialAssumptions{
		LandCommissionPct:    constants.DefaultLandCommissionPct,
		LandRegistryPct:      constants.DefaultLandRegistryPct,
		SaleCommissionPct:    constants.DefaultSaleCommissionPct,
		TaxesPct:             constants.DefaultSalesTaxPct,
		MarketingSplitLaunch: constants.DefaultMarketingSplitLaunch,
		IndirectCostsPct:     constants.DefaultIndirectCostsPct,
	}
}

// NewProject builds the default scenario users start from.
func NewProject() Project {
	return Project{
		Name:     "Meu Novo Empreendimento",
		Type:     TypeBuilding,
		Standard: StandardNormal,

		TotalBuiltArea: 1200,
		LandArea:       600,
		Zoning: Zoning{
			OccupancyRate:          60,
			UtilizationCoefficient: 2.5,
			MinSetback:             3.0,
			MaxHeight:              15.0,
			GarageFloors:           1,
			StandardFloors:         4,
			PenthouseFloors:        0,
			LeisureFloors:          1,
		},

		CostMode: CostModeFlat,
		CUBValue: constants.DefaultCUBNormal,
		DetailedCosts: DetailedCosts{
			Structure:  650,
			Masonry:    400,
			Electrical: 150,
			Plumbing:   120,
			Finishing:  850,
			Roofing:    250,
		},
		SegmentedCosts: SegmentedCosts{
			FoundationPricePerSqm: 350,
			Garage:                CostSegment{Area: 300, PricePerSqm: 1800},
			Leisure:               CostSegment{Area: 150, PricePerSqm: 2800},
			Standard:              CostSegment{Area: 750, PricePerSqm: 2480},
			Penthouse:             CostSegment{Area: 0, PricePerSqm: 3200},
		},

		LandValue:         1500000,
		FoundationCost:    350000,
		DocumentationCost: 80000,
		MarketingCost:     120000,
		OtherCosts:        50000,

		RevenueMode: RevenueModeUnits,
		Units: []Unit{
			{ID: "1", Name: "Tipo A (2 Quartos)", Quantity: 10, Area: 65, PricePerSqm: 7500},
		},
		QuickFeasibility: &QuickFeasibility{
			LandArea:               1000,
			AskingPrice:            2000000,
			ConstructionPotential:  2.5,
			Efficiency:             70,
			SalePricePerSqm:        12000,
			ConstructionCostPerSqm: 5500,
			SoftCostRate:           10,
			RequiredMargin:         20,
		},

		Financials: DefaultFinancials(),
	}
}
