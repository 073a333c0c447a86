package engine

import (
	"math"

	"github.com/calcconstru/calcconstru/internal/project"
	"github.com/calcconstru/calcconstru/pkg/constants"
	"github.com/calcconstru/calcconstru/pkg/mathutil"
)

// constructionMonths estimates the build duration. Houses scale with area;
// buildings with declared floors scale with floor counts, otherwise with
// area on a slower curve. Never below the minimum.
func constructionMonths(p project.Project, builtArea float64) int {
	var estimate float64
	switch {
	case p.Type == project.TypeHouse:
		estimate = 5 + builtArea/40
	case p.Zoning.StandardFloors > 0:
		z := p.Zoning
		estimate = 4 + z.GarageFloors*1.5 + z.StandardFloors*1.0 + z.LeisureFloors*2.0 + z.PenthouseFloors*1.5
	default:
		estimate = 12 + builtArea/60
	}
	return mathutil.CeilAtLeast(estimate, constants.MinConstructionMonths)
}

// buildCashFlow distributes the total construction cost over a 20/60/20
// mobilization/heavy-works/finishing curve. Land and documentation are
// lumped into month 1 and marketing is amortized linearly, so summing the
// schedule recovers every cost component exactly once.
func buildCashFlow(months int, totalConstruction, landTotal, documentation, otherCosts, marketing float64) []CashFlowEntry {
	if months <= 0 {
		return nil
	}

	initialPhase := int(math.Ceil(float64(months) * constants.InitialPhaseShare))
	middlePhase := int(math.Ceil(float64(months) * constants.MiddlePhaseShare))
	if initialPhase+middlePhase > months {
		middlePhase = months - initialPhase
	}
	finalPhase := months - initialPhase - middlePhase

	middleShare := constants.MiddlePhaseShare
	if finalPhase == 0 {
		// Short schedules leave no finishing months; fold that share into
		// the heavy-works phase so the full cost is still disbursed.
		middleShare += constants.FinalPhaseShare
	}

	initialPerMonth := mathutil.SafeRatio(totalConstruction*constants.InitialPhaseShare, float64(initialPhase))
	middlePerMonth := mathutil.SafeRatio(totalConstruction*middleShare, float64(middlePhase))
	finalPerMonth := mathutil.SafeRatio(totalConstruction*constants.FinalPhaseShare, float64(finalPhase))
	marketingPerMonth := marketing / float64(months)

	schedule := make([]CashFlowEntry, 0, months)
	for month := 1; month <= months; month++ {
		var amount float64
		switch {
		case month <= initialPhase:
			amount = initialPerMonth
		case month <= initialPhase+middlePhase:
			amount = middlePerMonth
		default:
			amount = finalPerMonth
		}
		if month == 1 {
			amount += landTotal + documentation + otherCosts
		}
		amount += marketingPerMonth
		schedule = append(schedule, CashFlowEntry{Month: month, Amount: amount})
	}
	return schedule
}
