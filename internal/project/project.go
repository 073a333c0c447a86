// Package project defines the data structures describing a development
// scenario and includes functions for resolving cost and revenue modes.
package project

// Type classifies the development.
type Type string

const (
	TypeHouse    Type = "Casa"
	TypeBuilding Type = "Prédio"
)

// Standard is the finish standard driving the default unit cost (CUB).
type Standard string

const (
	StandardLow    Standard = "Baixo"
	StandardNormal Standard = "Normal"
	StandardHigh   Standard = "Alto"
)

// CostMode selects which construction-cost inputs are authoritative.
// Exactly one mode is active per calculation; the mode is fixed when the
// record is built, never re-derived from flags inside the engine.
type CostMode string

const (
	CostModeFlat      CostMode = "flat"
	CostModeDetailed  CostMode = "detailed"
	CostModeSegmented CostMode = "segmented"
)

// CostModeFromFlags converts legacy two-flag records. Segmented wins over
// detailed, detailed over flat.
func CostModeFromFlags(useSegmented, useDetailed bool) CostMode {
	switch {
	case useSegmented:
		return CostModeSegmented
	case useDetailed:
		return CostModeDetailed
	default:
		return CostModeFlat
	}
}

// RevenueMode selects the revenue source for VGV.
type RevenueMode string

const (
	RevenueModeUnits RevenueMode = "units"
	RevenueModeQuick RevenueMode = "quick"
)

// ResolveRevenueMode makes the empty-unit-list fallback an explicit state:
// an explicit unit mix is authoritative whenever present, otherwise the
// quick-feasibility block drives the implied mix.
func ResolveRevenueMode(units []Unit, quick *QuickFeasibility) RevenueMode {
	if len(units) > 0 {
		return RevenueModeUnits
	}
	if quick != nil {
		return RevenueModeQuick
	}
	return RevenueModeUnits
}

// DetailedCosts breaks the construction unit cost into six per-m² items.
type DetailedCosts struct {
	Structure  float64 `json:"structure" yaml:"structure"`
	Masonry    float64 `json:"masonry" yaml:"masonry"`
	Electrical float64 `json:"electrical" yaml:"electrical"`
	Plumbing   float64 `json:"plumbing" yaml:"plumbing"`
	Finishing  float64 `json:"finishing" yaml:"finishing"`
	Roofing    float64 `json:"roofing" yaml:"roofing"`
}

// UnitCost sums the six per-m² items.
func (d DetailedCosts) UnitCost() float64 {
	return d.Structure + d.Masonry + d.Electrical + d.Plumbing + d.Finishing + d.Roofing
}

// CostSegment is a typology slice with its own area and unit cost.
type CostSegment struct {
	Area        float64 `json:"area" yaml:"area"`
	PricePerSqm float64 `json:"pricePerSqm" yaml:"pricePerSqm"`
}

// SegmentedCosts prices construction by typology. The foundation unit cost
// applies over the summed segment areas.
type SegmentedCosts struct {
	FoundationPricePerSqm float64     `json:"foundationPricePerSqm" yaml:"foundationPricePerSqm"`
	Garage                CostSegment `json:"garage" yaml:"garage"`
	Leisure               CostSegment `json:"leisure" yaml:"leisure"`
	Standard              CostSegment `json:"standard" yaml:"standard"`
	Penthouse             CostSegment `json:"penthouse" yaml:"penthouse"`
}

// BuiltArea sums the segment areas.
func (s SegmentedCosts) BuiltArea() float64 {
	return s.Garage.Area + s.Leisure.Area + s.Standard.Area + s.Penthouse.Area
}

// ConstructionCost sums area times unit cost across segments.
func (s SegmentedCosts) ConstructionCost() float64 {
	return s.Garage.Area*s.Garage.PricePerSqm +
		s.Leisure.Area*s.Leisure.PricePerSqm +
		s.Standard.Area*s.Standard.PricePerSqm +
		s.Penthouse.Area*s.Penthouse.PricePerSqm
}

// FoundationCost applies the foundation unit cost over the summed area.
func (s SegmentedCosts) FoundationCost() float64 {
	return s.BuiltArea() * s.FoundationPricePerSqm
}

// Unit describes one sellable unit typology.
type Unit struct {
	ID          string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string  `json:"name,omitempty" yaml:"name,omitempty"`
	Quantity    float64 `json:"quantity" yaml:"quantity"`
	Area        float64 `json:"area" yaml:"area"`
	PricePerSqm float64 `json:"pricePerSqm" yaml:"pricePerSqm"`
}

// Zoning carries the municipal envelope parameters plus floor counts by
// category for building-type time estimates.
type Zoning struct {
	OccupancyRate          float64 `json:"occupancyRate" yaml:"occupancyRate"`
	UtilizationCoefficient float64 `json:"utilizationCoefficient" yaml:"utilizationCoefficient"`
	MinSetback             float64 `json:"minSetback" yaml:"minSetback"`
	MaxHeight              float64 `json:"maxHeight" yaml:"maxHeight"`
	GarageFloors           float64 `json:"garageFloors" yaml:"garageFloors"`
	StandardFloors         float64 `json:"standardFloors" yaml:"standardFloors"`
	PenthouseFloors        float64 `json:"penthouseFloors" yaml:"penthouseFloors"`
	LeisureFloors          float64 `json:"leisureFloors" yaml:"leisureFloors"`
}

// QuickFeasibility derives an implied unit mix when no explicit units exist.
type QuickFeasibility struct {
	LandArea               float64 `json:"landArea" yaml:"landArea"`
	AskingPrice            float64 `json:"askingPrice" yaml:"askingPrice"`
	PhysicalSwap           float64 `json:"physicalSwap" yaml:"physicalSwap"`
	FinancialSwap          float64 `json:"financialSwap" yaml:"financialSwap"`
	ConstructionPotential  float64 `json:"constructionPotential" yaml:"constructionPotential"`
	Efficiency             float64 `json:"efficiency" yaml:"efficiency"`
	SalePricePerSqm        float64 `json:"salePricePerSqm" yaml:"salePricePerSqm"`
	ConstructionCostPerSqm float64 `json:"constructionCostPerSqm" yaml:"constructionCostPerSqm"`
	SoftCostRate           float64 `json:"softCostRate" yaml:"softCostRate"`
	RequiredMargin         float64 `json:"requiredMargin" yaml:"requiredMargin"`
}

// FinancialAssumptions holds the percentage rates applied by the engine.
// All values are whole percentages (6 means 6%).
type FinancialAssumptions struct {
	LandCommissionPct    float64 `json:"landCommissionPct" yaml:"landCommissionPct"`
	LandRegistryPct      float64 `json:"landRegistryPct" yaml:"landRegistryPct"`
	SaleCommissionPct    float64 `json:"saleCommissionPct" yaml:"saleCommissionPct"`
	TaxesPct             float64 `json:"taxesPct" yaml:"taxesPct"`
	MarketingSplitLaunch float64 `json:"marketingSplitLaunch" yaml:"marketingSplitLaunch"`
	IndirectCostsPct     float64 `json:"indirectCostsPct" yaml:"indirectCostsPct"`
}

// Media groups links with no calculation relevance.
type Media struct {
	LocationLink string   `json:"locationLink,omitempty" yaml:"locationLink,omitempty"`
	ImageURLs    []string `json:"imageUrls,omitempty" yaml:"imageUrls,omitempty"`
	ProjectFiles []string `json:"projectFiles,omitempty" yaml:"projectFiles,omitempty"`
}

// Project is the full input record for one development scenario.
type Project struct {
	ID        string   `json:"id,omitempty" yaml:"id,omitempty"`
	CreatedAt string   `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	Name      string   `json:"name" yaml:"name"`
	Type      Type     `json:"type" yaml:"type"`
	Standard  Standard `json:"standard" yaml:"standard"`

	TotalBuiltArea float64 `json:"totalBuiltArea" yaml:"totalBuiltArea"`
	LandArea       float64 `json:"landArea" yaml:"landArea"`
	Zoning         Zoning  `json:"zoning" yaml:"zoning"`

	CostMode       CostMode       `json:"costMode" yaml:"costMode"`
	CUBValue       float64        `json:"cubValue" yaml:"cubValue"`
	DetailedCosts  DetailedCosts  `json:"detailedCosts" yaml:"detailedCosts"`
	SegmentedCosts SegmentedCosts `json:"segmentedCosts" yaml:"segmentedCosts"`

	LandValue         float64 `json:"landValue" yaml:"landValue"`
	FoundationCost    float64 `json:"foundationCost" yaml:"foundationCost"`
	DocumentationCost float64 `json:"documentationCost" yaml:"documentationCost"`
	MarketingCost     float64 `json:"marketingCost" yaml:"marketingCost"`
	OtherCosts        float64 `json:"otherCosts" yaml:"otherCosts"`

	RevenueMode      RevenueMode       `json:"revenueMode" yaml:"revenueMode"`
	Units            []Unit            `json:"units" yaml:"units"`
	QuickFeasibility *QuickFeasibility `json:"quickFeasibility,omitempty" yaml:"quickFeasibility,omitempty"`

	Financials FinancialAssumptions `json:"financials" yaml:"financials"`

	Media        Media  `json:"media" yaml:"media"`
	BrokerName   string `json:"brokerName,omitempty" yaml:"brokerName,omitempty"`
	BrokerPhone  string `json:"brokerPhone,omitempty" yaml:"brokerPhone,omitempty"`
	Observations string `json:"observations,omitempty" yaml:"observations,omitempty"`
}

// Normalize fills mode tags left empty by older payloads so downstream code
// can switch on them unconditionally.
func (p *Project) Normalize() {
	switch p.CostMode {
	case CostModeFlat, CostModeDetailed, CostModeSegmented:
	default:
		p.CostMode = CostModeFlat
	}
	switch p.RevenueMode {
	case RevenueModeUnits, RevenueModeQuick:
	default:
		p.RevenueMode = ResolveRevenueMode(p.Units, p.QuickFeasibility)
	}
}
