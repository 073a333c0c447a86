// Package engine computes the derived financial metrics for a development
// scenario. Compute is a pure function: no I/O, no ambient state, and every
// degenerate denominator resolves to zero instead of propagating NaN or Inf.
package engine

// BreakdownItem is one named slice of the total cost, for charting.
type BreakdownItem struct {
	Category   string  `json:"category"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// CashFlowEntry is one month of projected disbursement.
type CashFlowEntry struct {
	Month  int     `json:"month"`
	Amount float64 `json:"amount"`
}

// Synthetic is the one-line-per-group P&L view.
type Synthetic struct {
	Revenue          float64 `json:"revenue"`
	LandCost         float64 `json:"landCost"`
	ConstructionCost float64 `json:"constructionCost"`
	Expenses         float64 `json:"expenses"`
	Taxes            float64 `json:"taxes"`
	Result           float64 `json:"result"`
	Margin           float64 `json:"margin"`
}

// RevenueBreakdown carries the revenue side of the analytical P&L.
type RevenueBreakdown struct {
	Total float64 `json:"total"`
}

// LandBreakdown decomposes the land acquisition cost.
type LandBreakdown struct {
	Total       float64 `json:"total"`
	Acquisition float64 `json:"acquisition"`
	Commission  float64 `json:"commission"`
	Taxes       float64 `json:"taxes"`
}

// ConstructionBreakdown splits construction into direct and indirect cost.
type ConstructionBreakdown struct {
	Total    float64 `json:"total"`
	Direct   float64 `json:"direct"`
	Indirect float64 `json:"indirect"`
}

// ExpenseBreakdown decomposes commercial and administrative expenses.
type ExpenseBreakdown struct {
	Total                float64 `json:"total"`
	MarketingLaunch      float64 `json:"marketingLaunch"`
	MarketingMaintenance float64 `json:"marketingMaintenance"`
	Admin                float64 `json:"admin"`
	Sales                float64 `json:"sales"`
}

// TaxBreakdown carries sales taxes in the analytical P&L.
type TaxBreakdown struct {
	Total float64 `json:"total"`
}

// Analytical is the nested P&L view.
type Analytical struct {
	Revenue      RevenueBreakdown      `json:"revenue"`
	Land         LandBreakdown         `json:"land"`
	Construction ConstructionBreakdown `json:"construction"`
	Expenses     ExpenseBreakdown      `json:"expenses"`
	Taxes        TaxBreakdown          `json:"taxes"`
}

// KPIs are the headline indicators of the dashboard.
type KPIs struct {
	LandArea          float64 `json:"landArea"`
	BuiltArea         float64 `json:"builtArea"`
	PrivateArea       float64 `json:"privateArea"`
	Efficiency        float64 `json:"efficiency"`
	OccupancyRate     float64 `json:"occupancyRate"`
	Utilization       float64 `json:"utilization"`
	VGVPerPrivateArea float64 `json:"vgvPerSqmPrivate"`
	CostPerBuiltArea  float64 `json:"costPerSqmBuilt"`
	CashExposure      float64 `json:"cashExposure"`
	MaxLandValue      float64 `json:"maxLandValue"`
}

// Dashboard groups the multi-level financial views.
type Dashboard struct {
	Synthetic  Synthetic  `json:"synthetic"`
	Analytical Analytical `json:"analytical"`
	KPIs       KPIs       `json:"kpis"`
}

// Result holds every figure derived from a project. It is recomputed from
// scratch on each call and never persisted.
type Result struct {
	ConstructionCost  float64 `json:"constructionCost"`
	FoundationCost    float64 `json:"foundationCost"`
	TotalConstruction float64 `json:"totalConstruction"`
	TotalCost         float64 `json:"totalCost"`
	VGV               float64 `json:"vgv"`
	Profit            float64 `json:"profit"`
	ROI               float64 `json:"roi"`
	Margin            float64 `json:"margin"`

	BuiltArea     float64 `json:"builtArea"`
	PrivateArea   float64 `json:"privateArea"`
	Efficiency    float64 `json:"efficiency"`
	PermittedArea float64 `json:"permittedArea"`

	ConstructionTime int             `json:"constructionTime"`
	Breakdown        []BreakdownItem `json:"breakdown"`
	CashFlow         []CashFlowEntry `json:"cashFlow"`
	Dashboard        Dashboard       `json:"dashboard"`
}
