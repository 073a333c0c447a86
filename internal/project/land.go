package project

// LandStatus tracks a landbank entry through the acquisition funnel.
type LandStatus string

const (
	LandStatusAnalysis    LandStatus = "Em Análise"
	LandStatusNegotiation LandStatus = "Em Negociação"
	LandStatusPurchased   LandStatus = "Comprado"
	LandStatusDiscarded   LandStatus = "Descartado"
)

// Land is a landbank entry that can seed a feasibility study.
type Land struct {
	ID           string     `json:"id,omitempty"`
	CreatedAt    string     `json:"created_at,omitempty"`
	Code         string     `json:"code,omitempty"`
	Description  string     `json:"description"`
	ZipCode      string     `json:"zipCode,omitempty"`
	Address      string     `json:"address,omitempty"`
	Number       string     `json:"number,omitempty"`
	Neighborhood string     `json:"neighborhood,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	Area         float64    `json:"area"`
	Price        float64    `json:"price"`
	Status       LandStatus `json:"status"`
	Notes        string     `json:"notes,omitempty"`
	OwnerName    string     `json:"ownerName,omitempty"`
	OwnerContact string     `json:"ownerContact,omitempty"`
}

// ApplyTo seeds a project's land inputs from a landbank entry. The quick
// block, when present, tracks the same figures so derived studies stay in
// sync with the registry.
func (l Land) ApplyTo(p *Project) {
	p.LandArea = l.Area
	p.LandValue = l.Price
	if p.QuickFeasibility != nil {
		p.QuickFeasibility.LandArea = l.Area
		p.QuickFeasibility.AskingPrice = l.Price
	}
}
