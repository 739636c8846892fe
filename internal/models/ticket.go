package models

// TicketTier is a named ticket category in the catalog.
type TicketTier struct {
	Tier        string   `json:"tier"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Perks       []string `json:"perks"`
	Available   bool     `json:"available"`
}
