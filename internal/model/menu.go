package model

// MenuItem is a single entry in the menu catalog.  Price is expressed in the
// restaurant's currency as a decimal value; the backend owns rounding rules.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Available   bool    `json:"available"`
}

// MenuCategory groups items for display.  The back-office edits items
// individually; categories are derived server-side by the backend.
type MenuCategory struct {
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
