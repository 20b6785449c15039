package catalog

// Equipment is a purchasable item a unit may carry
type Equipment struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	Cost     Cost     `json:"cost"`
	Category Category `json:"category"`

	// Rules is the effect or special-rules text shown next to the option
	Rules string `json:"rules,omitempty"`
}
