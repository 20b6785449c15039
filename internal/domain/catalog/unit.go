package catalog

// DefaultMercenaryKeys are hired units listed after the core warband
var DefaultMercenaryKeys = []string{
	"combatMedic",
	"witchburner",
	"communicantATHunter",
	"mendelistAmmoMonk",
}

// Ability is a named special rule printed on a unit card
type Ability struct {
	Name string `json:"name" yaml:"name"`
	Text string `json:"text" yaml:"text"`
}

// Unit is a recruitable model type
type Unit struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Cost     Cost   `json:"cost"`
	MaxCount int    `json:"max_count"`

	// AllowedEquipment is the free-text equipment note from the unit card
	AllowedEquipment string `json:"allowed_equipment,omitempty"`

	// Presentation only, carried through as loaded
	Stats       []Stat    `json:"stats,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
	Description string    `json:"description,omitempty"`
	Abilities   []Ability `json:"abilities,omitempty"`

	Mercenary bool `json:"mercenary,omitempty"`
}

// Stat is one entry of a unit's profile line, kept in document order
type Stat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
