package catalog

// Category groups equipment for display and eligibility
type Category string

const (
	CategoryRanged Category = "ranged"
	CategoryMelee  Category = "melee"
	CategoryArmor  Category = "armor"
	CategoryMisc   Category = "misc"
)

// Categories lists every category in display order
var Categories = []Category{CategoryRanged, CategoryMelee, CategoryArmor, CategoryMisc}

// documentCategories maps the section names used in equipment documents
var documentCategories = map[string]Category{
	"rangedWeapons": CategoryRanged,
	"meleeWeapons":  CategoryMelee,
	"armor":         CategoryArmor,
	"equipment":     CategoryMisc,
}

// ParseCategory maps an equipment document section name to a Category
func ParseCategory(section string) (Category, bool) {
	c, ok := documentCategories[section]
	return c, ok
}

// Label is the heading shown above a category's options
func (c Category) Label() string {
	switch c {
	case CategoryRanged:
		return "Ranged"
	case CategoryMelee:
		return "Melee"
	case CategoryArmor:
		return "Armor"
	case CategoryMisc:
		return "Miscellaneous"
	default:
		return string(c)
	}
}
