package eligibility

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/army-builder/internal/domain/catalog"
	armyerr "github.com/KirkDiggler/army-builder/internal/errors"
	"gopkg.in/yaml.v3"
)

// RulesFile is the YAML form of a resolver configuration
//
//	rules:
//	  - unit: ecclesiasticPrisoners
//	    keys: [tortureDevice]
//	names:
//	  autogun: autoPistol
type RulesFile struct {
	Rules []Rule            `yaml:"rules"`
	Names map[string]string `yaml:"names"`
}

// ParseRules decodes a rules document into a ResolverConfig. Omitted
// sections fall back to the defaults.
func ParseRules(data []byte) (*ResolverConfig, error) {
	var file RulesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, armyerr.WrapWithCode(err, armyerr.CodeValidation, "parse eligibility rules")
	}

	for i, rule := range file.Rules {
		if rule.UnitKey == "" {
			return nil, armyerr.Validationf("rule %d has no unit", i)
		}
		for _, c := range rule.Categories {
			if !isCategory(c) {
				return nil, armyerr.Validationf("rule for %s has unknown category %q", rule.UnitKey, c)
			}
		}
	}

	return &ResolverConfig{
		Rules:  file.Rules,
		Parser: NewTextParser(file.Names),
	}, nil
}

// LoadRules reads and parses a rules file
func LoadRules(path string) (*ResolverConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read eligibility rules %s: %w", path, err)
	}
	return ParseRules(data)
}

func isCategory(c catalog.Category) bool {
	for _, known := range catalog.Categories {
		if known == c {
			return true
		}
	}
	return false
}
