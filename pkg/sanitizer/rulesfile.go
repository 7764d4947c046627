package sanitizer

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// RuleDefinition is the declarative YAML form of a custom rule. The pattern
// doubles as the validation predicate (a match is a violation) and, unless
// DetectOnly is set, as the transform via ReplaceAllString.
type RuleDefinition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	DetectOnly  bool   `yaml:"detect_only"`
}

type rulesFile struct {
	Rules []RuleDefinition `yaml:"rules"`
}

// LoadRulesFile reads custom rule definitions from a YAML file and compiles
// them into Rules ready for registration:
//
//	rules:
//	  - name: no-internal-hosts
//	    description: strips references to internal hostnames
//	    pattern: '(?i)\b[a-z0-9-]+\.internal\b'
//	    replacement: '[internal]'
func LoadRulesFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sanitizer: read rules file: %w", err)
	}
	return ParseRules(data)
}

// ParseRules compiles YAML rule definitions into Rules.
func ParseRules(data []byte) ([]Rule, error) {
	var f rulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("sanitizer: parse rules file: %w", err)
	}

	rules := make([]Rule, 0, len(f.Rules))
	for _, def := range f.Rules {
		rule, err := def.compile()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (d RuleDefinition) compile() (Rule, error) {
	if d.Name == "" {
		return Rule{}, errors.New("sanitizer: rule definition missing name")
	}
	if d.Pattern == "" {
		return Rule{}, fmt.Errorf("sanitizer: rule %q missing pattern", d.Name)
	}

	re, err := regexp.Compile(d.Pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("sanitizer: rule %q has invalid pattern: %w", d.Name, err)
	}

	rule := Rule{
		Name:        d.Name,
		Matcher:     re,
		Description: d.Description,
		Validate:    func(s string) bool { return !re.MatchString(s) },
	}
	if !d.DetectOnly {
		replacement := d.Replacement
		rule.Transform = func(s string) string { return re.ReplaceAllString(s, replacement) }
	}
	return rule, nil
}
