package sanitizer

// Config controls the sanitization engine. The zero value with defaults
// applied is the permissive reporting mode: violations are recorded and
// logged but nothing is rejected.
type Config struct {
	Enabled           bool     `env:"SANITIZER_ENABLED" envDefault:"true"`
	Rules             []string `env:"SANITIZER_RULES" envDefault:"trim,html,script,xss,sql"`
	StrictMode        bool     `env:"SANITIZER_STRICT_MODE" envDefault:"false"`
	LogViolations     bool     `env:"SANITIZER_LOG_VIOLATIONS" envDefault:"true"`
	RejectOnViolation bool     `env:"SANITIZER_REJECT_ON_VIOLATION" envDefault:"false"`

	// CustomRules are registered on engine construction. Rules carry
	// functions, so they cannot be expressed as environment variables;
	// use LoadRulesFile for declarative definitions.
	CustomRules []Rule `env:"-"`
}

func (c Config) withDefaults() Config {
	if len(c.Rules) == 0 {
		c.Rules = DefaultRules()
	}
	return c
}

// DefaultRules returns the rule names applied when the config names none.
func DefaultRules() []string {
	return []string{"trim", "html", "script", "xss", "sql"}
}
