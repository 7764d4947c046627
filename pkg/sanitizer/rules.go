package sanitizer

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Rule pairs an optional validation predicate with an optional transform,
// applied to string leaves during traversal. A rule with no Validate never
// records a violation; a rule with no Transform never changes the value.
type Rule struct {
	Name        string
	Matcher     *regexp.Regexp
	Transform   func(string) string
	Validate    func(string) bool
	Description string
}

// Pre-compiled patterns shared by the built-in rules.
var (
	htmlTagRegex       = regexp.MustCompile(`<[^>]*>`)
	scriptTagRegex     = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	sqlKeywordRegex    = regexp.MustCompile(`(?i)\b(ALTER|CREATE|DELETE|DROP|EXEC|INSERT|SELECT|UNION|UPDATE)\b`)
	xssPatternRegex    = regexp.MustCompile(`(?i)(javascript:|vbscript:|onload|onerror|onclick|onmouseover)`)
	emailShapeRegex    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneStripRegex    = regexp.MustCompile(`[\s\-()]`)
	phoneDigitsRegex   = regexp.MustCompile(`^\+?\d+$`)
	urlShapeRegex      = regexp.MustCompile(`^https?://\S+$`)
	pathTraversalRegex = regexp.MustCompile(`(?i)(\.\./|\.\.\\|\.\.%2f|\.\.%5c)`)
	commandCharsRegex  = regexp.MustCompile("[;&|`$(){}\\[\\]]")
)

// builtinRules returns the default rule set every new registry is seeded with.
func builtinRules() []Rule {
	return []Rule{
		{
			Name:        "html",
			Matcher:     htmlTagRegex,
			Validate:    func(s string) bool { return !htmlTagRegex.MatchString(s) },
			Transform:   func(s string) string { return htmlTagRegex.ReplaceAllString(s, "") },
			Description: "strips HTML tags and flags markup found in plain-text fields",
		},
		{
			Name:        "script",
			Matcher:     scriptTagRegex,
			Validate:    func(s string) bool { return !scriptTagRegex.MatchString(s) },
			Transform:   func(s string) string { return scriptTagRegex.ReplaceAllString(s, "") },
			Description: "strips <script> blocks including their content",
		},
		{
			Name:        "sql",
			Matcher:     sqlKeywordRegex,
			Validate:    func(s string) bool { return !sqlKeywordRegex.MatchString(s) },
			Description: "detects SQL keywords; detection only, the value is left unchanged",
		},
		{
			Name:        "xss",
			Matcher:     xssPatternRegex,
			Validate:    func(s string) bool { return !xssPatternRegex.MatchString(s) },
			Transform:   func(s string) string { return xssPatternRegex.ReplaceAllString(s, "") },
			Description: "strips javascript:/vbscript: protocols and inline event handlers",
		},
		{
			Name:        "trim",
			Transform:   strings.TrimSpace,
			Description: "trims leading and trailing whitespace; never a violation",
		},
		{
			Name:        "email-normalize",
			Matcher:     emailShapeRegex,
			Validate:    emailShapeRegex.MatchString,
			Transform:   func(s string) string { return strings.ToLower(strings.TrimSpace(s)) },
			Description: "lowercases and trims e-mail addresses; flags values without a user@host.tld shape",
		},
		{
			Name:    "phone-normalize",
			Matcher: phoneStripRegex,
			Validate: func(s string) bool {
				return phoneDigitsRegex.MatchString(phoneStripRegex.ReplaceAllString(s, ""))
			},
			Transform:   func(s string) string { return phoneStripRegex.ReplaceAllString(s, "") },
			Description: "strips phone formatting characters; flags values with non-numeric leftovers",
		},
		{
			Name:        "url-validate",
			Matcher:     urlShapeRegex,
			Validate:    urlShapeRegex.MatchString,
			Description: "flags values that are not http(s) URLs; the value is left unchanged",
		},
		{
			Name:        "path-traversal",
			Matcher:     pathTraversalRegex,
			Validate:    func(s string) bool { return !pathTraversalRegex.MatchString(s) },
			Description: "detects ../ style traversal sequences, including URL-encoded forms",
		},
		{
			Name:        "command-injection",
			Matcher:     commandCharsRegex,
			Validate:    func(s string) bool { return !commandCharsRegex.MatchString(s) },
			Transform:   func(s string) string { return commandCharsRegex.ReplaceAllString(s, "") },
			Description: "strips shell metacharacters",
		},
		{
			Name:        "unicode-normalize",
			Transform:   func(s string) string { return norm.NFC.String(s) },
			Description: "normalizes text to NFC so lookalike sequences compare equal; never a violation",
		},
	}
}
