package sanitizer

// ViolationType classifies what kind of injection a rule detected.
type ViolationType string

const (
	ViolationXSS              ViolationType = "XSS"
	ViolationSQLInjection     ViolationType = "SQL_INJECTION"
	ViolationHTMLInjection    ViolationType = "HTML_INJECTION"
	ViolationScriptInjection  ViolationType = "SCRIPT_INJECTION"
	ViolationPathTraversal    ViolationType = "PATH_TRAVERSAL"
	ViolationCommandInjection ViolationType = "COMMAND_INJECTION"
)

// Severity ranks how dangerous a violation is for alerting and triage.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Violation captures a single failed rule check against a string leaf.
type Violation struct {
	Type           ViolationType
	Field          string
	OriginalValue  string
	SanitizedValue string
	Rule           string
	Severity       Severity
}

// String renders the violation in the "<field>: <type>" form used in results.
func (v Violation) String() string {
	if v.Field == "" {
		return string(v.Type)
	}
	return v.Field + ": " + string(v.Type)
}

// ruleViolationTypes maps built-in rule names to violation types. Rules not
// listed here (custom rules included) default to XSS.
var ruleViolationTypes = map[string]ViolationType{
	"html":              ViolationHTMLInjection,
	"script":            ViolationScriptInjection,
	"sql":               ViolationSQLInjection,
	"xss":               ViolationXSS,
	"path-traversal":    ViolationPathTraversal,
	"command-injection": ViolationCommandInjection,
}

// typeSeverities assigns a fixed severity per violation type. Types not
// listed default to medium.
var typeSeverities = map[ViolationType]Severity{
	ViolationHTMLInjection:    SeverityMedium,
	ViolationScriptInjection:  SeverityCritical,
	ViolationSQLInjection:     SeverityCritical,
	ViolationXSS:              SeverityHigh,
	ViolationPathTraversal:    SeverityHigh,
	ViolationCommandInjection: SeverityCritical,
}

// classifyRule derives the violation type and severity for a rule name.
func classifyRule(name string) (ViolationType, Severity) {
	vt, ok := ruleViolationTypes[name]
	if !ok {
		return ViolationXSS, SeverityMedium
	}
	sev, ok := typeSeverities[vt]
	if !ok {
		sev = SeverityMedium
	}
	return vt, sev
}
