package normalizer

// Format selects how much of the success envelope is populated.
type Format string

const (
	// FormatMinimal strips the envelope down to {success, data}.
	FormatMinimal Format = "minimal"
	// FormatStandard is the full envelope without deployment details.
	FormatStandard Format = "standard"
	// FormatDetailed adds the server label and runtime version to metadata.
	FormatDetailed Format = "detailed"
)

// ErrorFormat selects how much of the error envelope is populated.
type ErrorFormat string

const (
	// ErrorFormatSimple reduces the error object to code, message,
	// timestamp and request ID.
	ErrorFormatSimple ErrorFormat = "simple"
	// ErrorFormatStandard is the full error object without help content.
	ErrorFormatStandard ErrorFormat = "standard"
	// ErrorFormatDetailed adds a help link, possible causes and detailed
	// metadata.
	ErrorFormatDetailed ErrorFormat = "detailed"
)

// Config controls the normalization engine.
type Config struct {
	Enabled          bool        `env:"NORMALIZER_ENABLED" envDefault:"true"`
	Format           Format      `env:"NORMALIZER_FORMAT" envDefault:"standard"`
	IncludeMetadata  bool        `env:"NORMALIZER_INCLUDE_METADATA" envDefault:"true"`
	ErrorFormat      ErrorFormat `env:"NORMALIZER_ERROR_FORMAT" envDefault:"standard"`
	IncludeDebugInfo bool        `env:"NORMALIZER_INCLUDE_DEBUG_INFO" envDefault:"false"`
	IncludeLinks     bool        `env:"NORMALIZER_INCLUDE_LINKS" envDefault:"false"`

	// CompressResponses is accepted for config compatibility but has no
	// effect; compression belongs to the transport layer.
	CompressResponses bool `env:"NORMALIZER_COMPRESS_RESPONSES" envDefault:"false"`
}

// ConfigOption mutates a single config field; used by Engine.UpdateConfig to
// merge partial updates into the live configuration.
type ConfigOption func(*Config)

func WithFormat(f Format) ConfigOption {
	return func(c *Config) { c.Format = f }
}

func WithErrorFormat(f ErrorFormat) ConfigOption {
	return func(c *Config) { c.ErrorFormat = f }
}

func WithMetadata(include bool) ConfigOption {
	return func(c *Config) { c.IncludeMetadata = include }
}

func WithDebugInfo(include bool) ConfigOption {
	return func(c *Config) { c.IncludeDebugInfo = include }
}

func WithLinks(include bool) ConfigOption {
	return func(c *Config) { c.IncludeLinks = include }
}

func WithEnabled(enabled bool) ConfigOption {
	return func(c *Config) { c.Enabled = enabled }
}
