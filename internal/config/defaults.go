package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile or environment.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Search SearchConfig `json:"search" yaml:"search" mapstructure:"search"`
	UI     UIConfig     `json:"ui" yaml:"ui" mapstructure:"ui"`
}

// Binary detection modes accepted by SearchConfig.BinaryDetection.
const (
	BinaryDetectionNone = "none"
	BinaryDetectionQuit = "quit"
)

type SearchConfig struct {
	// Traversal
	HiddenPrefix     string   `json:"hidden_prefix" yaml:"hidden_prefix" mapstructure:"hidden_prefix"`             // Default: "."
	RespectGitignore bool     `json:"respect_gitignore" yaml:"respect_gitignore" mapstructure:"respect_gitignore"` // Default: false
	Include          []string `json:"include" yaml:"include" mapstructure:"include"`                               // Default: none (all files)
	Exclude          []string `json:"exclude" yaml:"exclude" mapstructure:"exclude"`                               // Default: none

	// Matching
	CaseInsensitive bool `json:"case_insensitive" yaml:"case_insensitive" mapstructure:"case_insensitive"` // Default: false
	LineNumbers     bool `json:"line_numbers" yaml:"line_numbers" mapstructure:"line_numbers"`             // Default: true

	// Reading
	BinaryDetection  string `json:"binary_detection" yaml:"binary_detection" mapstructure:"binary_detection"`       // Default: "none"
	BinarySampleSize int    `json:"binary_sample_size" yaml:"binary_sample_size" mapstructure:"binary_sample_size"` // Default: 8000
	ReadBufferSize   int    `json:"read_buffer_size" yaml:"read_buffer_size" mapstructure:"read_buffer_size"`       // Default: 64 * 1024
	MaxLineBytes     int    `json:"max_line_bytes" yaml:"max_line_bytes" mapstructure:"max_line_bytes"`             // Default: 0 (unlimited)
}

type UIConfig struct {
	MaxResults   int    `json:"max_results" yaml:"max_results" mapstructure:"max_results"`       // Default: 10000
	ColorPrimary string `json:"color_primary" yaml:"color_primary" mapstructure:"color_primary"` // Default: "63"
	ColorDim     string `json:"color_dim" yaml:"color_dim" mapstructure:"color_dim"`             // Default: "241"
	ColorError   string `json:"color_error" yaml:"color_error" mapstructure:"color_error"`       // Default: "196"
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			HiddenPrefix:     ".",
			RespectGitignore: false,
			CaseInsensitive:  false,
			LineNumbers:      true,
			BinaryDetection:  BinaryDetectionNone,
			BinarySampleSize: 8000,
			ReadBufferSize:   64 * 1024,
			MaxLineBytes:     0,
		},
		UI: UIConfig{
			MaxResults:   10000,
			ColorPrimary: "63",
			ColorDim:     "241",
			ColorError:   "196",
		},
	}
}
