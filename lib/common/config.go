package common

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Default values of the configuration
const (
	DefaultCompanyFile = "empresa.bin"
	DefaultTripFile    = "pedidos.bin"
	DefaultFormat      = "json"
	DefaultLogLevel    = "warn"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "loglevels" accepts the level specs understood by ParseLogLevels
	_ = v.RegisterValidation("loglevels", func(fl validator.FieldLevel) bool {
		_, err := ParseLogLevels(fl.Field().String())
		return err == nil
	})
	return v
}

// Config holds the settings of a ridesnap invocation
type Config struct {
	// directory the file names are resolved against
	DataDir string `validate:"required"`
	// file holding the company record
	CompanyFile string `validate:"required"`
	// file holding standalone trip and order records
	TripFile string `validate:"required"`

	// output format of the inspect command
	Format string `validate:"oneof=json yaml"`

	// level spec, e.g. "warn" or "info,persist=debug"
	LogLevel string `validate:"loglevels"`

	// print the metrics after the command
	Metrics bool
}

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() *Config {
	return &Config{
		DataDir:     ".",
		CompanyFile: DefaultCompanyFile,
		TripFile:    DefaultTripFile,
		Format:      DefaultFormat,
		LogLevel:    DefaultLogLevel,
	}
}

// Validate checks that all fields hold usable values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Path resolves a file name against the data directory.
// Absolute names are returned unchanged.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

// String returns a formatted string representation of the configuration
func (c *Config) String() string {
	var sb strings.Builder

	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Storage")
	addField("Data Directory", c.DataDir)
	addField("Company File", c.Path(c.CompanyFile))
	addField("Trip File", c.Path(c.TripFile))

	addSection("Output")
	addField("Format", c.Format)
	addField("Metrics", fmt.Sprintf("%t", c.Metrics))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
