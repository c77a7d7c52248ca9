package util

import (
	"strings"

	"github.com/SofiaIPalladino/2024-grupo-7/lib/common"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupStorageFlags adds the flags that locate the data files to a command
func SetupStorageFlags(cmd *cobra.Command) {
	defaults := common.DefaultConfig()

	key := "data-dir"
	cmd.PersistentFlags().String(key, defaults.DataDir, WrapString("Directory the file names are resolved against"))

	key = "file"
	cmd.PersistentFlags().String(key, defaults.CompanyFile, WrapString("File holding the company record"))

	key = "trip-file"
	cmd.PersistentFlags().String(key, defaults.TripFile, WrapString("File holding standalone trip and order records"))

	key = "log-level"
	cmd.PersistentFlags().String(key, defaults.LogLevel, WrapString("The level at which logs will be written to stderr (debug, info, notice, warn, error). Single packages can be overridden, e.g. \"warn,persist=debug\""))

	key = "metrics"
	cmd.PersistentFlags().Bool(key, false, WrapString("Print the persistence metrics in Prometheus format after the command"))

	key = "verbose"
	cmd.PersistentFlags().Bool(key, false, WrapString("Print the effective configuration before running the command"))
}

// InitConfig initializes configuration from environment variables
func InitConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// keys without a flag on the running command
	viper.SetDefault("format", common.DefaultFormat)

	// initialize viper
	viper.SetEnvPrefix("ridesnap")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetConfig reads the configuration from viper and validates it
func GetConfig() (*common.Config, error) {
	conf := &common.Config{
		DataDir:     viper.GetString("data-dir"),
		CompanyFile: viper.GetString("file"),
		TripFile:    viper.GetString("trip-file"),
		Format:      viper.GetString("format"),
		LogLevel:    viper.GetString("log-level"),
		Metrics:     viper.GetBool("metrics"),
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
