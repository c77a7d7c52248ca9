package cmd

import (
	"fmt"
	"os"

	"github.com/SofiaIPalladino/2024-grupo-7/cmd/demo"
	"github.com/SofiaIPalladino/2024-grupo-7/cmd/inspect"
	"github.com/SofiaIPalladino/2024-grupo-7/cmd/util"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/common"
	"github.com/VictoriaMetrics/metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "ridesnap",
		Short: "save and restore ride-dispatch company state",
		Long: fmt.Sprintf(`ridesnap (v%s)

Saves the state of a ride-dispatch company (customers, drivers, vehicles,
orders and trips) to binary files and restores it with shared entities and
driver and vehicle variants intact.

Flags can also be set via environment variables of the form RIDESNAP_<flag>
(e.g. RIDESNAP_DATA_DIR=/var/lib/ridesnap) or in a .env file.`, Version),
		PersistentPreRunE:  setup,
		PersistentPostRunE: report,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ridesnap",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ridesnap v%s\n", Version)
		},
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(demo.DemoCmd)
	RootCmd.AddCommand(inspect.InspectCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	util.SetupStorageFlags(RootCmd)
}

// setup binds the flags of the running command and configures logging
func setup(cmd *cobra.Command, _ []string) error {
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	conf, err := util.GetConfig()
	if err != nil {
		return err
	}
	if err := common.InitLoggers(conf); err != nil {
		return err
	}

	if viper.GetBool("verbose") {
		fmt.Fprint(cmd.ErrOrStderr(), conf.String())
	}
	return nil
}

// report prints the metrics if requested
func report(cmd *cobra.Command, _ []string) error {
	if viper.GetBool("metrics") {
		metrics.WritePrometheus(cmd.OutOrStdout(), false)
	}
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
