package inspect

import (
	"errors"
	"fmt"
	"io"

	"github.com/SofiaIPalladino/2024-grupo-7/cmd/util"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/view"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	log = logger.GetLogger("cmd")

	// InspectCmd prints the records of a saved file
	InspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Print the records of a saved file",
		Long: util.WrapString(`Read records from the company file (or the trip file with --trips) and print them as JSON or YAML.
Reading stops after --records records or at the end of the file. A missing file is reported as "no saved state".`),
		Args: cobra.NoArgs,
		RunE: run,
	}
)

func init() {
	key := "records"
	InspectCmd.Flags().Int(key, 1, util.WrapString("Maximum number of records to read (0 reads all)"))

	key = "format"
	InspectCmd.Flags().String(key, "json", util.WrapString("Output format (json, yaml)"))

	key = "trips"
	InspectCmd.Flags().Bool(key, false, util.WrapString("Read the trip file instead of the company file"))
}

func run(cmd *cobra.Command, _ []string) error {
	conf, err := util.GetConfig()
	if err != nil {
		return err
	}

	name := conf.Path(conf.CompanyFile)
	if viper.GetBool("trips") {
		name = conf.Path(conf.TripFile)
	}
	limit := viper.GetInt("records")
	out := cmd.OutOrStdout()

	p := persist.NewBinaryPersistence()
	if err := p.OpenInput(name); err != nil {
		if errors.Is(err, persist.ErrNotFound) {
			fmt.Fprintf(out, "no saved state in %s\n", name)
			return nil
		}
		return err
	}
	defer func() {
		if err := p.CloseInput(); err != nil {
			log.Warningf("%v", err)
		}
	}()

	for i := 0; limit <= 0 || i < limit; i++ {
		obj, err := p.Read()
		if errors.Is(err, io.EOF) {
			log.Debugf("end of %s after %d record(s)", name, i)
			break
		}
		if err != nil {
			return err
		}

		rec, err := view.Of(obj)
		if err != nil {
			return err
		}
		if err := view.Encode(out, conf.Format, rec); err != nil {
			return err
		}
	}
	return nil
}
