package demo

import (
	"fmt"

	"github.com/SofiaIPalladino/2024-grupo-7/cmd/util"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/company"
	"github.com/SofiaIPalladino/2024-grupo-7/lib/persist"
	"github.com/google/uuid"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
)

var (
	log = logger.GetLogger("cmd")

	// DemoCmd writes the sample company and its trip
	DemoCmd = &cobra.Command{
		Use:   "demo",
		Short: "Write the sample company and its trip",
		Long: util.WrapString(`Write the sample company (one customer, one temporary driver, one car, an open order and its trip) to the company file.
The file is replaced atomically. The trip and its order are written as standalone records to the trip file.`),
		Args: cobra.NoArgs,
		RunE: run,
	}
)

func run(cmd *cobra.Command, _ []string) error {
	conf, err := util.GetConfig()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	companyFile := conf.Path(conf.CompanyFile)
	tripFile := conf.Path(conf.TripFile)
	log.Infof("demo %s: writing %s and %s", runID, companyFile, tripFile)

	c, trip := company.NewSample()
	p := persist.NewBinaryPersistence()

	if err := persist.SaveAtomic(p, companyFile, c); err != nil {
		return fmt.Errorf("save company: %w", err)
	}
	if err := persist.SaveAtomic(p, tripFile, trip, trip.Order); err != nil {
		return fmt.Errorf("save trip: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "company written to %s\n", companyFile)
	fmt.Fprintf(out, "trip and order written to %s\n", tripFile)
	log.Infof("demo %s: done", runID)
	return nil
}
