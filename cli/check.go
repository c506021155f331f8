package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vatsimnerd/rwyselect/catalog"
	"github.com/vatsimnerd/rwyselect/metar"
	"github.com/vatsimnerd/rwyselect/policy"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <icao>",
		Short: "Print the runway selection for one airport without writing anything",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			icao := strings.ToUpper(args[0])

			cat, err := catalog.Load(cfg.Catalog)
			if err != nil {
				return err
			}
			runways := cat.Runways(icao)
			if len(runways) == 0 {
				return fmt.Errorf("no runways for %s in catalog", icao)
			}

			fmt.Printf("%s runways:\n", icao)
			for _, rwy := range runways {
				fmt.Printf("  %s/%s  %03d/%03d  %.4f,%.4f\n",
					rwy.Ident1, rwy.Ident2, rwy.Hdg1, rwy.Hdg2,
					rwy.Pos1.Lat(), rwy.Pos1.Lon())
			}

			winds := metar.NewFeed(&cfg.Metar).FetchAll()
			w := winds[icao]
			if w == nil {
				fmt.Println("no usable wind observation")
			} else {
				fmt.Printf("metar: %s\n", w.Raw)
			}

			pol := policy.New(&cfg.Airports, policy.NewConsoleSelector(os.Stdin, os.Stdout))
			sel, err := pol.Select(icao, runways, w)
			if err != nil {
				return err
			}

			if sel.Mode != "" {
				fmt.Printf("selection: %s (%s)\n", strings.Join(sel.Runways, ", "), sel.Mode)
			} else {
				fmt.Printf("selection: %s\n", sel.Single())
			}
			fmt.Printf("rationale: %s\n", sel.Rationale)
			return nil
		},
	}
	return cmd
}
