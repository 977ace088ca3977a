package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
)

func newRoutesCmd(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List the routes in the manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := logger.New(logger.WithLevel(logger.LogLevelWarn))
			a, err := load(*manifestPath, l)
			if err != nil {
				return err
			}

			rt, err := a.router(router.WithLogger(logger.Noop{}))
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tPATH\tNAMESPACE\tACTION\tMIDDLEWARE")
			for _, ri := range rt.Routes() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", ri.Method, ri.Path, ri.Namespace, ri.Action, ri.Middlewares)
			}

			return tw.Flush()
		},
	}
}
