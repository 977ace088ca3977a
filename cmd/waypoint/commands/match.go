package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
)

func newMatchCmd(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "match METHOD PATH",
		Short: "Report the route a request would be dispatched to",
		Example: `  waypoint match GET /admin/users/7
  waypoint -m api.yaml match post /api/orders`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(*manifestPath, logger.Noop{})
			if err != nil {
				return err
			}

			rt, err := a.router(router.WithLogger(logger.Noop{}))
			if err != nil {
				return err
			}

			ri, params, ok := rt.Match(args[0], args[1])
			if !ok {
				return fmt.Errorf("%w: no route for %s %s", waypoint.ErrNotExist, strings.ToUpper(args[0]), args[1])
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", ri.Method, ri.Path)
			fmt.Fprintf(out, "action: %s\n", ri.Action)
			if ri.Namespace != "" {
				fmt.Fprintf(out, "namespace: %s\n", ri.Namespace)
			}
			fmt.Fprintf(out, "middleware: %d\n", ri.Middlewares)
			for i, p := range params {
				fmt.Fprintf(out, "param %d: %s\n", i, p)
			}

			return nil
		},
	}
}
