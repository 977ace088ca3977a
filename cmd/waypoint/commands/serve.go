package commands

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
	"github.com/xy-planning-network/waypoint/ranger"
)

func newServeCmd(manifestPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the manifest with stub controllers",
		Long: `serve runs a web server dispatching requests through the manifest's routes.
Every action answers with its name and the params it captured.
The server is configured through the environment variables ranger reads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := newServer(*manifestPath)
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}
}

// newServer constructs a *ranger.Ranger serving the manifest at path.
func newServer(path string, opts ...ranger.RangerOption) (*ranger.Ranger, error) {
	a, err := load(path, logger.New(logger.WithLevel(logger.LogLevelWarn)))
	if err != nil {
		return nil, err
	}

	setup := func(rt *router.Router) {
		// load already registered these once, so this cannot fail.
		_ = a.m.Register(rt, a.mws)
	}

	return ranger.New(setup, append([]ranger.RangerOption{ranger.WithRegistry(a.reg)}, opts...)...)
}
