package commands

import (
	"github.com/spf13/cobra"
)

const defaultManifest = "routes.yaml"

// Execute runs the waypoint CLI with os.Args.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// NewRootCmd constructs the waypoint command and its subcommands.
func NewRootCmd(version string) *cobra.Command {
	var manifestPath string

	root := &cobra.Command{
		Use:   "waypoint",
		Short: "Inspect and serve a waypoint route manifest",
		Long: `waypoint reads a YAML route manifest and lists its routes,
reports which route a request would be dispatched to,
or serves it with stub controllers echoing the action each request reaches.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", defaultManifest, "path to the route manifest")

	root.AddCommand(newRoutesCmd(&manifestPath))
	root.AddCommand(newMatchCmd(&manifestPath))
	root.AddCommand(newServeCmd(&manifestPath))

	return root
}
