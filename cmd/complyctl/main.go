// Command complyctl is the operator CLI: schema migrations, CSV export of a
// site's evaluations and article version restores.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/compliance-backend/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "complyctl",
		Short:         "Operate the compliance evaluation backend",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newExportCmd(), newRestoreCmd())
	return root
}
