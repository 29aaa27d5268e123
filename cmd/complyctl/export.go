package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/compliance-backend/internal/service/query"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

func newExportCmd() *cobra.Command {
	var tenant, site, actor, out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a site's evaluations as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := operatorIdentity(tenant, actor)
			if err != nil {
				return err
			}
			siteID, err := uuid.Parse(site)
			if err != nil {
				return fmt.Errorf("--site: %w", err)
			}

			deps, logger, err := openDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			ctx := ctxutil.WithIdentity(cmd.Context(), id)
			result, err := deps.Query.Export(ctx, query.ExportInput{SiteID: siteID}, w)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			logger.InfoContext(ctx, "export written",
				slog.String("site_id", siteID.String()),
				slog.Int("rows", result.Rows),
				slog.Bool("truncated", result.Truncated),
			)
			if result.Truncated {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: export truncated to %d rows\n", result.Rows)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant id")
	cmd.Flags().StringVar(&site, "site", "", "site id")
	cmd.Flags().StringVar(&actor, "actor", "", "acting user id")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	for _, name := range []string{"tenant", "site", "actor"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
