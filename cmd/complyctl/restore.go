package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/compliance-backend/internal/service/lineage"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

func newRestoreCmd() *cobra.Command {
	var tenant, actor, article, version string

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore an article version as the new in-force text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := operatorIdentity(tenant, actor)
			if err != nil {
				return err
			}
			articleID, err := uuid.Parse(article)
			if err != nil {
				return fmt.Errorf("--article: %w", err)
			}
			versionID, err := uuid.Parse(version)
			if err != nil {
				return fmt.Errorf("--version: %w", err)
			}

			deps, _, err := openDeps(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			ctx := ctxutil.WithIdentity(cmd.Context(), id)
			result, err := deps.Lineage.RestoreVersion(ctx, lineage.RestoreInput{ArticleID: articleID, VersionID: versionID})
			if err != nil {
				return fmt.Errorf("restore: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "restored as version %d (%s), effective %s\n",
				result.Version.Sequence, result.Version.ID, result.Version.EffectiveDate.Format("2006-01-02"))
			if w := result.Warning; w != nil {
				fmt.Fprintf(out, "warning: %d later modification(s) of this article\n", w.LaterModifications)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tenant, "tenant", "", "tenant id")
	cmd.Flags().StringVar(&actor, "actor", "", "acting user id")
	cmd.Flags().StringVar(&article, "article", "", "article id")
	cmd.Flags().StringVar(&version, "version", "", "version id to restore")
	for _, name := range []string{"tenant", "actor", "article", "version"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}
