package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"holocron/internal/domain"
)

func episodesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "episodes",
		Short: "Convert the episode roster and report viewership",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := appCtx.Pipeline.Episodes(cmd.Context())
			if err != nil {
				return err
			}
			if _, err := appCtx.Artifacts.WriteManifest(); err != nil {
				return fmt.Errorf("write manifest: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "episodes: %d, directors: %d, writers: %d\n", sum.Count, sum.Directors, sum.Writers)
			printViewed(out, "most viewed", sum.MostViewed)
			printViewed(out, "least viewed", sum.LeastViewed)
			return nil
		},
	}
	return cmd
}

func printViewed(w io.Writer, label string, e *domain.Episode) {
	if e == nil {
		fmt.Fprintf(w, "%s: no viewer data\n", label)
		return
	}
	fmt.Fprintf(w, "%s: %s (%.2fM US viewers)\n", label, e.TitleOrEmpty(), *e.USViewersMM)
}
