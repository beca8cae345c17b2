package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"holocron/internal/digest"
	"holocron/internal/services/pipeline"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "run [step...]",
		Short:     "Run pipeline steps and write the manifest",
		Long:      "Run the named steps in order, or every step (" + strings.Join(pipeline.Steps, ", ") + ") when none are given.",
		ValidArgs: pipeline.Steps,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := appCtx.Pipeline.Run(cmd.Context(), args...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range m.Entries {
				fmt.Fprintf(out, "%-45s %8d  %s\n", e.File, e.Bytes, digest.ShortOf(e.Digest))
			}
			fmt.Fprintf(out, "run %s: %d artifacts in %s\n", m.RunID, len(m.Entries), appCtx.Artifacts.Dir())
			return nil
		},
	}
	return cmd
}
