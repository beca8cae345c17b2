package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"holocron/internal/digest"
	"holocron/internal/store"
)

func verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [dir]",
		Short: "Check artifacts against the manifest (default: the output dir)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := appCtx.Config.Paths.OutDir
			if len(args) == 1 {
				dir = args[0]
			}
			m, err := store.VerifyManifest(dir)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range m.Entries {
				fmt.Fprintf(out, "ok  %-45s %s\n", e.File, digest.ShortOf(e.Digest))
			}
			fmt.Fprintf(out, "run %s: %d artifacts verified\n", m.RunID, len(m.Entries))
			return nil
		},
	}
	return cmd
}
