package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <resource> <term>",
		Short: "Search a SWAPI resource by name (e.g. search people sky)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := appCtx.SWAPI.Search(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd, recs)
			}
			out := cmd.OutOrStdout()
			for _, rec := range recs {
				name, _ := rec.Text("name")
				url, _ := rec.Text("url")
				fmt.Fprintf(out, "%-30s %s\n", name, url)
			}
			if len(recs) == 0 {
				fmt.Fprintln(out, "no matches")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the raw result records")
	return cmd
}
