package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var showKinds = []string{"planet", "person", "droid", "member", "starship"}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <planet|person|droid|member> <ref> | show starship",
		Short: "Print one enriched entity as JSON",
		Long: `Fetch a SWAPI resource, merge its Wookieepedia supplement and print the
result. ref is a SWAPI URL or a path relative to the base URL, e.g. people/3/.
"member" decides between person and droid. "starship" prints the configured
starship with its crew and passengers.`,
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: showKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind == "starship" {
				ship, err := appCtx.Pipeline.Starship(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd, ship)
			}
			if len(args) != 2 {
				return fmt.Errorf("show %s needs a SWAPI reference", kind)
			}
			lk, err := appCtx.Pipeline.Lookup()
			if err != nil {
				return err
			}

			ctx, ref := cmd.Context(), args[1]
			var v any
			switch kind {
			case "planet":
				v, err = lk.Planet(ctx, ref)
			case "person":
				v, err = lk.Person(ctx, ref)
			case "droid":
				v, err = lk.Droid(ctx, ref)
			case "member":
				v, err = lk.Member(ctx, ref)
			default:
				return fmt.Errorf("unknown kind %q (want one of %v)", kind, showKinds)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd, v)
		},
	}
	return cmd
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
