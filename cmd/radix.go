package cmd

import (
	"fmt"

	"toolbox/feature/radix"

	"github.com/spf13/cobra"
)

func newRadixCmd() *cobra.Command {
	var (
		from   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "radix [value]",
		Short: "Convert an integer between hex, decimal, octal and binary",
		Example: `  toolbox radix 255
  toolbox radix --from hex FF`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := radix.ParseBase(from)
			if err != nil {
				return err
			}
			q, ok := radix.ConvertFrom(base, args[0])
			if !ok {
				return fmt.Errorf("%q is not a valid %s number", args[0], base)
			}

			return render(cmd.OutOrStdout(), asJSON, q, "Radix",
				field{"Hex", q.Hex},
				field{"Dec", q.Dec},
				field{"Oct", q.Oct},
				field{"Bin", q.Bin},
			)
		},
	}

	cmd.Flags().StringVar(&from, "from", "dec", "base of the input: hex, dec, oct or bin")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
