package cmd

import (
	"crypto/rand"
	"fmt"

	"toolbox/feature/color"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newColorCmd() *cobra.Command {
	var (
		from   string
		action string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "color [value]",
		Short: "Convert a color between hex, RGB and CMYK",
		Example: `  toolbox color FF8000
  toolbox color --from rgb 255,128,0 --action darker
  toolbox color --action random`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := color.NewService(rand.Reader, zap.NewNop(), nil)

			var state color.State
			if len(args) == 1 {
				var err error
				state, err = svc.Convert(state, from, args[0])
				if err != nil {
					return err
				}
				c, perr := color.ParseHex(state.Hex)
				if perr != nil {
					return fmt.Errorf("%q is not a valid %s color", args[0], from)
				}
				state = color.Of(c)
			} else if action != color.ActionRandom {
				return fmt.Errorf("a color value is required unless --action is %s", color.ActionRandom)
			}

			if action != "" {
				var err error
				if state, err = svc.Apply(state, action); err != nil {
					return err
				}
			}

			return render(cmd.OutOrStdout(), asJSON, state, "Color",
				field{"Hex", state.Hex},
				field{"RGB", state.RGB},
				field{"CMYK", state.CMYK},
			)
		},
	}

	cmd.Flags().StringVar(&from, "from", color.FieldHex, "form of the input: hex, rgb or cmyk")
	cmd.Flags().StringVar(&action, "action", "", "apply darker, lighter, complement or random")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
