package cmd

import (
	"strings"

	"toolbox/feature/calculator"

	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "eval [expression]",
		Short:   "Evaluate an arithmetic expression",
		Example: `  toolbox eval "1+2*3"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expression := strings.Join(args, " ")
			result, err := calculator.Evaluate(expression)
			if err != nil {
				return err
			}

			ev := calculator.Evaluation{Expression: expression, Result: result}
			return render(cmd.OutOrStdout(), asJSON, ev, "Calculator",
				field{"Input", ev.Expression},
				field{"Result", ev.Result},
			)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
