package cmd

import (
	"fmt"

	"toolbox/feature/chmod"

	"github.com/spf13/cobra"
)

func newChmodCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "chmod [octal|symbolic]",
		Short: "Translate file permissions between octal and rwx notation",
		Example: `  toolbox chmod 755
  toolbox chmod rw-r--r--`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				state chmod.State
				ok    bool
			)
			if chmod.IsValidText(args[0]) {
				state, ok = chmod.SetText(chmod.NewState(), args[0])
			} else {
				state, ok = chmod.SetOctal(chmod.NewState(), args[0])
			}
			if !ok {
				return fmt.Errorf("%q is neither three octal digits nor a nine-character rwx string", args[0])
			}

			return render(cmd.OutOrStdout(), asJSON, state, "Permissions",
				field{"Octal", state.Octal},
				field{"Symbolic", state.Text},
				field{"Command", state.Command},
			)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
