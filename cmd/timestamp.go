package cmd

import (
	"fmt"
	"strings"

	"toolbox/core/hostenv"
	"toolbox/feature/timestamp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// formatNames are the short names accepted by --format.
var formatNames = map[string]timestamp.Format{
	"iso8601": timestamp.FormatISO8601,
	"sql":     timestamp.FormatSQL,
	"rfc2822": timestamp.FormatRFC2822,
}

func lookupFormat(name string) (timestamp.Format, error) {
	if f, ok := formatNames[strings.ToLower(name)]; ok {
		return f, nil
	}
	return timestamp.ParseFormat(name)
}

func newTimestampCmd() *cobra.Command {
	var (
		format string
		human  bool
		now    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "timestamp [value]",
		Short: "Convert between UNIX epoch seconds and a human readable UTC time",
		Example: `  toolbox timestamp 0
  toolbox timestamp --format sql --human "2001-09-09 01:46:40"
  toolbox timestamp --now --format rfc2822`,
		Args: func(cmd *cobra.Command, args []string) error {
			if now {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lookupFormat(format)
			if err != nil {
				return err
			}

			svc := timestamp.NewService(hostenv.SystemClock{}, zap.NewNop(), nil)
			state := timestamp.State{Format: f}

			switch {
			case now:
				state = svc.Now(state)
			case human:
				if state, err = svc.Convert(state, timestamp.FieldHuman, args[0]); err != nil {
					return err
				}
				if state.Epoch == "" {
					return fmt.Errorf("%q does not match %s", args[0], f)
				}
			default:
				if state, err = svc.Convert(state, timestamp.FieldEpoch, args[0]); err != nil {
					return err
				}
				if state.Human == "" {
					return fmt.Errorf("%q is not a valid epoch", args[0])
				}
			}

			return render(cmd.OutOrStdout(), asJSON, state, "Timestamp",
				field{"Epoch", state.Epoch},
				field{"Human", state.Human},
				field{"Format", string(state.Format)},
			)
		},
	}

	cmd.Flags().StringVar(&format, "format", "iso8601", "iso8601, sql, rfc2822 or a supported strftime pattern")
	cmd.Flags().BoolVar(&human, "human", false, "the value is a human readable time")
	cmd.Flags().BoolVar(&now, "now", false, "use the current time")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
