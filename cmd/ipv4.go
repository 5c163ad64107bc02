package cmd

import (
	"fmt"

	"toolbox/core/hostenv"
	"toolbox/feature/ipv4"

	"github.com/spf13/cobra"
)

func newIPv4Cmd() *cobra.Command {
	var (
		from   string
		mine   bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ipv4 [address]",
		Short: "Convert an IPv4 address between dotted, integer and binary forms",
		Example: `  toolbox ipv4 192.168.0.1
  toolbox ipv4 --from integer 3232235521
  toolbox ipv4 --mine`,
		Args: func(cmd *cobra.Command, args []string) error {
			if mine {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				state ipv4.State
				ok    bool
			)

			if mine {
				cfg, logg, err := loadRuntime()
				if err != nil {
					return err
				}
				addr, err := hostenv.New(cfg.HostEnv).IP.MyIP(cmd.Context())
				if err != nil {
					return fmt.Errorf("ip lookup failed: %w", err)
				}
				logg.Debug("IP lookup succeeded")
				state, ok = ipv4.FromLookup(addr)
				if !ok {
					return fmt.Errorf("lookup returned %q, which is not an IPv4 address", addr)
				}
			} else {
				switch from {
				case ipv4.FieldDotted:
					state, ok = ipv4.FromDotted(ipv4.State{}, args[0])
				case ipv4.FieldInteger:
					state, ok = ipv4.FromInteger(ipv4.State{}, args[0])
				case ipv4.FieldBinary:
					state, ok = ipv4.FromBinary(ipv4.State{}, args[0])
				default:
					return fmt.Errorf("%w: %q", ipv4.ErrUnknownField, from)
				}
				if !ok {
					return fmt.Errorf("%q is not a valid %s address", args[0], from)
				}
			}

			return render(cmd.OutOrStdout(), asJSON, state, "IPv4",
				field{"Dotted", state.Dotted},
				field{"Integer", state.Integer},
				field{"Binary", state.Binary},
			)
		},
	}

	cmd.Flags().StringVar(&from, "from", ipv4.FieldDotted, "form of the input: dotted, integer or binary")
	cmd.Flags().BoolVar(&mine, "mine", false, "look up this host's public address")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
