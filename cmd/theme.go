package cmd

import (
	"toolbox/feature/theme"

	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	var (
		key    string
		reset  bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "theme [mode]",
		Short: "Show or change a stored theme preference",
		Long: `Reads or writes a theme preference in the configured backend (THEME_BACKEND).
Modes are Automatic, DarkMode and LightMode. The memory backend does not outlive the command.`,
		Example: `  toolbox theme --key alice
  toolbox theme --key alice DarkMode
  toolbox theme --key alice --reset`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logg, err := loadRuntime()
			if err != nil {
				return err
			}

			store, err := theme.NewStore(cmd.Context(), cfg.Theme, cfg.Database, cfg.Storage)
			if err != nil {
				return err
			}
			svc := theme.NewService(store, logg, nil)

			var s theme.Setting
			switch {
			case reset:
				s, err = svc.Reset(cmd.Context(), key)
			case len(args) == 1:
				s, err = svc.Set(cmd.Context(), key, args[0])
			default:
				s, err = svc.Get(cmd.Context(), key)
			}
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), asJSON, s, "Theme",
				field{"Key", s.Key},
				field{"Mode", string(s.Mode)},
				field{"Backend", cfg.Theme.Backend},
			)
		},
	}

	cmd.Flags().StringVar(&key, "key", theme.DefaultKey, "preference key")
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the stored mode")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
