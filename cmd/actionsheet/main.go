// Command actionsheet shows an action sheet and prints the title of the action
// the user picked. It exits with status 1 when the sheet is cancelled, which
// makes it usable from shell scripts.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// errCancelled exits with status 1 without printing anything.
var errCancelled = errors.New("cancelled")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errCancelled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "actionsheet",
		Short: "Show an action sheet and print the picked action",
		Long: `Show an action sheet and print the title of the picked action.

Actions come from a sheet file (--sheet) or from repeated --action flags.
Navigate with the d-pad or arrow keys, pick with A or Enter and back out with
B or Escape. Backing out prints nothing and exits with status 1.`,
		Example: `  actionsheet --title "Which Mac Pro?" --action "Buy Gen 1" --action "Buy Gen 2" --cancel "Not now"
  actionsheet --sheet store.toml --config sheet.yaml --locale de`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			picked, err := run(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), picked)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.sheetPath, "sheet", "s", "", "sheet file describing the title, message and actions (.toml, .yaml or .yml)")
	flags.StringVarP(&opts.title, "title", "t", "", "sheet title, overrides the sheet file")
	flags.StringVarP(&opts.message, "message", "m", "", "sheet message, overrides the sheet file")
	flags.StringArrayVarP(&opts.actions, "action", "a", nil, "add an action (repeatable)")
	flags.StringVar(&opts.cancel, "cancel", "", "title of the cancel action, defaults to a localized \"Cancel\"")
	flags.StringVarP(&opts.configPath, "config", "c", "", "appearance configuration file (.toml, .yaml or .yml)")
	flags.StringVar(&opts.locale, "locale", "", "language for built-in titles, overrides the configuration")
	flags.StringVar(&opts.devicePath, "evdev", "", "also read buttons from this input device (linux only)")
	flags.StringVar(&opts.fontPath, "font", "", "TTF font used for all text")
	flags.StringVar(&opts.logLevel, "log-level", "error", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logPath, "log-file", "", "log file path")

	return cmd
}
