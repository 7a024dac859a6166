// Command focustrack runs an interactive demo of the focus and
// interaction trackers on a terminal screen.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/focustrack/internal/config"
	"github.com/dshills/focustrack/internal/menu"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "focustrack: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		holdWindow time.Duration
		scriptPath string
		dumpMenu   bool
	)

	rootCmd := &cobra.Command{
		Use:   "focustrack",
		Short: "Focus and interaction tracking demo for terminal UIs",
		Long: `Runs a terminal screen with focusable boxes and a menu bar.
Tab and Shift-Tab move focus; mouse motion moves pointer focus.
Keyboard-attributed focus draws a distinct highlight.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dumpMenu {
				fmt.Print(menu.Dump(demoMenu()))
				return nil
			}

			mgr := config.NewManager(configPath)
			if cmd.Flags().Changed("log-level") {
				mgr.Set("logging.level", logLevel)
			}
			if cmd.Flags().Changed("hold-window") {
				mgr.Set("hold_window", holdWindow.String())
			}
			if cmd.Flags().Changed("script") {
				mgr.Set("script", scriptPath)
			}
			if err := mgr.Load(); err != nil {
				return err
			}
			return runDemo(mgr.Config())
		},
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.Flags().DurationVar(&holdWindow, "hold-window", 500*time.Millisecond, "key hold window before a release is synthesized")
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "path to a Lua hook script")
	rootCmd.Flags().BoolVar(&dumpMenu, "dump-menu", false, "print the demo menu tree and exit")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("focustrack %s (%s)\n", version, commit)
		},
	})

	return rootCmd
}

// demoMenu builds the menu bar shown in the demo. The Recent submenu
// stays lazy until opened.
func demoMenu() *menu.Bar {
	return menu.NewBar(
		menu.NewMenu("File",
			menu.NewItem("Open"),
			menu.NewItem("Save"),
			menu.NewLazyMenu("Recent"),
		),
		menu.NewMenu("Edit",
			menu.NewItem("Undo"),
			menu.NewItem("Redo"),
		),
		menu.NewMenu("Help",
			menu.NewItem("About"),
		),
	)
}
