package main

import (
	"actionmenu/app"
	cmd2 "actionmenu/cmd"
	"actionmenu/config"
	"actionmenu/inspect"
	"actionmenu/log"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	version = "0.5.0"

	layoutFlag  string
	verboseFlag bool

	// Values of the flags that mirror config keys. They only apply when given, see overrides.
	marginFlag, marginLeftFlag, marginRightFlag int
	marginTopFlag, marginBottomFlag             int
	columnSpacingFlag, rowSpacingFlag           int
	delayFlag                                   int
	cellAspectFlag                              float64
	aspectFlag                                  config.AspectRatio
	buttonsPerRowFlag                           config.ButtonLayout
	protocolFlag                                config.Protocol
	closeOnLostFocusFlag                        bool
	showKeybindsFlag                            bool
	noVersionInfoFlag                           bool
	styleFlag                                   string

	debugSizeFlag     string
	debugSnapshotFlag string

	rootCmd = &cobra.Command{
		Use:           "actionmenu",
		Short:         "actionmenu - A keyboard and mouse driven grid of actions for the terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(verboseFlag)
			defer log.Close()
			log.InitDebug()
			defer log.CloseDebug()

			if inspect.IsEnabled() {
				log.InfoLog.Printf("writing layout snapshots to %s", inspect.GetInspectFile())
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			o := overrides(cmd)
			cfg, theme, err := load(layoutFlag, o)
			if err != nil {
				return err
			}

			opts := app.Options{
				Config:  cfg,
				Theme:   theme,
				Version: version,
				// Keys come from the terminal once the layout has been read from a pipe.
				InputTTY: layoutFlag == config.StdinPath && !term.IsTerminal(int(os.Stdin.Fd())),
			}
			if cfg.NoVersionInfo {
				opts.Version = ""
			}

			if layoutFlag != config.StdinPath {
				path := cfg.Path
				opts.Reload = func() (*config.Config, *config.Theme, error) {
					return load(path, o)
				}
				watcher, err := config.NewWatcher(cfg.Path, theme.Path)
				if err != nil {
					log.WarningLog.Printf("live reload disabled: %v", err)
				} else {
					defer watcher.Close()
					opts.Watcher = watcher
				}
			}

			var store *config.StateStore
			if dir, err := config.DefaultStateDir(); err != nil {
				log.WarningLog.Printf("launch history disabled: %v", err)
			} else {
				store = config.NewStateStore(dir)
				opts.State = store.Load()
			}

			chosen, err := app.Run(ctx, opts)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				return err
			}
			if chosen == nil {
				log.InfoLog.Printf("closed without a choice")
				return nil
			}

			launcher := cmd2.NewLauncher(cmd2.MakeExecutor())
			delay := time.Duration(cfg.DelayCommandMs) * time.Millisecond
			launched, err := launcher.Launch(ctx, chosen.Action, delay)
			if err != nil {
				return err
			}
			if store != nil {
				if err := store.RecordLaunch(config.Launch{
					ID:     launched.ID,
					Label:  chosen.Label,
					Action: chosen.Action,
					At:     time.Now(),
				}); err != nil {
					log.WarningLog.Printf("failed to record launch: %v", err)
				}
			}
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths and the computed layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(verboseFlag)
			defer log.Close()

			width, height, err := parseSize(debugSizeFlag)
			if err != nil {
				return err
			}
			cfg, theme, err := load(layoutFlag, overrides(cmd))
			if err != nil {
				return err
			}

			fmt.Printf("Search path: %s\n", strings.Join(config.SearchDirs(), ", "))
			fmt.Printf("Layout: %s\n", cfg.Path)
			if theme.Path != "" {
				fmt.Printf("Style: %s\n", theme.Path)
			}
			if dir, err := config.DefaultStateDir(); err == nil {
				fmt.Printf("State: %s\n", dir)
			}
			fmt.Printf("Log: %s\n", log.FileName())

			configJson, _ := json.MarshalIndent(cfg, "", "  ")
			fmt.Printf("\n%s\n\n", configJson)

			snapshot, result := app.Layout(cfg, theme, width, height)
			fmt.Println(snapshot.ToText())

			cs := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, SortKeys: true}
			cs.Fdump(os.Stdout, result)

			if debugSnapshotFlag != "" {
				if err := inspect.WriteSnapshotToPath(snapshot, debugSnapshotFlag); err != nil {
					return err
				}
				fmt.Printf("\nSnapshot written to %s\n", debugSnapshotFlag)
			}
			return nil
		},
	}

	execCmd = &cobra.Command{
		Use:   "exec LABEL",
		Short: "Run the action of a button without showing the menu",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			cfg, err := config.LoadConfig(layoutFlag, os.Stdin)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			labels := make([]string, 0, len(cfg.Buttons))
			for _, b := range cfg.Buttons {
				labels = append(labels, b.Label)
			}
			return labels, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(verboseFlag)
			defer log.Close()

			cfg, err := config.LoadConfig(layoutFlag, os.Stdin)
			if err != nil {
				return configError(err)
			}
			for _, b := range cfg.Buttons {
				if b.Label == args[0] {
					return cmd2.RunForeground(cmd2.MakeExecutor(), b.Action, os.Stdout, os.Stderr)
				}
			}
			return fmt.Errorf("no button labelled %q in %s", args[0], cfg.Path)
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of actionmenu",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("actionmenu version %s\n", version)
		},
	}
)

// load reads the layout, applies the command line on top and reads the theme it names.
func load(layout string, o config.Overrides) (*config.Config, *config.Theme, error) {
	cfg, err := config.LoadConfig(layout, os.Stdin)
	if err != nil {
		return nil, nil, configError(err)
	}
	cfg.Merge(o)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	theme, err := config.LoadTheme(cfg.Style)
	if err != nil {
		return nil, nil, configError(err)
	}
	return cfg, theme, nil
}

// configError adds the failing line to parse errors.
func configError(err error) error {
	var perr *config.ParseError
	if errors.As(err, &perr) {
		if snippet := perr.Snippet(); snippet != "" {
			return fmt.Errorf("%w\n%s", err, snippet)
		}
	}
	return err
}

// overrides collects the config flags that were set on the command line.
func overrides(cmd *cobra.Command) config.Overrides {
	flags := cmd.Flags()
	var o config.Overrides
	intFlag := func(name string, v int, dst **int) {
		if flags.Changed(name) {
			*dst = &v
		}
	}
	boolFlag := func(name string, v bool, dst **bool) {
		if flags.Changed(name) {
			*dst = &v
		}
	}

	intFlag("margin", marginFlag, &o.Margin)
	intFlag("margin-left", marginLeftFlag, &o.MarginLeft)
	intFlag("margin-right", marginRightFlag, &o.MarginRight)
	intFlag("margin-top", marginTopFlag, &o.MarginTop)
	intFlag("margin-bottom", marginBottomFlag, &o.MarginBottom)
	intFlag("column-spacing", columnSpacingFlag, &o.ColumnSpacing)
	intFlag("row-spacing", rowSpacingFlag, &o.RowSpacing)
	intFlag("delay-command-ms", delayFlag, &o.DelayCommandMs)
	boolFlag("close-on-lost-focus", closeOnLostFocusFlag, &o.CloseOnLostFocus)
	boolFlag("show-keybinds", showKeybindsFlag, &o.ShowKeybinds)
	boolFlag("no-version-info", noVersionInfoFlag, &o.NoVersionInfo)

	if flags.Changed("cell-aspect") {
		v := cellAspectFlag
		o.CellAspect = &v
	}
	if flags.Changed("button-aspect-ratio") {
		v := aspectFlag
		o.ButtonAspectRatio = &v
	}
	if flags.Changed("buttons-per-row") {
		v := buttonsPerRowFlag
		o.ButtonsPerRow = &v
	}
	if flags.Changed("protocol") {
		v := protocolFlag
		o.Protocol = &v
	}
	if flags.Changed("style") {
		v := styleFlag
		o.Style = &v
	}
	return o
}

// parseSize parses a WIDTHxHEIGHT terminal size.
func parseSize(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (expected WIDTHxHEIGHT)", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return width, height, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&layoutFlag, "layout", "l", "",
		"Specify a layout file, specifying - will read the layout config from stdin")
	flags.StringVarP(&styleFlag, "style", "C", "", "Specify a custom theme file")
	flags.BoolVar(&verboseFlag, "verbose", false, "Write debug messages to the log file")

	flags.VarP(&buttonsPerRowFlag, "buttons-per-row", "b",
		"Set the number of buttons per row, or use a fraction to specify the number of rows to be used "+
			"(e.g. \"1/1\" for all buttons in a single row, \"1/5\" to distribute the buttons over 5 rows)")
	flags.IntVarP(&columnSpacingFlag, "column-spacing", "c", 0, "Set space between buttons columns")
	flags.IntVarP(&rowSpacingFlag, "row-spacing", "r", 0, "Set space between buttons rows")
	flags.IntVarP(&marginFlag, "margin", "m", 0, "Set the margin around buttons")
	flags.IntVarP(&marginLeftFlag, "margin-left", "L", 0, "Set margin for the left of buttons")
	flags.IntVarP(&marginRightFlag, "margin-right", "R", 0, "Set margin for the right of buttons")
	flags.IntVarP(&marginTopFlag, "margin-top", "T", 0, "Set margin for the top of buttons")
	flags.IntVarP(&marginBottomFlag, "margin-bottom", "B", 0, "Set the margin for the bottom of buttons")
	flags.VarP(&aspectFlag, "button-aspect-ratio", "A", "Set the aspect ratio of the buttons (e.g. 1.5 or 3/2)")
	flags.Float64Var(&cellAspectFlag, "cell-aspect", config.DefaultCellAspect,
		"Height of a terminal cell divided by its width")
	flags.IntVarP(&delayFlag, "delay-command-ms", "d", config.DefaultDelayMs,
		"The delay (in milliseconds) between the menu closing and executing the selected option")
	flags.BoolVarP(&closeOnLostFocusFlag, "close-on-lost-focus", "f", false, "Close the menu on lost focus")
	flags.BoolVarP(&showKeybindsFlag, "show-keybinds", "k", false, "Show the associated key binds")
	flags.VarP(&protocolFlag, "protocol", "p",
		"Take over the screen ("+strings.Join(config.Protocols, ", ")+")")
	flags.BoolVarP(&noVersionInfoFlag, "no-version-info", "x", false, "Hide version information")

	err := rootCmd.RegisterFlagCompletionFunc("protocol",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return config.Protocols, cobra.ShellCompDirectiveNoFileComp
		})
	if err != nil {
		panic(err)
	}

	debugCmd.Flags().StringVar(&debugSizeFlag, "size", "80x24", "Terminal size to lay the menu out for")
	debugCmd.Flags().StringVar(&debugSnapshotFlag, "snapshot", "", "Also write the layout snapshot as JSON to this file")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(execCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
