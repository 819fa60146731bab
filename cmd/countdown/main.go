package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/headless"
	"github.com/ensigniasec/countdown/internal/notify"
	"github.com/ensigniasec/countdown/internal/storage"
	"github.com/ensigniasec/countdown/internal/ticker"
	"github.com/ensigniasec/countdown/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile   string
	stateFile    string
	durationFlag time.Duration
	headlessMode bool
	verbose      bool
	noBell       bool

	rootCmd = &cobra.Command{
		Use:   "countdown",
		Short: "A terminal countdown timer with pause, resume and cancel.",
		Long: `Pick an hh:mm:ss duration and count it down one second at a time. ` +
			`The countdown can be paused, resumed or cancelled; a sound plays when it reaches zero. ` +
			`Without a terminal on stdout it runs headless and reads commands from stdin.`,
		Args: cobra.NoArgs,
		Run:  runCountdown,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr so stdout stays free for the TUI and `config show`.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&stateFile, "state-file", storage.DefaultPath, "Path to the JSON file holding the last duration and run history")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.Flags().DurationVarP(&durationFlag, "duration", "d", 0, "Countdown duration, e.g. 90s or 1h30m (overrides config)")
	rootCmd.Flags().BoolVar(&headlessMode, "headless", false, "Run without the TUI, reading toggle/cancel commands from stdin")
	rootCmd.Flags().BoolVar(&noBell, "no-bell", false, "Do not ring the terminal bell on completion")

	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg, err := config.Load(configFile)
	if err != nil {
		logrus.Fatal(err)
	}
	if cmd.Flags().Changed("duration") {
		cfg.Duration = durationFlag
	}
	if noBell {
		cfg.Sound.Bell = false
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid settings: %v", err)
	}

	level, err := cfg.Level()
	if err != nil {
		logrus.Fatal(err)
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	return cfg
}

// openStorage returns the run history store, or nil when it cannot be opened.
func openStorage() *storage.Storage {
	st, err := storage.NewStorage(stateFile)
	if err != nil {
		logrus.Warnf("Run history unavailable: %v", err)
		return nil
	}
	return st
}

func runCountdown(cmd *cobra.Command, _ []string) {
	cfg := loadConfig(cmd)
	ctx := cmd.Context()
	notifier := notify.FromConfig(cfg.Sound, os.Stderr)

	var rec headless.Recorder
	if st := openStorage(); st != nil {
		rec = st
		// The last duration used seeds the picker unless --duration is given.
		if last := st.LastDuration(); last > 0 && !cmd.Flags().Changed("duration") {
			cfg.Duration = last
		}
	}

	if headlessMode || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.Debug("running headless")
		err := headless.Run(ctx, cfg, cfg.Seconds(), os.Stdin, notifier, ticker.SystemClock, rec)
		switch {
		case err == nil:
		case errors.Is(err, headless.ErrCancelled):
			logrus.Info("countdown cancelled")
		case errors.Is(err, context.Canceled):
			logrus.Debug("interrupted")
		default:
			logrus.Fatal(err)
		}
		return
	}

	if err := tui.Run(ctx, cfg, notifier, rec); err != nil {
		logrus.Fatalf("TUI failed: %v", err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect countdown configuration",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cfg := loadConfig(cmd)
		out, err := cfg.Marshal()
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprint(os.Stdout, string(out))
	},
}

func main() {
	Execute()
}
