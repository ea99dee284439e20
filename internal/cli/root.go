package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/airis-labs/airis-extract/internal/branding"
	"github.com/airis-labs/airis-extract/internal/config"
	"github.com/airis-labs/airis-extract/internal/extractor"
	"github.com/airis-labs/airis-extract/internal/messages"
	"github.com/airis-labs/airis-extract/internal/nextsteps"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logger = slog.Default()
)

// errUsage is returned after the usage text has been printed.
var errUsage = errors.New("expected exactly one export file argument")

// reportedError marks an error whose message the extractor already printed.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <export.json>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads a JSON project export (project metadata plus a list of
file records) and writes every file into the output directory, creating
parent directories as needed. Existing files are overwritten.`,
	Args:          exportArg,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		l, err := config.NewLogger(cmd.ErrOrStderr(), config.Get(config.KeyLogLevel), config.Get(config.KeyLogFormat))
		if err != nil {
			// config must keep working so a bad setting can be repaired.
			if !underConfig(cmd) {
				return err
			}
			l, _ = config.NewLogger(cmd.ErrOrStderr(), "", "")
			l.Warn("ignoring invalid logging settings", slog.Any("error", err))
		}
		logger = l
		return nil
	},
	RunE: runExtract,
}

func init() {
	rootCmd.Flags().StringP("output", "o", branding.OutputDir(), "Directory to extract into")
	rootCmd.PersistentFlags().String("lang", "en", "Console language ("+messages.Supported()+")")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().String("log-level", "warn", "Diagnostic log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Diagnostic log format (text, json)")
	bindFlags()
}

// bindFlags connects command-line flags to their config keys so a flag set
// on the command line wins over the environment and the config file.
func bindFlags() {
	_ = viper.BindPFlag(config.KeyOutputDir, rootCmd.Flags().Lookup("output"))
	_ = viper.BindPFlag(config.KeyLanguage, rootCmd.PersistentFlags().Lookup("lang"))
	_ = viper.BindPFlag(config.KeyNoColor, rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
}

func underConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

// exportArg requires the single export path and prints usage otherwise.
func exportArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		_ = cmd.Usage()
		return errUsage
	}
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	p, err := messages.NewPrinter(config.Get(config.KeyLanguage))
	if err != nil {
		return err
	}

	reporter := extractor.NewReporter(cmd.OutOrStdout(), p, !config.GetBool(config.KeyNoColor))
	planner := &nextsteps.Planner{
		DevURL: branding.DevServerURL(),
		Logger: logger,
	}
	e := extractor.New(config.Get(config.KeyOutputDir), reporter, planner, logger)

	res, err := e.Run(args[0])
	if err != nil {
		return &reportedError{err: err}
	}

	logger.Info("extraction finished",
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed),
		slog.Int("directories", res.Directories))
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors not already shown to the user are printed to stderr.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var reported *reportedError
	if !errors.As(err, &reported) && !errors.Is(err, errUsage) {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}
