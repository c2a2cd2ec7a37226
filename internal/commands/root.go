package commands

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rithikkrisna/wificreds/internal/cliutil"
	"github.com/rithikkrisna/wificreds/internal/config"
	"github.com/rithikkrisna/wificreds/internal/creds"
	"github.com/rithikkrisna/wificreds/internal/logging"
)

var (
	// Global flags
	flagFile    string
	flagJSON    bool
	flagVerbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wificreds",
	Short: "Wi-Fi credential table lookup",
	Long: `wificreds answers queries against a static table of named Wi-Fi
credentials (name, SSID, password). The first entry in the table is the
default and is used whenever no name is given or a requested name is not
found. Passwords are masked everywhere except the explicit password and
--show-password outputs.`,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags available to all commands
	rootCmd.PersistentFlags().StringVarP(&flagFile, "credentials", "c", "", "Path to the credentials file (or use WIFICREDS_CREDENTIALS_FILE env var)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
}

// loadTable loads configuration and the credential table, exiting on failure.
func loadTable() (*creds.Table, *slog.Logger) {
	cfg, err := config.Load()
	if err != nil {
		cliutil.ExitWithError(err, "failed to load configuration")
	}

	if flagFile != "" {
		cfg.Credentials.File = flagFile
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		cliutil.ExitWithCode(cliutil.ExitConfigError, err.Error())
	}

	// Logs go to stderr so bare command output stays pipeable.
	logger := logging.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format)

	table, err := config.LoadTable(cfg.Credentials.File, logger)
	if err != nil {
		if errors.Is(err, creds.ErrTableTooLarge) {
			cliutil.ExitWithCode(cliutil.ExitConfigError, err.Error())
		}
		cliutil.ExitWithError(err, "failed to load credentials")
	}

	return table, logger
}

// resolveArg returns the optional name argument, empty meaning "use default".
func resolveArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// logFallback emits a debug line when a supplied name resolved to the
// default entry, so typos stay visible despite the fallback policy.
func logFallback(logger *slog.Logger, table *creds.Table, name string, resolved creds.Credential) {
	if name == "" || table.Has(name) {
		return
	}
	logger.Debug("Requested name not found, using default entry",
		"requested", name,
		"credential", resolved)
}
