package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dthphuong/copilot-status/internal/config"
	"github.com/dthphuong/copilot-status/internal/util"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Data paths
	dataDir      string
	usageLogPath string
	configPath   string

	// Display related
	timezone string

	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:   "copilot-status",
		Short: "Copilot CLI usage statistics tool",
		Long: `copilot-status reads locally stored Copilot CLI session transcripts,
estimates token usage, and reports daily statistics.

Examples:
  copilot-status stats                          # Today's stats as a table
  copilot-status stats --date 2026-08-30        # Stats for a specific date
  copilot-status stats --output json            # Machine-readable output
  copilot-status stats --export usage.json      # Write stats with metadata envelope
  copilot-status dashboard                      # Live refreshing dashboard
  copilot-status track                          # Background usage tracker`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&dataDir, "dir", "",
		"Session directory path (default ~/.copilot/history-session-state)")
	rootCmd.PersistentFlags().StringVar(&usageLogPath, "usage-log", "",
		"Usage log file path (default ~/.copilot-status/usage.log)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Application log file path")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (default ~/.copilot-status/config.yaml)")
}

// setup loads the config file, applies flag overrides, and initializes
// logging and the time provider. Every subcommand calls it first.
func setup() error {
	loaded, err := config.Load(expandPath(configPath))
	if err != nil {
		return err
	}
	cfg = loaded

	if dataDir != "" {
		cfg.SessionsDir = dataDir
	}
	if usageLogPath != "" {
		cfg.UsageLogPath = usageLogPath
	}
	if timezone != "" {
		cfg.Timezone = timezone
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	cfg.SessionsDir = expandPath(cfg.SessionsDir)
	cfg.UsageLogPath = expandPath(cfg.UsageLogPath)
	cfg.LogFile = expandPath(cfg.LogFile)

	logLevel := cfg.LogLevel
	if debug {
		logLevel = "debug"
	}

	ensureDir(filepath.Dir(cfg.LogFile))
	util.InitLogger(logLevel, cfg.LogFile, debug)

	return util.InitializeTimeProvider(cfg.Timezone)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	if path == "" {
		return path
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
