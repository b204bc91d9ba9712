// Root command for the stacks CLI.
package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mesh-intelligence/stacks/pkg/stacks"
	"github.com/mesh-intelligence/stacks/pkg/types"
)

// Exit codes. Corrupt-store and I/O failures are system errors; everything
// the user can fix (bad input, unknown id, bad credentials, no session) is
// a user error.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagStore     string
	flagJSON      bool
	flagVerbose   bool
)

// configDir and cfg hold the resolved configuration directory and the
// loaded config.yaml values. Set by PersistentPreRunE so all subcommands
// can use them.
var (
	configDir string
	cfg       types.Config
)

// logger is nop unless --verbose is set.
var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:     "stacks",
	Short:   "Stacks is a local-first library catalog",
	Version: stacks.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			zc := zap.NewDevelopmentConfig()
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			l, err := zc.Build()
			if err != nil {
				return err
			}
			logger = l
		}

		dir, err := resolveConfigDir()
		if err != nil {
			return err
		}
		configDir = dir

		v, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		cfg = types.Config{
			StorePath: v.GetString(cfgKeyStorePath),
			Username:  v.GetString(cfgKeyUsername),
			Password:  v.GetString(cfgKeyPassword),
		}
		return cfg.Validate()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "store file path (default: $(CWD)/books.json)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reportCmd)
}
