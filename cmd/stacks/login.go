// Login command for the stacks CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/auth"
)

var (
	loginUser string
	loginPass string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as the librarian",
	Long: `Login checks the given credentials against the configured librarian
account and starts a session. All catalog commands require an active
session.

The demo credentials are librarian / lib123 unless config.yaml overrides
them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := auth.Login(cfg, configDir, loginUser, loginPass); err != nil {
			if errors.Is(err, auth.ErrBadCredentials) {
				fmt.Fprintln(os.Stderr, "login failed: invalid username or password")
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "login:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Logged in as %s\n", loginUser)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUser, "user", "", "librarian username (required)")
	loginCmd.Flags().StringVar(&loginPass, "pass", "", "librarian password (required)")

	loginCmd.MarkFlagRequired("user")
	loginCmd.MarkFlagRequired("pass")
}
