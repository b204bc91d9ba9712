// Logout command for the stacks CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/internal/auth"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := auth.Logout(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "logout:", err)
			os.Exit(exitSysError)
		}
		fmt.Println("Logged out")
		return nil
	},
}
