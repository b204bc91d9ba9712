// Version command for the stacks CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stacks/pkg/stacks"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stacks version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stacks", stacks.Version)
	},
}
