// cmd/quickcdc/salt_cmd.go

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/creativeyann17/go-quickcdc/pkg/quickcdc"
)

func init() {
	rootCmd.AddCommand(saltCmd())
}

func saltCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "salt",
		Short: "Print a random salt usable with --salt",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("0x%016x\n", quickcdc.RandomSalt())
		},
	}
}
