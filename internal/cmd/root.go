package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soka",
	Short: "SokaStore - football jersey storefront and back office",
	Long: `soka is the command-line storefront and admin back office for the
SokaStore jersey shop. It talks to the SokaStore REST API for all data;
nothing is stored locally except your login session.

Browse the catalog, manage your cart and place orders as a customer, or
manage products, categories, blogs, orders and stock as an admin. The
'run' command starts the storefront gateway server.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
