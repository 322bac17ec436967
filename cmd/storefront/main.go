package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "JA Fashion storefront server",
	Long: `storefront serves the JA Fashion shop: catalog pages backed by Sanity,
cart and wishlist, WhatsApp checkout, accounts, Stripe payments and the
chat assistant.

Configuration comes from the environment (and an optional .env file).`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
