package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/seo"
	"github.com/sokastore/soka/internal/server"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the storefront gateway server",
	Long: `Start the storefront gateway server which provides:
- JSON views of the catalog, blog and cart
- robots.txt and sitemap.xml built from the live catalog
- a health endpoint for monitoring`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 SokaStore gateway starting...")

	app, err := loadApp()
	if err != nil {
		return err
	}

	fmt.Printf("🔌 Store API: %s\n", app.cfg.API.BaseURL)

	gen := seo.NewGenerator(app.cfg.Site.BaseURL, app.api)
	srv := server.NewServer(app.api, app.cart, gen)

	fmt.Printf("🌐 Listening on %s...\n", app.cfg.Gateway.Addr)
	if err := srv.Start(app.cfg.Gateway.Addr); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
