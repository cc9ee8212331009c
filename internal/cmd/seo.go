package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/seo"
)

var seoOutDir string

var seoCmd = &cobra.Command{
	Use:   "seo",
	Short: "Generate robots.txt and sitemap.xml",
	Long: `Generate robots.txt and sitemap.xml for the storefront from the
live catalog: every active product and blog post gets an entry. The
gateway server also serves both at runtime; this command writes them
to disk for static hosting.`,
	RunE: runSEO,
}

func init() {
	rootCmd.AddCommand(seoCmd)
	seoCmd.Flags().StringVar(&seoOutDir, "out", "public", "Output directory")
}

func runSEO(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	gen := seo.NewGenerator(app.cfg.Site.BaseURL, app.api)
	if err := gen.WriteFiles(ctx, seoOutDir); err != nil {
		return fmt.Errorf("failed to generate seo files: %w", err)
	}

	fmt.Printf("🗺️  Wrote robots.txt and sitemap.xml to %s/\n", seoOutDir)
	return nil
}
