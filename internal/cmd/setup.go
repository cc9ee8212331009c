package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var setupForce bool

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Write a starter config file to ~/.soka/",
	Long: `Writes a starter config.yaml to ~/.soka/ with the default API and
site URLs, request timeout, gateway address and delivery zones, ready
to edit. Environment variables with the SOKA_ prefix override any of
these at runtime.`,
	RunE: runSetup,
}

const starterConfig = `api:
  base_url: http://localhost:5000/api
  timeout: 15s

site:
  base_url: http://localhost:3000

gateway:
  addr: :8080

checkout:
  delivery_zones:
    - name: pickup
      fee: 0
    - name: city
      fee: 2.5
    - name: upcountry
      fee: 5
`

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&setupForce, "force", false, "Overwrite an existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up SokaStore CLI...")

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}

	dir := filepath.Join(home, ".soka")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err == nil && !setupForce {
		fmt.Printf("⚠️  %s already exists, use --force to overwrite\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(starterConfig), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("✅ Wrote %s\n", path)
	fmt.Println("💡 Point api.base_url at your store API, then run 'soka login'")
	return nil
}
