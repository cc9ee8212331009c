package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/api"
)

var (
	badgeName        string
	badgeIconURL     string
	badgeDescription string
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "Manage jersey customization badges",
}

var badgesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List badges",
	RunE:  runBadgesList,
}

var badgesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a badge (admin)",
	RunE:  runBadgesAdd,
}

func init() {
	rootCmd.AddCommand(badgesCmd)
	badgesCmd.AddCommand(badgesListCmd)
	badgesCmd.AddCommand(badgesAddCmd)

	badgesAddCmd.Flags().StringVar(&badgeName, "name", "", "Badge name")
	badgesAddCmd.Flags().StringVar(&badgeIconURL, "icon", "", "Icon URL")
	badgesAddCmd.Flags().StringVar(&badgeDescription, "description", "", "Badge description")
	badgesAddCmd.MarkFlagRequired("name")
	badgesAddCmd.MarkFlagRequired("icon")
}

func runBadgesList(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	badges, err := app.api.ListBadges(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch badges: %w", err)
	}

	fmt.Printf("%-6s %-24s %-24s %s\n", "ID", "NAME", "SLUG", "ICON")
	for _, b := range badges {
		fmt.Printf("%-6d %-24s %-24s %s\n", b.ID, truncate(b.Name, 22), b.Slug, b.IconURL)
	}

	fmt.Printf("\n🎖️  %d badge%s\n", len(badges), pluralize(len(badges)))
	return nil
}

func runBadgesAdd(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	badge, err := app.api.CreateBadge(ctx, api.NewBadgeInput(badgeName, badgeIconURL, badgeDescription))
	if err != nil {
		return fmt.Errorf("failed to create badge: %w", err)
	}

	fmt.Printf("✅ Created badge #%d: %s (%s)\n", badge.ID, badge.Name, badge.Slug)
	return nil
}
