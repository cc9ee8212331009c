package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show your wishlist",
	RunE:  runWishlist,
}

func init() {
	rootCmd.AddCommand(wishlistCmd)
}

func runWishlist(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	items, err := app.api.Wishlist(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch wishlist: %w", err)
	}

	if len(items) == 0 {
		fmt.Println("💖 Your wishlist is empty")
		return nil
	}

	fmt.Printf("%-6s %-36s %8s %s\n", "ID", "PRODUCT", "PRICE", "IN STOCK")
	for _, item := range items {
		fmt.Printf("%-6d %-36s %8s %t\n",
			item.Product.ID, truncate(item.Product.Name, 34), money(item.Product.Price), item.Product.Stock > 0)
	}

	fmt.Printf("\n💖 %d item%s\n", len(items), pluralize(len(items)))
	return nil
}
