package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/models"
)

var (
	cartQuantity   int
	cartSize       string
	cartType       string
	cartPlayerName string
	cartPlayerNum  string
	cartBadge      string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Manage your cart",
	Long: `Manage your cart. Every mutation is confirmed against the server
and the cart re-fetched in full, so what you see is always what the
server has.`,
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart",
	RunE:  runCartShow,
}

var cartAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <item-id>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

var cartQtyCmd = &cobra.Command{
	Use:   "qty <item-id> <quantity>",
	Short: "Set a line's quantity (minimum 1)",
	Args:  cobra.ExactArgs(2),
	RunE:  runCartQty,
}

var cartClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the cart",
	RunE:  runCartClear,
}

func init() {
	rootCmd.AddCommand(cartCmd)
	cartCmd.AddCommand(cartShowCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	cartCmd.AddCommand(cartQtyCmd)
	cartCmd.AddCommand(cartClearCmd)

	cartAddCmd.Flags().IntVar(&cartQuantity, "qty", 1, "Quantity")
	cartAddCmd.Flags().StringVar(&cartSize, "size", "", "Jersey size (S, M, L, XL)")
	cartAddCmd.Flags().StringVar(&cartType, "type", "", "Kit type (home, away, third)")
	cartAddCmd.Flags().StringVar(&cartPlayerName, "player-name", "", "Printed player name")
	cartAddCmd.Flags().StringVar(&cartPlayerNum, "player-number", "", "Printed shirt number")
	cartAddCmd.Flags().StringVar(&cartBadge, "badge", "", "Badge slug")
}

func runCartShow(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.cart.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to fetch cart: %w", err)
	}

	items := app.cart.Items()
	if len(items) == 0 {
		fmt.Println("🛒 Your cart is empty")
		return nil
	}

	fmt.Printf("%-6s %-34s %5s %8s %s\n", "LINE", "PRODUCT", "QTY", "PRICE", "OPTIONS")
	for _, item := range items {
		options := cartLineOptions(item)
		fmt.Printf("%-6d %-34s %5d %8s %s\n",
			item.ID, truncate(item.Product.Name, 32), item.Quantity, money(item.Price), options)
	}
	fmt.Printf("\n🛒 %d item%s in cart\n", app.cart.Count(), pluralize(app.cart.Count()))
	return nil
}

func cartLineOptions(item models.CartItem) string {
	options := ""
	if item.Size != "" {
		options += "size " + item.Size
	}
	if item.Type != "" {
		if options != "" {
			options += ", "
		}
		options += item.Type
	}
	if item.Customization != nil {
		if options != "" {
			options += ", "
		}
		options += fmt.Sprintf("%s %s", item.Customization.PlayerName, item.Customization.PlayerNumber)
		if item.Customization.Badge != "" {
			options += " +" + item.Customization.Badge
		}
	}
	return options
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	input := api.CartAddInput{
		ProductID: productID,
		Quantity:  cartQuantity,
		Size:      cartSize,
		Type:      cartType,
	}
	if cartPlayerName != "" || cartPlayerNum != "" || cartBadge != "" {
		input.Customization = &models.Customization{
			PlayerName:   cartPlayerName,
			PlayerNumber: cartPlayerNum,
			Badge:        cartBadge,
		}
	}

	ctx, cancel := cmdContext()
	defer cancel()

	// The mirror handles notifications; nothing to print on success
	return app.cart.Add(ctx, input)
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	return app.cart.Remove(ctx, itemID)
}

func runCartQty(cmd *cobra.Command, args []string) error {
	itemID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid item id: %s", args[0])
	}
	quantity, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid quantity: %s", args[1])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.cart.UpdateQuantity(ctx, itemID, quantity); err != nil {
		return err
	}

	for _, item := range app.cart.Items() {
		if item.ID == itemID {
			fmt.Printf("✅ Line %d → quantity %d\n", item.ID, item.Quantity)
		}
	}
	return nil
}

func runCartClear(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	return app.cart.Clear(ctx)
}
