package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/checkout"
	"github.com/sokastore/soka/internal/models"
)

var (
	checkoutName     string
	checkoutEmail    string
	checkoutPhone    string
	checkoutAddress  string
	checkoutDelivery string
	checkoutZone     string
	checkoutPayment  string
	checkoutDryRun   bool
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Place an order from your cart",
	Long: `Place an order from the current cart contents. The cart is
re-fetched from the server first, totals are computed from the stored
price snapshots plus the delivery zone fee, and the cart is cleared
after the order is accepted.`,
	RunE: runCheckout,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)

	checkoutCmd.Flags().StringVar(&checkoutName, "name", "", "Customer name")
	checkoutCmd.Flags().StringVar(&checkoutEmail, "email", "", "Contact email")
	checkoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "Contact phone")
	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "Delivery address")
	checkoutCmd.Flags().StringVar(&checkoutDelivery, "delivery", checkout.DeliveryTypePickup, "Delivery type: pickup or delivery")
	checkoutCmd.Flags().StringVar(&checkoutZone, "zone", "", "Delivery zone name")
	checkoutCmd.Flags().StringVar(&checkoutPayment, "payment", "", "Payment method (cash, mobile-money, card)")
	checkoutCmd.Flags().BoolVar(&checkoutDryRun, "dry-run", false, "Show the order summary without placing it")
	checkoutCmd.MarkFlagRequired("name")
	checkoutCmd.MarkFlagRequired("email")
	checkoutCmd.MarkFlagRequired("phone")
}

func runCheckout(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	// Always price what the server has, not a stale mirror
	if err := app.cart.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to fetch cart: %w", err)
	}
	items := app.cart.Items()
	if len(items) == 0 {
		return fmt.Errorf("cart is empty; add something first")
	}

	var zone models.DeliveryZone
	if checkoutDelivery == checkout.DeliveryTypeDelivery {
		found := false
		zone, found = app.cfg.Zone(checkoutZone)
		if !found {
			return fmt.Errorf("unknown delivery zone %q (configured: %s)", checkoutZone, zoneNames(app.cfg.Checkout.DeliveryZones))
		}
	}

	input, err := checkout.BuildOrder(items, checkout.Customer{
		Name:    checkoutName,
		Email:   checkoutEmail,
		Phone:   checkoutPhone,
		Address: checkoutAddress,
	}, checkoutDelivery, zone, checkoutPayment)
	if err != nil {
		return err
	}

	summary := checkout.Summarize(items, zone.Fee)
	fmt.Printf("🧾 Order summary\n")
	for _, item := range items {
		fmt.Printf("   %d× %s @ %s\n", item.Quantity, item.Product.Name, money(item.Price))
	}
	fmt.Printf("   Subtotal:     %s\n", summary.Subtotal.StringFixed(2))
	fmt.Printf("   Delivery fee: %s\n", summary.DeliveryFee.StringFixed(2))
	fmt.Printf("   Total:        %s\n", summary.Total.StringFixed(2))

	if checkoutDryRun {
		fmt.Println("\n💡 Dry run, order not placed")
		return nil
	}

	order, err := app.api.CreateOrder(ctx, *input)
	if err != nil {
		return fmt.Errorf("failed to place order: %w", err)
	}

	fmt.Printf("\n🎉 Order placed: %s\n", order.OrderNumber)

	// Best effort; the order is already in
	if err := app.cart.Clear(ctx); err != nil {
		fmt.Println("⚠️  Could not clear the cart; it may still show ordered items")
	}
	return nil
}

func zoneNames(zones []models.DeliveryZone) string {
	names := make([]string, 0, len(zones))
	for _, z := range zones {
		names = append(names, z.Name)
	}
	return strings.Join(names, ", ")
}
