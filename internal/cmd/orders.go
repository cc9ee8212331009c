package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/models"
)

var (
	orderStatusFilter string
	orderSearch       string

	orderTransactionID string
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Review and manage orders (admin)",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all orders",
	RunE:  runOrdersList,
}

var ordersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersGet,
}

var ordersStatusCmd = &cobra.Command{
	Use:   "status <id> <status>",
	Short: "Set an order's status",
	Long: `Set an order's status to any of: pending, confirmed, processing,
shipped, delivered, cancelled. No transition graph is enforced; any
status can follow any other.`,
	Args: cobra.ExactArgs(2),
	RunE: runOrdersStatus,
}

var ordersPaymentCmd = &cobra.Command{
	Use:   "payment <id> <status>",
	Short: "Set an order's payment status",
	Args:  cobra.ExactArgs(2),
	RunE:  runOrdersPayment,
}

var ordersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrdersDelete,
}

func init() {
	rootCmd.AddCommand(ordersCmd)
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersGetCmd)
	ordersCmd.AddCommand(ordersStatusCmd)
	ordersCmd.AddCommand(ordersPaymentCmd)
	ordersCmd.AddCommand(ordersDeleteCmd)

	ordersListCmd.Flags().StringVar(&orderStatusFilter, "status", "", "Filter by order status")
	ordersListCmd.Flags().StringVar(&orderSearch, "search", "", "Substring match on order number or customer")

	ordersPaymentCmd.Flags().StringVar(&orderTransactionID, "transaction", "", "Payment transaction id")
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	orders, err := app.api.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch orders: %w", err)
	}

	shown := 0
	fmt.Printf("%-12s %-22s %-12s %-10s %10s %s\n", "ORDER", "CUSTOMER", "STATUS", "PAYMENT", "TOTAL", "PLACED")
	for _, o := range orders {
		if orderStatusFilter != "" && string(o.Status) != orderStatusFilter {
			continue
		}
		if orderSearch != "" && !containsFold(o.OrderNumber, orderSearch) && !containsFold(o.CustomerName, orderSearch) {
			continue
		}
		fmt.Printf("%-12s %-22s %-12s %-10s %10s %s\n",
			o.OrderNumber, truncate(o.CustomerName, 20), o.Status, o.PaymentStatus,
			money(o.Total), o.CreatedAt.Format("2006-01-02 15:04"))
		shown++
	}

	fmt.Printf("\n🧾 %d order%s\n", shown, pluralize(shown))
	return nil
}

func runOrdersGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	o, err := app.api.GetOrder(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	fmt.Printf("🧾 %s (#%d) — %s / payment %s\n", o.OrderNumber, o.ID, o.Status, o.PaymentStatus)
	fmt.Printf("   %s <%s> %s\n", o.CustomerName, o.CustomerEmail, o.CustomerPhone)
	if o.DeliveryType == "delivery" {
		fmt.Printf("   Deliver to: %s (%s, fee %s)\n", o.DeliveryAddress, o.DeliveryZone, money(o.DeliveryFee))
	} else {
		fmt.Printf("   Pickup\n")
	}
	fmt.Printf("   Paid via %s", o.PaymentMethod)
	if o.TransactionID != "" {
		fmt.Printf(" (txn %s)", o.TransactionID)
	}
	fmt.Println()

	fmt.Println()
	for _, item := range o.Items {
		line := fmt.Sprintf("   %d× %s @ %s", item.Quantity, item.ProductName, money(item.Price))
		if item.Size != "" {
			line += " size " + item.Size
		}
		if item.Customization != nil {
			line += fmt.Sprintf(" [%s %s", item.Customization.PlayerName, item.Customization.PlayerNumber)
			if item.Customization.Badge != "" {
				line += " +" + item.Customization.Badge
			}
			line += "]"
		}
		fmt.Println(line)
	}
	fmt.Printf("\n   Total: %s\n", money(o.Total))
	return nil
}

func runOrdersStatus(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id: %s", args[0])
	}

	status := models.OrderStatus(args[1])
	if !validOrderStatus(status) {
		return fmt.Errorf("unknown status %q (want one of: %s)", args[1], orderStatusNames())
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.api.UpdateOrderStatus(ctx, id, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	fmt.Printf("✅ Order #%d → %s\n", id, status)
	return nil
}

func runOrdersPayment(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id: %s", args[0])
	}

	status := models.PaymentStatus(args[1])
	switch status {
	case models.PaymentStatusPending, models.PaymentStatusPaid, models.PaymentStatusFailed, models.PaymentStatusRefunded:
	default:
		return fmt.Errorf("unknown payment status %q", args[1])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.api.UpdatePaymentStatus(ctx, id, status, orderTransactionID); err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	fmt.Printf("✅ Order #%d payment → %s\n", id, status)
	return nil
}

func runOrdersDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid order id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.api.DeleteOrder(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	fmt.Printf("🗑️  Deleted order #%d\n", id)
	return nil
}

func validOrderStatus(s models.OrderStatus) bool {
	for _, status := range models.OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func orderStatusNames() string {
	names := make([]string, 0, len(models.OrderStatuses))
	for _, s := range models.OrderStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
