package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/models"
)

var (
	stockQuantity  int
	stockType      string
	stockUnitPrice float64
	stockReference string
	stockNotes     string
	stockLowOnly   int
)

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Track stock movements and levels (admin)",
}

var stockHistoryCmd = &cobra.Command{
	Use:   "history <product-id>",
	Short: "Show a product's stock movement history",
	Args:  cobra.ExactArgs(1),
	RunE:  runStockHistory,
}

var stockRecordCmd = &cobra.Command{
	Use:   "record <product-id>",
	Short: "Record a stock movement",
	RunE:  runStockRecord,
	Args:  cobra.ExactArgs(1),
}

var stockLevelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show current stock levels across products",
	RunE:  runStockLevels,
}

func init() {
	rootCmd.AddCommand(stockCmd)
	stockCmd.AddCommand(stockHistoryCmd)
	stockCmd.AddCommand(stockRecordCmd)
	stockCmd.AddCommand(stockLevelsCmd)

	stockRecordCmd.Flags().IntVar(&stockQuantity, "qty", 0, "Movement quantity")
	stockRecordCmd.Flags().StringVar(&stockType, "type", models.StockMovementIn, "Movement type: in or out")
	stockRecordCmd.Flags().Float64Var(&stockUnitPrice, "unit-price", 0, "Unit price for this movement")
	stockRecordCmd.Flags().StringVar(&stockReference, "reference", "", "Supplier invoice or order reference")
	stockRecordCmd.Flags().StringVar(&stockNotes, "notes", "", "Free-form notes")
	stockRecordCmd.MarkFlagRequired("qty")

	stockLevelsCmd.Flags().IntVar(&stockLowOnly, "below", 0, "Only show products with stock below this level")
}

func runStockHistory(cmd *cobra.Command, args []string) error {
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	movements, err := app.api.StockHistory(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to fetch stock history: %w", err)
	}

	fmt.Printf("%-19s %-4s %6s %8s %8s %s\n", "WHEN", "TYPE", "QTY", "UNIT", "BALANCE", "REFERENCE")
	for _, m := range movements {
		unit := ""
		if m.UnitPrice != nil {
			unit = money(*m.UnitPrice)
		}
		fmt.Printf("%-19s %-4s %6d %8s %8d %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), m.Type, m.Quantity, unit, m.Balance, m.Reference)
	}

	fmt.Printf("\n📈 %d movement%s\n", len(movements), pluralize(len(movements)))
	return nil
}

func runStockRecord(cmd *cobra.Command, args []string) error {
	productID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	if stockType != models.StockMovementIn && stockType != models.StockMovementOut {
		return fmt.Errorf("movement type must be %q or %q", models.StockMovementIn, models.StockMovementOut)
	}
	if stockQuantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	input := api.StockMovementInput{
		ProductID: productID,
		Quantity:  stockQuantity,
		Type:      stockType,
		Reference: stockReference,
		Notes:     stockNotes,
	}
	if cmd.Flags().Changed("unit-price") {
		input.UnitPrice = &stockUnitPrice
	}

	ctx, cancel := cmdContext()
	defer cancel()

	movement, err := app.api.RecordStockMovement(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to record movement: %w", err)
	}

	fmt.Printf("✅ Recorded %s of %d, balance now %d\n", movement.Type, movement.Quantity, movement.Balance)
	return nil
}

func runStockLevels(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	levels, err := app.api.StockLevels(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch stock levels: %w", err)
	}

	shown := 0
	fmt.Printf("%-6s %-38s %s\n", "ID", "PRODUCT", "STOCK")
	for _, level := range levels {
		if stockLowOnly > 0 && level.Stock >= stockLowOnly {
			continue
		}
		fmt.Printf("%-6d %-38s %d\n", level.ProductID, truncate(level.ProductName, 36), level.Stock)
		shown++
	}

	fmt.Printf("\n📦 %d product%s\n", shown, pluralize(shown))
	return nil
}
