package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tealeg/xlsx"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/models"
)

var (
	productSearch   string
	productCategory string
	productAll      bool

	productName         string
	productDescription  string
	productPrice        float64
	productCatName      string
	productSizes        []string
	productImages       []string
	productStock        int
	productCustomizable bool
	productInactive     bool

	productExportOut string
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse and manage the jersey catalog",
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE:  runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsGet,
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product (admin)",
	RunE:  runProductsCreate,
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a product (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsUpdate,
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a product (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsDelete,
}

var productsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to an xlsx workbook (admin)",
	RunE:  runProductsExport,
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCreateCmd)
	productsCmd.AddCommand(productsUpdateCmd)
	productsCmd.AddCommand(productsDeleteCmd)
	productsCmd.AddCommand(productsExportCmd)

	productsListCmd.Flags().StringVar(&productSearch, "search", "", "Substring match on product name")
	productsListCmd.Flags().StringVar(&productCategory, "category", "", "Filter by category")
	productsListCmd.Flags().BoolVar(&productAll, "all", false, "Include inactive products")

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().StringVar(&productName, "name", "", "Product name")
		c.Flags().StringVar(&productDescription, "description", "", "Product description")
		c.Flags().Float64Var(&productPrice, "price", 0, "Unit price")
		c.Flags().StringVar(&productCatName, "category", "", "Category name")
		c.Flags().StringSliceVar(&productSizes, "sizes", nil, "Available sizes (e.g. S,M,L,XL)")
		c.Flags().StringSliceVar(&productImages, "images", nil, "Image URLs, first one becomes primary")
		c.Flags().IntVar(&productStock, "stock", 0, "Initial stock")
		c.Flags().BoolVar(&productCustomizable, "customizable", false, "Allow name/number/badge customization")
		c.Flags().BoolVar(&productInactive, "inactive", false, "Create hidden from the storefront")
	}
	productsCreateCmd.MarkFlagRequired("name")
	productsCreateCmd.MarkFlagRequired("price")
	productsCreateCmd.MarkFlagRequired("category")

	productsExportCmd.Flags().StringVar(&productExportOut, "out", "products.xlsx", "Output file path")
}

func runProductsList(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	products, err := app.api.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	// Filter locally, the way the storefront search box does
	shown := 0
	fmt.Printf("%-6s %-34s %-18s %8s %6s %s\n", "ID", "NAME", "CATEGORY", "PRICE", "STOCK", "ACTIVE")
	for _, p := range products {
		if !productAll && !p.IsActive {
			continue
		}
		if productSearch != "" && !containsFold(p.Name, productSearch) {
			continue
		}
		if productCategory != "" && !strings.EqualFold(p.Category, productCategory) {
			continue
		}
		fmt.Printf("%-6d %-34s %-18s %8s %6d %t\n",
			p.ID, truncate(p.Name, 32), truncate(p.Category, 16), money(p.Price), p.Stock, p.IsActive)
		shown++
	}

	fmt.Printf("\n📦 %d product%s\n", shown, pluralize(shown))
	return nil
}

func runProductsGet(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	p, err := app.api.GetProduct(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch product: %w", err)
	}

	fmt.Printf("👕 %s (#%d)\n", p.Name, p.ID)
	fmt.Printf("   Category: %s | Price: %s | Stock: %d | Active: %t\n",
		p.Category, money(p.Price), p.Stock, p.IsActive)
	if len(p.Sizes) > 0 {
		fmt.Printf("   Sizes: %s\n", strings.Join(p.Sizes, ", "))
	}
	if p.AllowsCustomization {
		fmt.Printf("   Customization: yes")
		if p.CustomizationDetails != "" {
			fmt.Printf(" (%s)", p.CustomizationDetails)
		}
		fmt.Println()
	}
	if p.Description != "" {
		fmt.Printf("   %s\n", truncate(p.Description, 200))
	}
	for _, img := range p.Images {
		marker := " "
		if img.IsPrimary {
			marker = "*"
		}
		fmt.Printf("   %s %s\n", marker, img.URL)
	}
	return nil
}

func productInputFromFlags() api.ProductInput {
	images := make([]models.ProductImage, 0, len(productImages))
	for i, url := range productImages {
		images = append(images, models.ProductImage{URL: url, IsPrimary: i == 0})
	}
	return api.ProductInput{
		Name:                productName,
		Description:         productDescription,
		Price:               productPrice,
		Category:            productCatName,
		Sizes:               productSizes,
		Images:              images,
		Stock:               productStock,
		AllowsCustomization: productCustomizable,
		IsActive:            !productInactive,
	}
}

func runProductsCreate(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	p, err := app.api.CreateProduct(ctx, productInputFromFlags())
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	fmt.Printf("✅ Created product #%d: %s\n", p.ID, p.Name)
	return nil
}

func runProductsUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	p, err := app.api.UpdateProduct(ctx, id, productInputFromFlags())
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	fmt.Printf("✅ Updated product #%d: %s\n", p.ID, p.Name)
	return nil
}

func runProductsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.api.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	fmt.Printf("🗑️  Deleted product #%d\n", id)
	return nil
}

func runProductsExport(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	products, err := app.api.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch products: %w", err)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headers := []string{
		"ID", "Name", "Category", "Price", "Stock",
		"Sizes", "Customizable", "Active", "PrimaryImage", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Category)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Stock)
		row.AddCell().SetValue(strings.Join(p.Sizes, ","))
		row.AddCell().SetValue(p.AllowsCustomization)
		row.AddCell().SetValue(p.IsActive)
		row.AddCell().SetValue(p.PrimaryImage())
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	if err := file.Save(productExportOut); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	fmt.Printf("📊 Exported %d products to %s\n", len(products), productExportOut)
	return nil
}
