package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/slug"
)

var (
	categoryName        string
	categoryDescription string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Manage product categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories",
	RunE:  runCategoriesList,
}

var categoriesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category (admin)",
	Long: `Add a category. The slug is derived from the name (lowercased,
spaces to hyphens) and cannot be set directly.`,
	RunE: runCategoriesAdd,
}

var categoriesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a category (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesUpdate,
}

var categoriesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a category (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesDelete,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesAddCmd)
	categoriesCmd.AddCommand(categoriesUpdateCmd)
	categoriesCmd.AddCommand(categoriesDeleteCmd)

	for _, c := range []*cobra.Command{categoriesAddCmd, categoriesUpdateCmd} {
		c.Flags().StringVar(&categoryName, "name", "", "Category name")
		c.Flags().StringVar(&categoryDescription, "description", "", "Category description")
	}
	categoriesAddCmd.MarkFlagRequired("name")
	categoriesUpdateCmd.MarkFlagRequired("name")
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	categories, err := app.api.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch categories: %w", err)
	}

	fmt.Printf("%-6s %-28s %-28s %s\n", "ID", "NAME", "SLUG", "DESCRIPTION")
	for _, c := range categories {
		fmt.Printf("%-6d %-28s %-28s %s\n",
			c.ID, truncate(c.Name, 26), c.Slug, truncate(c.Description, 40))
	}

	fmt.Printf("\n🏷️  %d categor%s\n", len(categories), pluralizeCategory(len(categories)))
	return nil
}

func runCategoriesAdd(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	// Echo the derived slug before submitting, like the admin form's
	// read-only slug field
	fmt.Printf("🏷️  %s → slug %q\n", categoryName, slug.Make(categoryName))

	ctx, cancel := cmdContext()
	defer cancel()

	category, err := app.api.CreateCategory(ctx, api.NewCategoryInput(categoryName, categoryDescription))
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	fmt.Printf("✅ Created category #%d: %s (%s)\n", category.ID, category.Name, category.Slug)
	return nil
}

func runCategoriesUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	category, err := app.api.UpdateCategory(ctx, id, api.NewCategoryInput(categoryName, categoryDescription))
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}

	fmt.Printf("✅ Updated category #%d: %s (%s)\n", category.ID, category.Name, category.Slug)
	return nil
}

func runCategoriesDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.api.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	fmt.Printf("🗑️  Deleted category #%d\n", id)
	return nil
}

func pluralizeCategory(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}
