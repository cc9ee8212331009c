package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/slug"
)

var (
	blogSearch string
	blogAll    bool

	blogTitle    string
	blogAuthor   string
	blogExcerpt  string
	blogContent  string
	blogTags     []string
	blogImageURL string
	blogDraft    bool
)

var blogsCmd = &cobra.Command{
	Use:   "blogs",
	Short: "Manage blog posts",
}

var blogsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List blog posts",
	RunE:  runBlogsList,
}

var blogsGetCmd = &cobra.Command{
	Use:   "get <slug>",
	Short: "Show one post by slug",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlogsGet,
}

var blogsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a post (admin)",
	RunE:  runBlogsCreate,
}

var blogsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a post (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlogsUpdate,
}

var blogsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a post (admin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlogsDelete,
}

func init() {
	rootCmd.AddCommand(blogsCmd)
	blogsCmd.AddCommand(blogsListCmd)
	blogsCmd.AddCommand(blogsGetCmd)
	blogsCmd.AddCommand(blogsCreateCmd)
	blogsCmd.AddCommand(blogsUpdateCmd)
	blogsCmd.AddCommand(blogsDeleteCmd)

	blogsListCmd.Flags().StringVar(&blogSearch, "search", "", "Substring match on title or author")
	blogsListCmd.Flags().BoolVar(&blogAll, "all", false, "Include inactive posts")

	for _, c := range []*cobra.Command{blogsCreateCmd, blogsUpdateCmd} {
		c.Flags().StringVar(&blogTitle, "title", "", "Post title")
		c.Flags().StringVar(&blogAuthor, "author", "", "Author name")
		c.Flags().StringVar(&blogExcerpt, "excerpt", "", "Short excerpt")
		c.Flags().StringVar(&blogContent, "content", "", "Post body")
		c.Flags().StringSliceVar(&blogTags, "tags", nil, "Tags")
		c.Flags().StringVar(&blogImageURL, "image", "", "Cover image URL")
		c.Flags().BoolVar(&blogDraft, "draft", false, "Keep the post hidden")
	}
	blogsCreateCmd.MarkFlagRequired("title")
	blogsCreateCmd.MarkFlagRequired("author")
	blogsCreateCmd.MarkFlagRequired("content")
}

func blogInputFromFlags() api.BlogInput {
	return api.BlogInput{
		Title:    blogTitle,
		Slug:     slug.Make(blogTitle),
		Author:   blogAuthor,
		Excerpt:  blogExcerpt,
		Content:  blogContent,
		Tags:     blogTags,
		ImageURL: blogImageURL,
		IsActive: !blogDraft,
	}
}

func runBlogsList(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	blogs, err := app.api.ListBlogs(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch blogs: %w", err)
	}

	shown := 0
	fmt.Printf("%-6s %-36s %-18s %-24s %s\n", "ID", "TITLE", "AUTHOR", "SLUG", "ACTIVE")
	for _, b := range blogs {
		if !blogAll && !b.IsActive {
			continue
		}
		if blogSearch != "" && !containsFold(b.Title, blogSearch) && !containsFold(b.Author, blogSearch) {
			continue
		}
		fmt.Printf("%-6d %-36s %-18s %-24s %t\n",
			b.ID, truncate(b.Title, 34), truncate(b.Author, 16), b.Slug, b.IsActive)
		shown++
	}

	fmt.Printf("\n📰 %d post%s\n", shown, pluralize(shown))
	return nil
}

func runBlogsGet(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	b, err := app.api.GetBlogBySlug(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to fetch post: %w", err)
	}

	fmt.Printf("📰 %s\n", b.Title)
	fmt.Printf("   by %s on %s\n", b.Author, b.CreatedAt.Format("2006-01-02"))
	if len(b.Tags) > 0 {
		fmt.Printf("   tags: %s\n", strings.Join(b.Tags, ", "))
	}
	fmt.Println()
	fmt.Println(b.Content)
	return nil
}

func runBlogsCreate(cmd *cobra.Command, args []string) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	b, err := app.api.CreateBlog(ctx, blogInputFromFlags())
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	fmt.Printf("✅ Created post #%d: %s (%s)\n", b.ID, b.Title, b.Slug)
	return nil
}

func runBlogsUpdate(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid post id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	b, err := app.api.UpdateBlog(ctx, id, blogInputFromFlags())
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	fmt.Printf("✅ Updated post #%d: %s\n", b.ID, b.Title)
	return nil
}

func runBlogsDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid post id: %s", args[0])
	}

	app, err := loadApp()
	if err != nil {
		return err
	}

	ctx, cancel := cmdContext()
	defer cancel()

	if err := app.api.DeleteBlog(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	fmt.Printf("🗑️  Deleted post #%d\n", id)
	return nil
}
