package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sokastore/soka/internal/models"
	"github.com/sokastore/soka/internal/slug"
)

type BlogInput struct {
	Title    string   `json:"title"`
	Slug     string   `json:"slug"`
	Author   string   `json:"author"`
	Excerpt  string   `json:"excerpt,omitempty"`
	Content  string   `json:"content"`
	Tags     []string `json:"tags,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	IsActive bool     `json:"isActive"`
}

// NewBlogInput builds an input with the slug derived from title.
func NewBlogInput(title, author, content string) BlogInput {
	return BlogInput{
		Title:    title,
		Slug:     slug.Make(title),
		Author:   author,
		Content:  content,
		IsActive: true,
	}
}

func (c *Client) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return getList[models.Blog](ctx, c, "/blogs")
}

func (c *Client) GetBlogBySlug(ctx context.Context, blogSlug string) (*models.Blog, error) {
	var blog models.Blog
	path := "/blogs/" + url.PathEscape(blogSlug)
	if err := c.doJSON(ctx, "GET", path, nil, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) CreateBlog(ctx context.Context, input BlogInput) (*models.Blog, error) {
	var blog models.Blog
	if err := c.doJSON(ctx, "POST", "/blogs", input, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id int64, input BlogInput) (*models.Blog, error) {
	var blog models.Blog
	if err := c.doJSON(ctx, "PUT", fmt.Sprintf("/blogs/%d", id), input, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "DELETE", fmt.Sprintf("/blogs/%d", id), nil, nil)
}
