package seo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokastore/soka/internal/models"
)

type fakeCatalog struct {
	products []models.Product
	blogs    []models.Blog
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeCatalog) ListBlogs(ctx context.Context) ([]models.Blog, error) {
	return f.blogs, nil
}

func TestRobots(t *testing.T) {
	g := NewGenerator("https://sokastore.com/", &fakeCatalog{})
	robots := g.Robots()

	assert.Contains(t, robots, "User-agent: *")
	assert.Contains(t, robots, "Disallow: /admin")
	assert.Contains(t, robots, "Sitemap: https://sokastore.com/sitemap.xml")
}

func TestSitemapIncludesActiveEntriesOnly(t *testing.T) {
	updated := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	catalog := &fakeCatalog{
		products: []models.Product{
			{ID: 5, Name: "Home Kit", IsActive: true, UpdatedAt: updated},
			{ID: 6, Name: "Hidden Kit", IsActive: false},
		},
		blogs: []models.Blog{
			{ID: 1, Slug: "derby-preview", IsActive: true, UpdatedAt: updated},
			{ID: 2, Slug: "draft", IsActive: false},
		},
	}

	g := NewGenerator("https://sokastore.com", catalog)
	out, err := g.Sitemap(context.Background())
	require.NoError(t, err)

	sitemap := string(out)
	assert.Contains(t, sitemap, "<loc>https://sokastore.com/products/5</loc>")
	assert.NotContains(t, sitemap, "/products/6")
	assert.Contains(t, sitemap, "<loc>https://sokastore.com/blog/derby-preview</loc>")
	assert.NotContains(t, sitemap, "draft")
	assert.Contains(t, sitemap, "<lastmod>2026-03-14</lastmod>")
	assert.Contains(t, sitemap, "<loc>https://sokastore.com/</loc>")
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	g := NewGenerator("https://sokastore.com", &fakeCatalog{})

	require.NoError(t, g.WriteFiles(context.Background(), dir))

	robots, err := os.ReadFile(filepath.Join(dir, "robots.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(robots), "User-agent")

	sitemap, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "urlset")
}
