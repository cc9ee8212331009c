// Package seo renders robots.txt and sitemap.xml for the storefront,
// listing the static pages plus every active product and blog post
// fetched from the API.
package seo

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sokastore/soka/internal/models"
)

// Catalog is the slice of the store API the generator reads.
type Catalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	ListBlogs(ctx context.Context) ([]models.Blog, error)
}

// staticPages are the storefront routes that exist regardless of
// catalog content.
var staticPages = []string{
	"/",
	"/products",
	"/blog",
	"/about",
	"/contact",
	"/faq",
	"/privacy-policy",
	"/terms",
}

type Generator struct {
	siteURL string
	catalog Catalog
}

func NewGenerator(siteURL string, catalog Catalog) *Generator {
	return &Generator{
		siteURL: strings.TrimRight(siteURL, "/"),
		catalog: catalog,
	}
}

// Robots renders robots.txt: everything crawlable except the admin
// surface, plus the sitemap location.
func (g *Generator) Robots() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n")
	b.WriteString("Disallow: /checkout\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", g.siteURL)
	return b.String()
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Sitemap fetches the catalog and renders the sitemap XML. Inactive
// products and posts are skipped; they have no public page.
func (g *Generator) Sitemap(ctx context.Context) ([]byte, error) {
	products, err := g.catalog.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	blogs, err := g.catalog.ListBlogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blogs: %w", err)
	}

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, urlEntry{Loc: g.siteURL + page})
	}
	for _, p := range products {
		if !p.IsActive {
			continue
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:     fmt.Sprintf("%s/products/%d", g.siteURL, p.ID),
			LastMod: lastMod(p.UpdatedAt),
		})
	}
	for _, b := range blogs {
		if !b.IsActive {
			continue
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:     g.siteURL + "/blog/" + b.Slug,
			LastMod: lastMod(b.UpdatedAt),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

// WriteFiles writes robots.txt and sitemap.xml into dir.
func (g *Generator) WriteFiles(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "robots.txt"), []byte(g.Robots()), 0o644); err != nil {
		return fmt.Errorf("failed to write robots.txt: %w", err)
	}

	sitemap, err := g.Sitemap(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "sitemap.xml"), sitemap, 0o644); err != nil {
		return fmt.Errorf("failed to write sitemap.xml: %w", err)
	}
	return nil
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
