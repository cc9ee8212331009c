package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/models"
)

// productQuery is the storefront's search/filter form: substring match
// on name, optional category, active-only by default.
type productQuery struct {
	Query      string `form:"q"`
	Category   string `form:"category"`
	IncludeAll bool   `form:"all"`
}

func (s *Server) listProducts(c *gin.Context) {
	var query productQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query: " + err.Error()})
		return
	}

	products, err := s.api.ListProducts(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !query.IncludeAll && !p.IsActive {
			continue
		}
		if query.Category != "" && !strings.EqualFold(p.Category, query.Category) {
			continue
		}
		if query.Query != "" && !containsFold(p.Name, query.Query) {
			continue
		}
		filtered = append(filtered, p)
	}

	c.JSON(http.StatusOK, gin.H{"items": filtered, "count": len(filtered)})
}

func (s *Server) getProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	product, err := s.api.GetProduct(c.Request.Context(), id)
	if err != nil {
		upstreamError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

func (s *Server) listCategories(c *gin.Context) {
	categories, err := s.api.ListCategories(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": categories})
}

func (s *Server) listBlogs(c *gin.Context) {
	blogs, err := s.api.ListBlogs(c.Request.Context())
	if err != nil {
		upstreamError(c, err)
		return
	}

	active := make([]models.Blog, 0, len(blogs))
	for _, b := range blogs {
		if b.IsActive {
			active = append(active, b)
		}
	}
	c.JSON(http.StatusOK, gin.H{"items": active})
}

func (s *Server) getBlog(c *gin.Context) {
	blog, err := s.api.GetBlogBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		upstreamError(c, err)
		return
	}
	c.JSON(http.StatusOK, blog)
}

// cartView renders the mirror after a refresh, so the page always
// shows server-confirmed state.
func (s *Server) cartView(c *gin.Context) {
	if err := s.mirror.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "cart is temporarily unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": s.mirror.Items(),
		"count": s.mirror.Count(),
	})
}

// upstreamError maps an API failure onto the gateway response,
// preserving the upstream status where there is one.
func upstreamError(c *gin.Context, err error) {
	if apiErr, ok := err.(*api.Error); ok {
		c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "store API is unreachable"})
}

// containsFold is a case-insensitive substring match.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
