// Package server is the storefront gateway: a small HTTP frontend over
// the store API for the read-side pages plus the cart view. Mutations
// stay on the CLI.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/cart"
	"github.com/sokastore/soka/internal/seo"
)

type Server struct {
	router *gin.Engine
	api    *api.Client
	mirror *cart.Mirror
	seo    *seo.Generator
}

// NewServer creates a gateway over the given API client.
func NewServer(apiClient *api.Client, mirror *cart.Mirror, seoGen *seo.Generator) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		api:    apiClient,
		mirror: mirror,
		seo:    seoGen,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all gateway routes
func (s *Server) setupRoutes() {
	s.router.GET("/api/health", s.healthCheck)

	s.router.GET("/products", s.listProducts)
	s.router.GET("/products/:id", s.getProduct)
	s.router.GET("/categories", s.listCategories)
	s.router.GET("/blogs", s.listBlogs)
	s.router.GET("/blogs/:slug", s.getBlog)
	s.router.GET("/cart", s.cartView)

	s.router.GET("/robots.txt", s.robots)
	s.router.GET("/sitemap.xml", s.sitemap)
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "sokastore-gateway",
		"version": "0.1.0",
	})
}

func (s *Server) robots(c *gin.Context) {
	c.String(http.StatusOK, s.seo.Robots())
}

func (s *Server) sitemap(c *gin.Context) {
	out, err := s.seo.Sitemap(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to build sitemap"})
		return
	}
	c.Data(http.StatusOK, "application/xml", out)
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
