package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokastore/soka/internal/api"
	"github.com/sokastore/soka/internal/cart"
	"github.com/sokastore/soka/internal/notify"
	"github.com/sokastore/soka/internal/seo"
	"github.com/sokastore/soka/internal/types"
)

// fakeStoreAPI stands in for the real store API server.
func fakeStoreAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [
			{"id": 1, "name": "Home Kit", "category": "Premier League", "isActive": true, "price": 30},
			{"id": 2, "name": "Retro Away", "category": "Retro", "isActive": true, "price": 45},
			{"id": 3, "name": "Old Draft", "category": "Retro", "isActive": false, "price": 10}
		]}`))
	})
	mux.HandleFunc("GET /products/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 2, "name": "Retro Away", "price": 45}`))
	})
	mux.HandleFunc("GET /products/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "Product not found"}`))
	})
	mux.HandleFunc("GET /blogs", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "slug": "derby", "isActive": true}, {"id": 2, "slug": "draft", "isActive": false}]`))
	})
	mux.HandleFunc("GET /cart", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items": [{"id": 1, "productId": 2, "quantity": 2, "price": 45}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := fakeStoreAPI(t)
	client := api.NewClient(upstream.URL, 5*time.Second, types.StaticToken("tok"))
	mirror := cart.New(client, notify.Silent{})
	gen := seo.NewGenerator("https://sokastore.com", client)
	return NewServer(client, mirror, gen)
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestListProductsFiltersInactive(t *testing.T) {
	rec := get(t, newTestServer(t), "/products")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}

func TestListProductsSubstringSearch(t *testing.T) {
	rec := get(t, newTestServer(t), "/products?q=retro")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Retro Away")
	assert.NotContains(t, rec.Body.String(), "Home Kit")
}

func TestListProductsCategoryFilter(t *testing.T) {
	rec := get(t, newTestServer(t), "/products?category=premier+league")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Home Kit")
	assert.NotContains(t, rec.Body.String(), "Retro Away")
}

func TestGetProductUpstreamStatusPreserved(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/products/2")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(t, srv, "/products/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found")
}

func TestListBlogsActiveOnly(t *testing.T) {
	rec := get(t, newTestServer(t), "/blogs")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "derby")
	assert.NotContains(t, rec.Body.String(), "draft")
}

func TestCartViewRefreshesMirror(t *testing.T) {
	rec := get(t, newTestServer(t), "/cart")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Count)
}

func TestRobotsServed(t *testing.T) {
	rec := get(t, newTestServer(t), "/robots.txt")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Disallow: /admin")
}

func TestSitemapServed(t *testing.T) {
	rec := get(t, newTestServer(t), "/sitemap.xml")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "urlset")
	assert.Contains(t, rec.Body.String(), "/products/1")
	assert.NotContains(t, rec.Body.String(), "/products/3")
}
