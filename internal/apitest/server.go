// Package apitest provides an in-process catalog service for tests.
// It mirrors the real backend's contract: enveloped JSON responses, paged
// product listing, and referential-integrity rejection of category deletes.
package apitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/catalogtools/catalog-admin/internal/models"
)

// Server wraps an httptest.Server with seeded in-memory stores
type Server struct {
	*httptest.Server

	mu         sync.Mutex
	categories []models.Category
	products   []models.Product
	nextID     int
	clock      time.Time

	// FailCategories forces category endpoints to return 500
	FailCategories bool
	// FailProducts forces product endpoints to return 500
	FailProducts bool

	lastRequestID string
}

// NewServer starts a fake catalog service. Callers own the shutdown via
// Close.
func NewServer() *Server {
	s := &Server{
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	r := chi.NewRouter()

	// Same policy the browser-facing backend runs with
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.mu.Lock()
			s.lastRequestID = req.Header.Get("X-Request-ID")
			s.mu.Unlock()
			next.ServeHTTP(w, req)
		})
	})

	r.Route("/api/Categories", func(r chi.Router) {
		r.Get("/GetAllCategories", s.listCategories)
		r.Get("/GetCategoryById/{id}", s.getCategory)
		r.Post("/CreateCategory", s.createCategory)
		r.Put("/UpdateCategoryById/{id}", s.updateCategory)
		r.Delete("/DeleteCategoryById/{id}", s.deleteCategory)
	})

	r.Route("/api/Products", func(r chi.Router) {
		r.Get("/GetAllProducts", s.listProducts)
		r.Get("/GetProductBy/{id}", s.getProduct)
		r.Get("/GetProductsByCategoryId/{categoryId}", s.productsByCategory)
		r.Post("/CreateProduct", s.createProduct)
		r.Put("/UpdateProductById/{id}", s.updateProduct)
		r.Delete("/DeleteProductById/{id}", s.deleteProduct)
	})

	s.Server = httptest.NewServer(r)
	return s
}

// SeedCategory adds a category directly to the store
func (s *Server) SeedCategory(name string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	cat := models.Category{
		ID:        s.newID("cat"),
		Name:      name,
		CreatedAt: s.tick(),
	}
	s.categories = append(s.categories, cat)
	return cat
}

// SeedProduct adds a product directly to the store
func (s *Server) SeedProduct(name, categoryID string, price float64, currency string) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := models.Product{
		ID:         s.newID("prod"),
		Name:       name,
		CategoryID: categoryID,
		Price:      price,
		Currency:   currency,
		CreatedAt:  s.tick(),
	}
	s.products = append(s.products, p)
	return p
}

// CategoryCount returns the number of stored categories
func (s *Server) CategoryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.categories)
}

// LastRequestID returns the X-Request-ID header of the latest request
func (s *Server) LastRequestID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequestID
}

// ProductCount returns the number of stored products
func (s *Server) ProductCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

func (s *Server) newID(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

// tick advances a deterministic clock so createdAt values are distinct
func (s *Server) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

// --- response envelope helpers ---

type envelope struct {
	StatusCode int    `json:"statusCode"`
	Data       any    `json:"data,omitempty"`
	Message    string `json:"message,omitempty"`
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{StatusCode: status, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{StatusCode: status, Message: message})
}

// --- category handlers ---

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCategories {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Annotate product counts the way the real service does
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	for i := range out {
		count := 0
		for _, p := range s.products {
			if p.CategoryID == out[i].ID {
				count++
			}
		}
		out[i].ProductCount = count
	}

	writeData(w, http.StatusOK, out)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailCategories {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id := chi.URLParam(r, "id")
	for _, cat := range s.categories {
		if cat.ID == id {
			writeData(w, http.StatusOK, cat)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Category not found")
}

func (s *Server) createCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req models.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid category payload")
		return
	}

	cat := models.Category{
		ID:        s.newID("cat"),
		Name:      req.Name,
		CreatedAt: s.tick(),
	}
	s.categories = append(s.categories, cat)
	writeData(w, http.StatusOK, cat)
}

func (s *Server) updateCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req models.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		writeError(w, http.StatusBadRequest, "Invalid category payload")
		return
	}

	id := chi.URLParam(r, "id")
	for i := range s.categories {
		if s.categories[i].ID == id {
			now := s.tick()
			s.categories[i].Name = req.Name
			s.categories[i].UpdatedAt = &now
			writeData(w, http.StatusOK, s.categories[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "Category not found")
}

func (s *Server) deleteCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "id")

	for _, p := range s.products {
		if p.CategoryID == id {
			writeError(w, http.StatusConflict, "Cannot delete category with linked products")
			return
		}
	}

	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			writeData(w, http.StatusOK, id)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Category not found")
}

// --- product handlers ---

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailProducts {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	pageNumber, err1 := strconv.Atoi(r.URL.Query().Get("pageNumber"))
	pageSize, err2 := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if err1 != nil || err2 != nil || pageNumber < 1 || pageSize < 1 {
		writeError(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if start > len(s.products) {
		start = len(s.products)
	}
	if end > len(s.products) {
		end = len(s.products)
	}

	items := make([]models.Product, end-start)
	copy(items, s.products[start:end])

	writeData(w, http.StatusOK, models.Page[models.Product]{
		Items:      items,
		TotalCount: len(s.products),
		PageNumber: pageNumber,
		PageSize:   pageSize,
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailProducts {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	id := chi.URLParam(r, "id")
	for _, p := range s.products {
		if p.ID == id {
			writeData(w, http.StatusOK, p)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Product not found")
}

func (s *Server) productsByCategory(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailProducts {
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	categoryID := chi.URLParam(r, "categoryId")
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	writeData(w, http.StatusOK, out)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.CategoryID == "" {
		writeError(w, http.StatusBadRequest, "Invalid product payload")
		return
	}

	p := models.Product{
		ID:         s.newID("prod"),
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Currency:   req.Currency,
		CreatedAt:  s.tick(),
	}
	s.products = append(s.products, p)
	writeData(w, http.StatusOK, p)
}

func (s *Server) updateProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var req models.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" || req.CategoryID == "" {
		writeError(w, http.StatusBadRequest, "Invalid product payload")
		return
	}

	id := chi.URLParam(r, "id")
	for i := range s.products {
		if s.products[i].ID == id {
			now := s.tick()
			s.products[i].Name = req.Name
			s.products[i].CategoryID = req.CategoryID
			s.products[i].Price = req.Price
			s.products[i].Currency = req.Currency
			s.products[i].UpdatedAt = &now
			writeData(w, http.StatusOK, s.products[i])
			return
		}
	}
	writeError(w, http.StatusNotFound, "Product not found")
}

func (s *Server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := chi.URLParam(r, "id")
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			writeData(w, http.StatusOK, id)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Product not found")
}
