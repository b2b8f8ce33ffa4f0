package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/stitchline/storefront/internal/common"
	"github.com/stitchline/storefront/internal/server/products"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "storefront",
		"status":  "ok",
	})
}

// --- auth ---

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	token, err := s.userService.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	token, err := s.userService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "token": token})
}

// --- catalog ---

// productView is the wire shape of a catalog entry. "id" is the public
// sequential catalog identifier; "record_id" is the store record identity
// that removeproduct expects.
type productView struct {
	RecordID  int64     `json:"record_id"`
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Category  string    `json:"category"`
	NewPrice  float64   `json:"new_price"`
	OldPrice  float64   `json:"old_price"`
	Available bool      `json:"available"`
	Date      time.Time `json:"date"`
}

func viewOf(p *products.Product) productView {
	return productView{
		RecordID:  p.ID,
		ID:        p.ItemID,
		Name:      p.Name,
		Image:     p.Image,
		Category:  p.Category,
		NewPrice:  p.NewPrice,
		OldPrice:  p.OldPrice,
		Available: p.Available,
		Date:      p.CreatedAt,
	}
}

func viewsOf(list []*products.Product) []productView {
	views := make([]productView, 0, len(list))
	for _, p := range list {
		views = append(views, viewOf(p))
	}
	return views
}

type addProductRequest struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

func (s *Server) handleAddProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	product := &products.Product{
		Name:     req.Name,
		Image:    req.Image,
		Category: req.Category,
		NewPrice: req.NewPrice,
		OldPrice: req.OldPrice,
	}

	product, err := s.productService.Add(r.Context(), product)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "name": product.Name})
}

type removeProductRequest struct {
	ID int64 `json:"id"`
}

func (s *Server) handleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	var req removeProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	name, err := s.productService.Remove(r.Context(), req.ID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "name": name})
}

func (s *Server) handleAllProducts(w http.ResponseWriter, r *http.Request) {
	list, err := s.productService.All(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewsOf(list))
}

func (s *Server) handleNewCollection(w http.ResponseWriter, r *http.Request) {
	list, err := s.productService.NewCollection(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewsOf(list))
}

func (s *Server) handlePopularInWomen(w http.ResponseWriter, r *http.Request) {
	list, err := s.productService.PopularInWomen(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewsOf(list))
}

// --- uploads ---

const maxUploadMemory = 32 << 20 // 32 MiB

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	file, header, err := r.FormFile("product")
	if err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}
	defer file.Close()

	url, err := s.uploadService.Store(r.Context(), header.Filename, file)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": 1, "image_url": url})
}

// --- cart ---

type cartItemRequest struct {
	ItemID int64 `json:"itemId"`
}

func (s *Server) handleAddToCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.respondError(w, r, common.ErrorMissingToken)
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	cartData, err := s.cartService.Add(r.Context(), userID, req.ItemID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "cartData": cartData})
}

func (s *Server) handleRemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.respondError(w, r, common.ErrorMissingToken)
		return
	}

	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, common.ErrorValidation)
		return
	}

	cartData, err := s.cartService.Remove(r.Context(), userID, req.ItemID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "cartData": cartData})
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		s.respondError(w, r, common.ErrorMissingToken)
		return
	}

	cartData, err := s.cartService.Get(r.Context(), userID)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "cartData": cartData})
}
