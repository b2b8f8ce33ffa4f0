// Package httpapi exposes the storefront over HTTP/JSON. Handlers are thin:
// they decode explicit request structs, call a service and format the
// response; every failure is mapped to the shared error taxonomy.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/stitchline/storefront/internal/logging"
	"github.com/stitchline/storefront/internal/server/cart"
	"github.com/stitchline/storefront/internal/server/products"
	"github.com/stitchline/storefront/internal/server/users"
)

// ImageStore is the asset-upload collaborator: given a blob it returns a
// stable retrievable URL.
type ImageStore interface {
	Store(ctx context.Context, filename string, content io.Reader) (string, error)
}

type Server struct {
	addr   string
	logger logging.Logger

	userService    *users.Service
	productService *products.Service
	cartService    *cart.Service
	uploadService  ImageStore

	jwtSecret []byte

	httpServer *http.Server
}

func NewServer(addr string, logger logging.Logger,
	userService *users.Service, productService *products.Service,
	cartService *cart.Service, uploadService ImageStore,
	secretKey string) *Server {

	s := &Server{
		addr:           addr,
		logger:         logger,
		userService:    userService,
		productService: productService,
		cartService:    cartService,
		uploadService:  uploadService,
		jwtSecret:      []byte(secretKey),
	}

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
	}

	return s
}

// Routes builds the public router. Cart routes require a session token in
// the auth-token header; everything else is anonymous.
func (s *Server) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	r.HandleFunc("/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodPost)

	r.HandleFunc("/addproduct", s.handleAddProduct).Methods(http.MethodPost)
	r.HandleFunc("/removeproduct", s.handleRemoveProduct).Methods(http.MethodPost)
	r.HandleFunc("/allproducts", s.handleAllProducts).Methods(http.MethodGet)
	r.HandleFunc("/newcollection", s.handleNewCollection).Methods(http.MethodGet)
	r.HandleFunc("/popularinwomen", s.handlePopularInWomen).Methods(http.MethodGet)

	r.HandleFunc("/upload", s.handleUpload).Methods(http.MethodPost)

	r.HandleFunc("/addtocart", s.requireUser(s.handleAddToCart)).Methods(http.MethodPost)
	r.HandleFunc("/removefromcart", s.requireUser(s.handleRemoveFromCart)).Methods(http.MethodPost)
	r.HandleFunc("/getcart", s.requireUser(s.handleGetCart)).Methods(http.MethodPost)

	return r
}

// Run serves until the context is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context) error {

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info(ctx, "http server listening", "addr", s.addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
