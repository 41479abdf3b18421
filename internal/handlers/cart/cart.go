package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gomarketplace/internal/cart"
	"gomarketplace/internal/contextutil"
	myErr "gomarketplace/internal/types/errors"
	"gomarketplace/internal/types/product"
)

// CartHandler ручки корзины
type CartHandler struct {
	Logger *zap.SugaredLogger
	Store  cart.CartStore
}

// NewCartHandler конструктор. Без корзины хендлер собрать нельзя:
// это ошибка сборки приложения, а не данных
func NewCartHandler(log *zap.SugaredLogger, store cart.CartStore) (*CartHandler, error) {
	if store == nil {
		return nil, myErr.ErrNoProvider
	}
	if s, ok := store.(*cart.Store); ok && s == nil {
		return nil, myErr.ErrNoProvider
	}

	return &CartHandler{
		Logger: log,
		Store:  store,
	}, nil
}

// GetCart - GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r, http.StatusOK, h.Store.Products())
}

// AddToCart - POST /api/cart/items
// Тело запроса: {"id": "...", "title": "...", "image_url": "...", "price": 10}
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item product.Descriptor
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		myErr.SendErrorTo(w, myErr.ErrInvalidJSONPayload, http.StatusBadRequest, h.Logger)
		return
	}

	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return
	}
	if item.Price < 0 {
		myErr.SendErrorTo(w, myErr.ErrInvalidPrice, http.StatusBadRequest, h.Logger)
		return
	}

	products := h.Store.AddToCart(item)
	h.logWithRequest(r).Infof("added product %s to cart", item.ID)

	h.writeCart(w, r, http.StatusCreated, products)
}

// Increment - POST /api/cart/items/{id}/increment
func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	h.writeCart(w, r, http.StatusOK, h.Store.Increment(id))
}

// Decrement - POST /api/cart/items/{id}/decrement
func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	h.writeCart(w, r, http.StatusOK, h.Store.Decrement(id))
}

// Ready - GET /api/cart/ready, загружена ли корзина из хранилища
func (h *CartHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ready := false
	select {
	case <-h.Store.Ready():
		ready = true
	default:
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]bool{"ready": ready}); err != nil {
		h.logWithRequest(r).Warnw("error writing response", "err", err)
	}
}

func (h *CartHandler) productID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(mux.Vars(r)["id"])
	if id == "" {
		myErr.SendErrorTo(w, myErr.ErrBadID, http.StatusBadRequest, h.Logger)
		return "", false
	}
	return id, true
}

func (h *CartHandler) writeCart(w http.ResponseWriter, r *http.Request, status int, products []product.Product) {
	if products == nil {
		products = []product.Product{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(products); err != nil {
		h.logWithRequest(r).Warnw("error writing response", "err", err)
	}
}

func (h *CartHandler) logWithRequest(r *http.Request) *zap.SugaredLogger {
	if requestID, ok := contextutil.GetRequestIDFromContext(r.Context()); ok {
		return h.Logger.With("request_id", requestID)
	}
	return h.Logger
}
