package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/planittesting/jupiter-e2e/internal/logger"
	"github.com/planittesting/jupiter-e2e/internal/models"
	"github.com/planittesting/jupiter-e2e/internal/services"
)

// AddItemRequest is the body of POST /api/cart/items
type AddItemRequest struct {
	ProductID int `json:"productId"`
}

// SetQuantityRequest is the body of PUT /api/cart/items/{productID}
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartResponse summarises the cart after a change
type CartResponse struct {
	Count int    `json:"count"`
	Total string `json:"total"`
}

// CartAPI handles the shop's Buy buttons and the cart page controls
type CartAPI struct {
	cartService services.CartService
}

// NewCartAPI creates the cart API handlers
func NewCartAPI(cartService services.CartService) *CartAPI {
	return &CartAPI{
		cartService: cartService,
	}
}

// AddItem handles POST /api/cart/items
func (h *CartAPI) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.cartService.AddProduct(r.Context(), SessionID(w, r), req.ProductID)
	h.respond(w, r, cart, err)
}

// SetQuantity handles PUT /api/cart/items/{productID}
func (h *CartAPI) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		sendErrorResponse(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	cart, err := h.cartService.SetQuantity(r.Context(), SessionID(w, r), productID, req.Quantity)
	h.respond(w, r, cart, err)
}

// RemoveItem handles DELETE /api/cart/items/{productID}
func (h *CartAPI) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		sendErrorResponse(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	cart, err := h.cartService.SetQuantity(r.Context(), SessionID(w, r), productID, 0)
	h.respond(w, r, cart, err)
}

// Empty handles DELETE /api/cart
func (h *CartAPI) Empty(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartService.EmptyCart(r.Context(), SessionID(w, r))
	h.respond(w, r, cart, err)
}

func (h *CartAPI) respond(w http.ResponseWriter, r *http.Request, cart *models.Cart, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, CartResponse{
			Count: cart.Count(),
			Total: cart.Total().Plain(),
		})
	case errors.Is(err, models.ErrProductNotFound), errors.Is(err, models.ErrItemNotInCart):
		sendErrorResponse(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, models.ErrInvalidQuantity):
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Get(r.Context()).Error("update cart", zap.Error(err))
		sendErrorResponse(w, "Failed to update cart", http.StatusInternalServerError)
	}
}
