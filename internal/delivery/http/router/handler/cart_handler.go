package handler

import (
	"log/slog"
	"net/http"

	"krishihive/internal/delivery/http/middleware"
	"krishihive/internal/delivery/http/response"
	"krishihive/internal/domain/entity"
	"krishihive/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// addItemInput is the request body for adding a cart line.
type addItemInput struct {
	ID       string  `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
	Unit     string  `json:"unit"`
	Seller   string  `json:"seller"`
}

// updateQuantityInput is the request body for changing a line's quantity.
type updateQuantityInput struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

// GetCart returns the caller's current cart state.
func (h *CartHandler) GetCart(c echo.Context) error {
	uid := middleware.UIDFromContext(c)

	return response.Success(c, http.StatusOK, h.uc.Get(uid), "Cart retrieved")
}

// AddItem adds a product to the cart, merging quantities for repeat adds.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input addItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	uid := middleware.UIDFromContext(c)
	state, err := h.uc.Dispatch(c.Request().Context(), uid, entity.AddItem{Item: entity.CartItem{
		ID:       input.ID,
		Name:     input.Name,
		Price:    input.Price,
		Quantity: input.Quantity,
		Unit:     input.Unit,
		Seller:   input.Seller,
	}})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Item added")
}

// UpdateQuantity replaces the quantity of an existing cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var input updateQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	uid := middleware.UIDFromContext(c)
	state, err := h.uc.Dispatch(c.Request().Context(), uid, entity.UpdateQuantity{
		ID:       c.Param("id"),
		Quantity: input.Quantity,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Quantity updated")
}

// RemoveItem deletes a cart line. Removing an absent item is a no-op.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid := middleware.UIDFromContext(c)
	state, err := h.uc.Dispatch(c.Request().Context(), uid, entity.RemoveItem{ID: c.Param("id")})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Item removed")
}

// ClearCart empties the cart without touching the saved document.
func (h *CartHandler) ClearCart(c echo.Context) error {
	uid := middleware.UIDFromContext(c)
	state, err := h.uc.Dispatch(c.Request().Context(), uid, entity.ClearCart{})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, state, "Cart cleared")
}

// SaveCart persists the current cart to the caller's cart document.
func (h *CartHandler) SaveCart(c echo.Context) error {
	uid := middleware.UIDFromContext(c)
	if err := h.uc.Save(c.Request().Context(), uid); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.uc.Get(uid), "Cart saved")
}

// ListOrders returns the caller's past orders, newest first.
func (h *CartHandler) ListOrders(c echo.Context) error {
	uid := middleware.UIDFromContext(c)
	orders, err := h.uc.ListOrders(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "Orders retrieved")
}

// Checkout places an order from the current cart and clears it.
func (h *CartHandler) Checkout(c echo.Context) error {
	uid := middleware.UIDFromContext(c)
	output, err := h.uc.Checkout(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Order placed")
}
