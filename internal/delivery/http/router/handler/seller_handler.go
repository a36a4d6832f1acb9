package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"krishihive/internal/delivery/http/middleware"
	"krishihive/internal/delivery/http/response"
	"krishihive/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SellerHandler holds dependencies for seller listing handlers.
type SellerHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewSellerHandler is the constructor for SellerHandler, injected by Fx.
func NewSellerHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *SellerHandler {
	return &SellerHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateProduct publishes a listing from a multipart form. The image part is
// optional; when present it is uploaded before the listing is written.
func (h *SellerHandler) CreateProduct(c echo.Context) error {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "price must be a number")
	}

	quantity, err := strconv.Atoi(c.FormValue("quantity"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "quantity must be an integer")
	}

	input := &usecase.CreateProductInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Category:    c.FormValue("category"),
		Price:       price,
		Quantity:    quantity,
		Unit:        c.FormValue("unit"),
		SellerName:  c.FormValue("seller_name"),
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "image part could not be read")
		}
		defer file.Close()

		input.ImageName = fileHeader.Filename
		input.ImageContentType = fileHeader.Header.Get("Content-Type")
		input.Image = file
	}

	sellerID := middleware.UIDFromContext(c)
	product, err := h.uc.CreateProduct(c.Request().Context(), sellerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Listing published")
}
