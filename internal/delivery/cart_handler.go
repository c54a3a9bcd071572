package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
	"storefront_service/internal/usecase"
)

type CartHandler struct {
	useCase usecase.CartUseCase
	log     *logrus.Logger
}

func NewCartHandler(uc usecase.CartUseCase, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.POST("/items", h.AddItem)
		cart.GET("/items", h.ListItems)
	}
}

type addCartItemRequest struct {
	CartID    string `json:"cart_id" binding:"required"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=0"`
	Size      string `json:"size"`
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for add cart item: %v", err)
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	item := &domain.CartItem{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Size:      req.Size,
	}

	id, err := h.useCase.AddItem(c.Request.Context(), item)
	if err != nil {
		h.log.Errorf("Failed to add item to cart '%s': %v", req.CartID, err)
		respondError(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Cart item created successfully: ID %s, CartID %s", id, req.CartID)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CartHandler) ListItems(c *gin.Context) {
	cartID := c.Query("cart_id")
	if cartID == "" {
		// Rejected before any store access.
		h.log.Warn("Missing required cart_id query parameter")
		respondError(c, http.StatusBadRequest, "cart_id query parameter is required")
		return
	}

	items, err := h.useCase.ListItems(c.Request.Context(), cartID)
	if err != nil {
		h.log.Errorf("Failed to list items for cart '%s': %v", cartID, err)
		respondError(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Retrieved %d items for cart %s", len(items), cartID)
	if items == nil {
		items = []domain.CartItem{}
	}
	c.JSON(http.StatusOK, items)
}
