package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
	"storefront_service/internal/usecase"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	router.POST("/products", h.CreateProduct)
	router.GET("/products", h.ListProducts)
	router.POST("/seed", h.SeedProducts)
}

// createProductRequest is the product payload without an id. Price binds
// through a pointer so a zero price is accepted while an absent one is not.
type createProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image"`
	InStock     *bool    `json:"in_stock"`
	Sizes       []string `json:"sizes"`
}

func (r *createProductRequest) toDomain() *domain.Product {
	inStock := true
	if r.InStock != nil {
		inStock = *r.InStock
	}
	return &domain.Product{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Image:       r.Image,
		InStock:     inStock,
		Sizes:       r.Sizes,
	}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		respondError(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.useCase.CreateProduct(c.Request.Context(), req.toDomain())
	if err != nil {
		h.log.Errorf("Failed to create product '%s': %v", req.Title, err)
		respondError(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Product created successfully: ID %s, Title %s", id, req.Title)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(usecase.DefaultListLimit))
	category := c.Query("category")

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit <= 0 {
		h.log.Warnf("Invalid limit parameter '%s', using default %d", limitStr, usecase.DefaultListLimit)
		limit = usecase.DefaultListLimit
	}

	products, err := h.useCase.ListProducts(c.Request.Context(), category, limit)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		respondError(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Retrieved %d products", len(products))
	if products == nil {
		products = []domain.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) SeedProducts(c *gin.Context) {
	inserted, err := h.useCase.SeedProducts(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to seed products: %v", err)
		respondError(c, mapErrorToStatus(err), err.Error())
		return
	}

	h.log.Infof("Seeded %d products", len(inserted))
	c.JSON(http.StatusOK, gin.H{
		"inserted": inserted,
		"count":    len(inserted),
	})
}
