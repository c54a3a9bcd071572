package delivery

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront_service/internal/domain"
)

const maxDiagnosticCollections = 10

// MetaHandler serves the static and diagnostic endpoints. None of them have
// side effects.
type MetaHandler struct {
	diag domain.Diagnostics
	log  *logrus.Logger
}

func NewMetaHandler(diag domain.Diagnostics, logger *logrus.Logger) *MetaHandler {
	return &MetaHandler{
		diag: diag,
		log:  logger,
	}
}

func (h *MetaHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Root)
	router.GET("/schema", h.Schema)
	router.GET("/test", h.TestStore)
}

func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"brand": "ANOMIE",
		"sub":   "STANDARD DEVIATION",
	})
}

func (h *MetaHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"schemas": []string{"user", "product", "cartitem"},
	})
}

// TestStore reports best-effort store reachability plus the presence of the
// two store configuration variables.
func (h *MetaHandler) TestStore(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if h.diag != nil {
		response["database"] = "✅ Available"
		if err := h.diag.Ping(c.Request.Context()); err != nil {
			h.log.Warnf("Store ping failed during diagnostics: %v", err)
			response["database"] = "❌ Error: " + truncate(err.Error(), 50)
		} else {
			response["connection_status"] = "Connected"
			if names, err := h.diag.CollectionNames(c.Request.Context()); err != nil {
				h.log.Warnf("Listing collections failed during diagnostics: %v", err)
				response["database"] = "⚠️ Connected but Error: " + truncate(err.Error(), 50)
			} else {
				if len(names) > maxDiagnosticCollections {
					names = names[:maxDiagnosticCollections]
				}
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}
	}

	response["database_url"] = presenceFlag("DATABASE_URL")
	response["database_name"] = presenceFlag("DATABASE_NAME")

	c.JSON(http.StatusOK, response)
}

func presenceFlag(name string) string {
	if os.Getenv(name) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
