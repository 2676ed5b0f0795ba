package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobdash-backend/internal/delivery/http/response"
	"go-jobdash-backend/internal/domain"
)

type CacheHandler struct {
	cacheUC domain.CacheUsecase
}

func NewCacheHandler(rg *gin.RouterGroup, cacheUC domain.CacheUsecase) {
	handler := &CacheHandler{cacheUC: cacheUC}

	cache := rg.Group("/cache")
	{
		cache.GET("/status", handler.Status)
		cache.DELETE("", handler.Clear)
	}
}

// Status godoc
// @Summary      Diagnostic cache view
// @Description  Per-key existence, size, validity, age, and expiry. Read-only.
// @Tags         cache
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /cache/status [get]
func (h *CacheHandler) Status(c *gin.Context) {
	response.Success(c, http.StatusOK, "Cache status", h.cacheUC.Status(c))
}

func (h *CacheHandler) Clear(c *gin.Context) {
	h.cacheUC.Clear(c)
	response.Success(c, http.StatusOK, "Cache cleared", nil)
}
