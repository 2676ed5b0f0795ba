package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobdash-backend/internal/delivery/http/response"
	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/internal/normalizer"
	"go-jobdash-backend/pkg/apperror"
)

type BookmarkHandler struct {
	bookmarkUC domain.BookmarkUsecase
}

func NewBookmarkHandler(rg *gin.RouterGroup, bookmarkUC domain.BookmarkUsecase) {
	handler := &BookmarkHandler{bookmarkUC: bookmarkUC}

	bookmarks := rg.Group("/bookmarks")
	{
		bookmarks.GET("", handler.List)
		bookmarks.POST("", handler.Add)
		bookmarks.DELETE("", handler.Remove)
		bookmarks.DELETE("/all", handler.Clear)
	}
}

func (h *BookmarkHandler) List(c *gin.Context) {
	marks := h.bookmarkUC.List(c)
	response.Success(c, http.StatusOK, "Bookmarks", gin.H{
		"bookmarks": marks,
		"count":     len(marks),
	})
}

// Add accepts the posting in whatever shape the frontend has it; the
// normalizer reconciles the field naming before the bookmark is stored.
func (h *BookmarkHandler) Add(c *gin.Context) {
	var raw domain.RawJobPayload
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	mark, err := h.bookmarkUC.Add(c, normalizer.Normalize(raw))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Bookmark added", mark)
}

func (h *BookmarkHandler) Remove(c *gin.Context) {
	url := c.Query("url")
	if url == "" {
		c.Error(apperror.BadRequest("url query parameter is required"))
		return
	}

	if err := h.bookmarkUC.Remove(c, url); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.Error(apperror.NotFound("bookmark not found"))
			return
		}
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Bookmark removed", nil)
}

func (h *BookmarkHandler) Clear(c *gin.Context) {
	h.bookmarkUC.Clear(c)
	response.Success(c, http.StatusOK, "Bookmarks cleared", nil)
}
