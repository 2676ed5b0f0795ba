package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobdash-backend/internal/delivery/http/response"
	"go-jobdash-backend/internal/domain"
	"go-jobdash-backend/pkg/apperror"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(rg *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("/refresh", handler.Refresh)
		jobs.GET("/recommended", handler.Recommended)
		jobs.PATCH("/filters", handler.UpdateFilters)
		jobs.POST("/filters/reset", handler.ResetFilters)
		jobs.PUT("/sort", handler.SetSort)
		jobs.POST("/load-more", handler.LoadMore)
		jobs.POST("/scroll", handler.Scroll)
	}
}

// List godoc
// @Summary      Current job window
// @Description  Returns the filtered, sorted, windowed job list
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, err := h.jobUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list", page)
}

// Refresh godoc
// @Summary      Refresh from the full scraped list
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/refresh [post]
func (h *JobHandler) Refresh(c *gin.Context) {
	if err := h.jobUC.RefreshAllJobs(c); err != nil {
		c.Error(err)
		return
	}
	page, err := h.jobUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job list refreshed", page)
}

// Recommended godoc
// @Summary      Refresh from the recommendation list
// @Description  Serves a fresh-enough cached copy unless force=true
// @Tags         jobs
// @Param        force  query  bool  false  "Bypass the cache"
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /jobs/recommended [get]
func (h *JobHandler) Recommended(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	if err := h.jobUC.RefreshRecommended(c, force); err != nil {
		c.Error(err)
		return
	}
	page, err := h.jobUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Recommended jobs", page)
}

func (h *JobHandler) UpdateFilters(c *gin.Context) {
	var patch domain.CriteriaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	page, err := h.jobUC.UpdateCriteria(c, patch)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Filters updated", page)
}

func (h *JobHandler) ResetFilters(c *gin.Context) {
	page, err := h.jobUC.ResetCriteria(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Filters reset", page)
}

type setSortRequest struct {
	Order string `json:"order" binding:"required"`
}

func (h *JobHandler) SetSort(c *gin.Context) {
	var req setSortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.jobUC.SetSortOrder(c, domain.SortOrder(req.Order)); err != nil {
		c.Error(err)
		return
	}
	page, err := h.jobUC.List(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Sort order updated", page)
}

func (h *JobHandler) LoadMore(c *gin.Context) {
	page, err := h.jobUC.LoadMore(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Window extended", page)
}

type scrollRequest struct {
	Offset int `json:"offset" binding:"gte=0"`
	// Distance from the load-more sentinel to the viewport; -1 when the
	// sentinel is not mounted.
	SentinelDistance int `json:"sentinel_distance"`
}

func (h *JobHandler) Scroll(c *gin.Context) {
	var req scrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	h.jobUC.TrackScroll(c, req.Offset, req.SentinelDistance)
	response.Success(c, http.StatusAccepted, "Scroll tracked", nil)
}
