package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-jobdash-backend/internal/delivery/http/response"
	"go-jobdash-backend/internal/domain"
)

type ActionHandler struct {
	actionUC domain.ActionUsecase
}

func NewActionHandler(rg *gin.RouterGroup, actionUC domain.ActionUsecase) {
	handler := &ActionHandler{actionUC: actionUC}

	actions := rg.Group("/actions")
	{
		actions.POST("/auto-matching", handler.AutoMatching)
		actions.POST("/apply", handler.Apply)
		actions.POST("/scrape", handler.Scrape)
	}
}

// AutoMatching godoc
// @Summary      Run the remote auto-matching pass
// @Tags         actions
// @Param        force  query  bool  false  "Bypass the cached result"
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /actions/auto-matching [post]
func (h *ActionHandler) AutoMatching(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	result, cached, err := h.actionUC.RunAutoMatching(c, force)
	if err != nil {
		c.Error(err)
		return
	}
	if cached {
		response.Cached(c, http.StatusOK, "Auto-matching result (cached)", result)
		return
	}
	response.Success(c, http.StatusOK, "Auto-matching result", result)
}

func (h *ActionHandler) Apply(c *gin.Context) {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	result, cached, err := h.actionUC.ApplySaraminJobs(c, force)
	if err != nil {
		c.Error(err)
		return
	}
	if cached {
		response.Cached(c, http.StatusOK, "Apply result (cached)", result)
		return
	}
	response.Success(c, http.StatusOK, "Apply result", result)
}

func (h *ActionHandler) Scrape(c *gin.Context) {
	result, err := h.actionUC.TriggerScrape(c)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Scrape triggered", result)
}
