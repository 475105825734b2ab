// ================== internal/features/dashboard/handler.go ==================
package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/harulist/todoapi/internal/features/todos"
	"github.com/harulist/todoapi/internal/pkg/response"
)

type Handler struct {
	repo *todos.Repository
}

func NewHandler(repo *todos.Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) collection(c *gin.Context) ([]todos.Todo, bool) {
	items, err := h.repo.List()
	if err != nil {
		response.InternalServerError(c, "Failed to load todos")
		return nil, false
	}
	return items, true
}

// Overview godoc
// @Summary Dashboard overview
// @Description Summary counts, distributions, due buckets, and recent activity
// @Tags dashboard
// @Produce json
// @Success 200 {object} Overview
// @Router /dashboard [get]
func (h *Handler) Overview(c *gin.Context) {
	items, ok := h.collection(c)
	if !ok {
		return
	}
	response.OK(c, BuildOverview(items, todos.Today()))
}

// CompletionTrend godoc
// @Summary 30-day completion trend
// @Tags dashboard
// @Produce json
// @Success 200 {array} TrendPoint
// @Router /dashboard/completion-trend [get]
func (h *Handler) CompletionTrend(c *gin.Context) {
	items, ok := h.collection(c)
	if !ok {
		return
	}
	response.OK(c, CompletionTrend(items, todos.Today()))
}

// PriorityCompletion godoc
// @Summary Completion rate per priority
// @Tags dashboard
// @Produce json
// @Success 200 {array} PriorityCompletion
// @Router /dashboard/priority-completion [get]
func (h *Handler) PriorityCompletion(c *gin.Context) {
	items, ok := h.collection(c)
	if !ok {
		return
	}
	response.OK(c, PriorityCompletionRates(items))
}

// MonthlyStats godoc
// @Summary Monthly completion rollups
// @Tags dashboard
// @Produce json
// @Success 200 {array} MonthlyStat
// @Router /dashboard/monthly-stats [get]
func (h *Handler) MonthlyStats(c *gin.Context) {
	items, ok := h.collection(c)
	if !ok {
		return
	}
	response.OK(c, MonthlyStats(items))
}

// DueAlerts godoc
// @Summary Due-date alert buckets
// @Tags dashboard
// @Produce json
// @Success 200 {object} DueAlerts
// @Router /dashboard/due-alerts [get]
func (h *Handler) DueAlerts(c *gin.Context) {
	items, ok := h.collection(c)
	if !ok {
		return
	}
	response.OK(c, BuildDueAlerts(items, todos.Today()))
}
