// ================== internal/features/dashboard/routes.go ==================
package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/harulist/todoapi/internal/features/todos"
)

func RegisterRoutes(router *gin.Engine, repo *todos.Repository) {
	handler := NewHandler(repo)

	board := router.Group("/dashboard")
	{
		board.GET("", handler.Overview)
		board.GET("/completion-trend", handler.CompletionTrend)
		board.GET("/priority-completion", handler.PriorityCompletion)
		board.GET("/monthly-stats", handler.MonthlyStats)
		board.GET("/due-alerts", handler.DueAlerts)
	}
}
