// ================== internal/features/todos/routes.go ==================
package todos

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine, repo *Repository) {
	handler := NewHandler(repo)

	todos := router.Group("/todos")
	{
		todos.GET("", handler.List)
		todos.POST("", handler.Create)
		todos.GET("/search", handler.Search)
		todos.GET("/stats", handler.Stats)
		todos.GET("/priority/:priority", handler.ByPriority)
		todos.PUT("/:id", handler.Update)
		todos.DELETE("/:id", handler.Delete)

		todos.GET("/:id/subtasks", handler.ListSubtasks)
		todos.POST("/:id/subtasks", handler.AddSubtask)
		todos.PUT("/:id/subtasks/:subtaskId", handler.UpdateSubtask)
		todos.DELETE("/:id/subtasks/:subtaskId", handler.DeleteSubtask)

		todos.POST("/:id/attachments", handler.UploadAttachment)
		todos.GET("/:id/attachments", handler.ListAttachments)
		todos.GET("/:id/attachments/:attachmentId/download", handler.DownloadAttachment)
		todos.DELETE("/:id/attachments/:attachmentId", handler.DeleteAttachment)
	}

	router.DELETE("/reset", handler.Reset)
}
