package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/harulist/todoapi/internal/features/dashboard"
	"github.com/harulist/todoapi/internal/features/todos"
	"github.com/harulist/todoapi/internal/storage"
	"github.com/harulist/todoapi/internal/store"
)

// SetupRoutes wires the document store, blob storage, and all feature
// routes onto the router.
func SetupRoutes(router *gin.Engine, st *store.Store, files *storage.Service) *todos.Repository {
	repo := todos.NewRepository(st, files)

	todos.RegisterRoutes(router, repo)
	dashboard.RegisterRoutes(router, repo)

	return repo
}
