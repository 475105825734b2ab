// ================== internal/features/todos/handler.go ==================
package todos

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/harulist/todoapi/internal/pkg/response"
	apperrors "github.com/harulist/todoapi/pkg/errors"
)

type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		response.ValidationError(c, name+" must be an integer")
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List all todos
// @Description Returns the full collection in storage order
// @Tags todos
// @Produce json
// @Success 200 {array} Todo
// @Router /todos [get]
func (h *Handler) List(c *gin.Context) {
	items, err := h.repo.List()
	if err != nil {
		response.InternalServerError(c, "Failed to load todos")
		return
	}
	response.OK(c, items)
}

// Create godoc
// @Summary Create a todo
// @Description Appends the item as given; ids are caller-supplied
// @Tags todos
// @Accept json
// @Produce json
// @Param request body Todo true "Todo to create"
// @Success 200 {object} Todo
// @Failure 422 {object} response.DetailResponse
// @Router /todos [post]
func (h *Handler) Create(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Failed to read request body")
		return
	}

	todo, err := ParseCreateTodo(body)
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	created, err := h.repo.Create(todo)
	if err != nil {
		response.InternalServerError(c, "Failed to save todo")
		return
	}
	response.OK(c, created)
}

// Update godoc
// @Summary Update a todo
// @Description Partial update: only fields present in the body are applied.
// The response echoes the submitted view of the item.
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param request body Todo true "Fields to update"
// @Success 200 {object} Todo
// @Failure 404 {object} response.DetailResponse
// @Failure 422 {object} response.DetailResponse
// @Router /todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Failed to read request body")
		return
	}

	patch, echo, err := ParseUpdateTodo(id, body)
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := h.repo.Update(id, patch); err != nil {
		if errors.Is(err, apperrors.ErrTodoNotFound) {
			response.NotFound(c, "To-Do item not found")
			return
		}
		response.InternalServerError(c, "Failed to save todo")
		return
	}
	response.OK(c, echo)
}

// Delete godoc
// @Summary Delete a todo
// @Description Removes every item with the id; succeeds whether or not one existed
// @Tags todos
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} response.MessageResponse
// @Router /todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.Delete(id); err != nil {
		response.InternalServerError(c, "Failed to save todos")
		return
	}
	response.Message(c, "To-Do item deleted")
}

// Reset godoc
// @Summary Clear the collection
// @Tags todos
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router /reset [delete]
func (h *Handler) Reset(c *gin.Context) {
	if err := h.repo.Reset(); err != nil {
		response.InternalServerError(c, "Failed to reset todos")
		return
	}
	response.Message(c, "Reset complete")
}

// Search godoc
// @Summary Search todos by title
// @Description Case-insensitive substring match; empty query matches everything
// @Tags todos
// @Produce json
// @Param query query string false "Substring to match against titles"
// @Success 200 {array} Todo
// @Router /todos/search [get]
func (h *Handler) Search(c *gin.Context) {
	items, err := h.repo.List()
	if err != nil {
		response.InternalServerError(c, "Failed to load todos")
		return
	}
	response.OK(c, Search(items, c.Query("query")))
}

// Stats godoc
// @Summary Completion counts
// @Tags todos
// @Produce json
// @Success 200 {object} StatsResult
// @Router /todos/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	items, err := h.repo.List()
	if err != nil {
		response.InternalServerError(c, "Failed to load todos")
		return
	}
	response.OK(c, Stats(items))
}

// ByPriority godoc
// @Summary Filter todos by priority label
// @Tags todos
// @Produce json
// @Param priority path string true "Priority label" Enums(높음, 중간, 낮음)
// @Success 200 {array} Todo
// @Failure 422 {object} response.DetailResponse
// @Router /todos/priority/{priority} [get]
func (h *Handler) ByPriority(c *gin.Context) {
	priority := Priority(c.Param("priority"))
	if !priority.Valid() {
		response.ValidationError(c, "priority must be one of 높음, 중간, 낮음")
		return
	}

	items, err := h.repo.List()
	if err != nil {
		response.InternalServerError(c, "Failed to load todos")
		return
	}
	response.OK(c, ByPriority(items, priority))
}
