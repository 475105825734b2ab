package todos

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/harulist/todoapi/internal/pkg/response"
	apperrors "github.com/harulist/todoapi/pkg/errors"
)

func respondSubtaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrTodoNotFound):
		response.NotFound(c, "To-Do item not found")
	case errors.Is(err, apperrors.ErrSubtaskNotFound):
		response.NotFound(c, "Subtask not found")
	default:
		response.InternalServerError(c, "Failed to save todos")
	}
}

// ListSubtasks godoc
// @Summary List subtasks of a todo
// @Tags subtasks
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {array} SubTask
// @Failure 404 {object} response.DetailResponse
// @Router /todos/{id}/subtasks [get]
func (h *Handler) ListSubtasks(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	subs, err := h.repo.Subtasks(todoID)
	if err != nil {
		respondSubtaskError(c, err)
		return
	}
	response.OK(c, subs)
}

// AddSubtask godoc
// @Summary Add a subtask
// @Description Appends the subtask to the todo's checklist; the response
// echoes the subtask as submitted.
// @Tags subtasks
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param request body SubTask true "Subtask to add"
// @Success 200 {object} SubTask
// @Failure 404 {object} response.DetailResponse
// @Failure 422 {object} response.DetailResponse
// @Router /todos/{id}/subtasks [post]
func (h *Handler) AddSubtask(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Failed to read request body")
		return
	}
	sub, err := ParseSubTask(body, true)
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	if err := h.repo.AddSubtask(todoID, sub); err != nil {
		respondSubtaskError(c, err)
		return
	}
	response.OK(c, sub)
}

// UpdateSubtask godoc
// @Summary Update a subtask
// @Description Replaces the subtask's fields; its id always stays the path
// id regardless of what the body carried.
// @Tags subtasks
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param subtaskId path int true "Subtask id"
// @Param request body SubTask true "Replacement fields"
// @Success 200 {object} SubTask
// @Failure 404 {object} response.DetailResponse
// @Failure 422 {object} response.DetailResponse
// @Router /todos/{id}/subtasks/{subtaskId} [put]
func (h *Handler) UpdateSubtask(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	subtaskID, ok := pathID(c, "subtaskId")
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "Failed to read request body")
		return
	}
	sub, err := ParseSubTask(body, false)
	if err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	stored, err := h.repo.UpdateSubtask(todoID, subtaskID, sub)
	if err != nil {
		respondSubtaskError(c, err)
		return
	}
	response.OK(c, stored)
}

// DeleteSubtask godoc
// @Summary Delete a subtask
// @Tags subtasks
// @Produce json
// @Param id path int true "Todo id"
// @Param subtaskId path int true "Subtask id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.DetailResponse
// @Router /todos/{id}/subtasks/{subtaskId} [delete]
func (h *Handler) DeleteSubtask(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}
	subtaskID, ok := pathID(c, "subtaskId")
	if !ok {
		return
	}

	if err := h.repo.DeleteSubtask(todoID, subtaskID); err != nil {
		respondSubtaskError(c, err)
		return
	}
	response.Message(c, "Subtask deleted")
}
