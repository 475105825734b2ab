package todos

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/harulist/todoapi/internal/pkg/response"
	apperrors "github.com/harulist/todoapi/pkg/errors"
)

// UploadAttachment godoc
// @Summary Upload a file attachment
// @Description Stores the bytes under a generated name, then records the metadata
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Todo id"
// @Param file formData file true "File to upload"
// @Success 200 {object} Attachment
// @Failure 404 {object} response.DetailResponse
// @Failure 500 {object} response.DetailResponse
// @Router /todos/{id}/attachments [post]
func (h *Handler) UploadAttachment(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.ValidationError(c, "file is required")
		return
	}
	defer file.Close()

	att, err := h.repo.AddAttachment(todoID, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTodoNotFound):
			response.NotFound(c, "To-Do item not found")
		case errors.Is(err, apperrors.ErrStorageWrite):
			response.InternalServerError(c, "Failed to upload file")
		default:
			response.InternalServerError(c, "Failed to save todos")
		}
		return
	}
	response.OK(c, att)
}

// ListAttachments godoc
// @Summary List attachment metadata of a todo
// @Tags attachments
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {array} Attachment
// @Failure 404 {object} response.DetailResponse
// @Router /todos/{id}/attachments [get]
func (h *Handler) ListAttachments(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	atts, err := h.repo.Attachments(todoID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTodoNotFound) {
			response.NotFound(c, "To-Do item not found")
			return
		}
		response.InternalServerError(c, "Failed to load todos")
		return
	}
	response.OK(c, atts)
}

// DownloadAttachment godoc
// @Summary Download attachment bytes
// @Description Streams the stored bytes under the original filename
// @Tags attachments
// @Produce octet-stream
// @Param id path int true "Todo id"
// @Param attachmentId path string true "Attachment id"
// @Success 200 {file} binary
// @Failure 404 {object} response.DetailResponse
// @Router /todos/{id}/attachments/{attachmentId}/download [get]
func (h *Handler) DownloadAttachment(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	att, path, err := h.repo.ResolveAttachmentFile(todoID, c.Param("attachmentId"))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTodoNotFound):
			response.NotFound(c, "To-Do item not found")
		case errors.Is(err, apperrors.ErrAttachmentNotFound):
			response.NotFound(c, "Attachment not found in To-Do item")
		case errors.Is(err, apperrors.ErrAttachmentFileNotFound):
			response.NotFound(c, "Attachment file not found on server")
		default:
			response.InternalServerError(c, "Failed to load todos")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", att.OriginalFilename))
	c.Header("Content-Type", att.FileType)
	c.File(path)
}

// DeleteAttachment godoc
// @Summary Delete an attachment
// @Description Removes the metadata record and the stored blob
// @Tags attachments
// @Produce json
// @Param id path int true "Todo id"
// @Param attachmentId path string true "Attachment id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.DetailResponse
// @Router /todos/{id}/attachments/{attachmentId} [delete]
func (h *Handler) DeleteAttachment(c *gin.Context) {
	todoID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.repo.DeleteAttachment(todoID, c.Param("attachmentId")); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrTodoNotFound):
			response.NotFound(c, "To-Do item not found")
		case errors.Is(err, apperrors.ErrAttachmentNotFound):
			response.NotFound(c, "Attachment not found")
		default:
			response.InternalServerError(c, "Failed to save todos")
		}
		return
	}
	response.Message(c, "Attachment deleted successfully")
}
