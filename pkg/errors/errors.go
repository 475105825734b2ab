// ================== pkg/errors/errors.go =================
package errors

import "errors"

// Sentinel errors shared by the repository and the HTTP layer. The four
// not-found variants are distinct on purpose: the API reports each with its
// own message.
var (
	ErrTodoNotFound           = errors.New("To-Do item not found")
	ErrSubtaskNotFound        = errors.New("Subtask not found")
	ErrAttachmentNotFound     = errors.New("Attachment not found")
	ErrAttachmentFileNotFound = errors.New("Attachment file not found on server")
	ErrValidation             = errors.New("validation failed")
	ErrStorageWrite           = errors.New("storage write failed")
)
