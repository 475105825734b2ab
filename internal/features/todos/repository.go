package todos

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/harulist/todoapi/internal/storage"
	"github.com/harulist/todoapi/internal/store"
	apperrors "github.com/harulist/todoapi/pkg/errors"
)

// Repository runs every operation as a full load → mutate → save cycle over
// the document store. Mutations hold the write lock for the whole cycle so
// two in-flight requests can never clobber each other's save.
type Repository struct {
	mu    sync.RWMutex
	store *store.Store
	files *storage.Service
}

func NewRepository(st *store.Store, files *storage.Service) *Repository {
	return &Repository{store: st, files: files}
}

func (r *Repository) load() ([]Todo, error) {
	items := []Todo{}
	if err := r.store.Load(&items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].normalize()
	}
	return items, nil
}

// List returns the full collection in storage order.
func (r *Repository) List() ([]Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// Create appends the item as given. Ids are caller-supplied and collisions
// are not checked; lookups are first-match by contract.
func (r *Repository) Create(todo Todo) (Todo, error) {
	todo.normalize()

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return Todo{}, err
	}
	items = append(items, todo)
	if err := r.store.Save(items); err != nil {
		return Todo{}, err
	}
	return todo, nil
}

// Update applies the patch to the first item with a matching id. Fields the
// patch does not carry are left untouched.
func (r *Repository) Update(id int, patch Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == id {
			patch.apply(&items[i])
			return r.store.Save(items)
		}
	}
	return apperrors.ErrTodoNotFound
}

// Delete removes every item with the matching id and succeeds whether or
// not a match existed.
func (r *Repository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, t := range items {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return r.store.Save(kept)
}

// Reset replaces the entire collection with an empty one.
func (r *Repository) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Save([]Todo{})
}

// Subtasks returns the subtask sequence of one todo.
func (r *Repository) Subtasks(todoID int) ([]SubTask, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		if t.ID == todoID {
			return t.Subtasks, nil
		}
	}
	return nil, apperrors.ErrTodoNotFound
}

// AddSubtask appends the subtask to the todo's sequence.
func (r *Repository) AddSubtask(todoID int, sub SubTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == todoID {
			items[i].Subtasks = append(items[i].Subtasks, sub)
			return r.store.Save(items)
		}
	}
	return apperrors.ErrTodoNotFound
}

// UpdateSubtask replaces the matching entry wholesale, forcing its id to
// stay the original subtask id regardless of what the patch carried. The
// stored subtask is returned.
func (r *Repository) UpdateSubtask(todoID, subtaskID int, sub SubTask) (SubTask, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return SubTask{}, err
	}
	for i := range items {
		if items[i].ID != todoID {
			continue
		}
		for j := range items[i].Subtasks {
			if items[i].Subtasks[j].ID == subtaskID {
				sub.ID = subtaskID
				items[i].Subtasks[j] = sub
				if err := r.store.Save(items); err != nil {
					return SubTask{}, err
				}
				return sub, nil
			}
		}
		return SubTask{}, apperrors.ErrSubtaskNotFound
	}
	return SubTask{}, apperrors.ErrTodoNotFound
}

// DeleteSubtask removes the subtask; unlike todo deletion this reports
// not-found when nothing matched.
func (r *Repository) DeleteSubtask(todoID, subtaskID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID != todoID {
			continue
		}
		kept := items[i].Subtasks[:0]
		for _, st := range items[i].Subtasks {
			if st.ID != subtaskID {
				kept = append(kept, st)
			}
		}
		if len(kept) == len(items[i].Subtasks) {
			return apperrors.ErrSubtaskNotFound
		}
		items[i].Subtasks = kept
		return r.store.Save(items)
	}
	return apperrors.ErrTodoNotFound
}

// AddAttachment streams the blob to storage, then commits the metadata
// record. Bytes are written first so a failed upload never leaves a record
// pointing at nothing.
func (r *Repository) AddAttachment(todoID int, src io.Reader, originalName, mimeType string) (Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return Attachment{}, err
	}
	for i := range items {
		if items[i].ID != todoID {
			continue
		}
		storedName, err := r.files.Save(src, originalName)
		if err != nil {
			return Attachment{}, fmt.Errorf("%w: %v", apperrors.ErrStorageWrite, err)
		}
		att := Attachment{
			ID:               uuid.NewString(),
			Filename:         storedName,
			OriginalFilename: originalName,
			FileType:         mimeType,
		}
		items[i].Attachments = append(items[i].Attachments, att)
		if err := r.store.Save(items); err != nil {
			r.files.Remove(storedName)
			return Attachment{}, err
		}
		return att, nil
	}
	return Attachment{}, apperrors.ErrTodoNotFound
}

// Attachments returns the metadata records of one todo.
func (r *Repository) Attachments(todoID int) ([]Attachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, t := range items {
		if t.ID == todoID {
			return t.Attachments, nil
		}
	}
	return nil, apperrors.ErrTodoNotFound
}

// ResolveAttachmentFile walks the not-found cascade for downloads: todo,
// then attachment within the todo, then the blob on disk. On success it
// returns the metadata and the on-disk path.
func (r *Repository) ResolveAttachmentFile(todoID int, attachmentID string) (Attachment, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, err := r.load()
	if err != nil {
		return Attachment{}, "", err
	}
	for _, t := range items {
		if t.ID != todoID {
			continue
		}
		for _, att := range t.Attachments {
			if att.ID == attachmentID {
				if !r.files.Exists(att.Filename) {
					return Attachment{}, "", apperrors.ErrAttachmentFileNotFound
				}
				return att, r.files.Path(att.Filename), nil
			}
		}
		return Attachment{}, "", apperrors.ErrAttachmentNotFound
	}
	return Attachment{}, "", apperrors.ErrTodoNotFound
}

// DeleteAttachment removes the metadata record and the underlying blob. A
// blob that is already gone does not fail the deletion.
func (r *Repository) DeleteAttachment(todoID int, attachmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := r.load()
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID != todoID {
			continue
		}
		for j, att := range items[i].Attachments {
			if att.ID == attachmentID {
				items[i].Attachments = append(items[i].Attachments[:j], items[i].Attachments[j+1:]...)
				if err := r.files.Remove(att.Filename); err != nil {
					return err
				}
				return r.store.Save(items)
			}
		}
		return apperrors.ErrAttachmentNotFound
	}
	return apperrors.ErrTodoNotFound
}
