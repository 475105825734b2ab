package todos

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Repository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := newTestRepo(t)
	router := gin.New()
	RegisterRoutes(router, repo)
	return router, repo
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["detail"]
}

func TestCreateAndListTodos(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, "POST", "/todos", `{"id":1,"title":"Buy milk","description":"","status":"시작 전"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var created Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.Equal(t, 1, created.ID)
	require.Equal(t, "Buy milk", created.Title)

	w = doJSON(router, "GET", "/todos", "")
	require.Equal(t, http.StatusOK, w.Code)
	var items []Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
}

func TestCreateRejectsInvalidPayload(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, "POST", "/todos", `{"title":"no id","description":""}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(router, "POST", "/todos", `{"id":1,"title":"x","description":"","priority":"urgent"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUpdateEchoesSubmittedView(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "원래 제목", Description: "설명"})
	require.NoError(t, err)

	w := doJSON(router, "PUT", "/todos/1", `{"status":"완료"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// the response is the patch's view with defaults, not the merged record
	var echo Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &echo))
	require.Equal(t, StatusCompleted, echo.Status)
	require.Equal(t, "", echo.Title)

	// the persisted record is the merge
	items, err := repo.List()
	require.NoError(t, err)
	require.Equal(t, "원래 제목", items[0].Title)
	require.Equal(t, StatusCompleted, items[0].Status)
}

func TestUpdateNotFoundAndBadID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, "PUT", "/todos/99", `{"title":"x"}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "To-Do item not found", detailOf(t, w))

	w = doJSON(router, "PUT", "/todos/abc", `{"title":"x"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteIsIdempotentOverHTTP(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "a"})
	require.NoError(t, err)

	w := doJSON(router, "DELETE", "/todos/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "To-Do item deleted")

	// deleting again still succeeds
	w = doJSON(router, "DELETE", "/todos/1", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestResetClearsEverything(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "a"})
	require.NoError(t, err)

	w := doJSON(router, "DELETE", "/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Reset complete")

	items, err := repo.List()
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestSearchScenario(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "Buy milk"})
	require.NoError(t, err)
	_, err = repo.Create(Todo{ID: 2, Title: "Read book"})
	require.NoError(t, err)

	w := doJSON(router, "GET", "/todos/search?query=milk", "")
	require.Equal(t, http.StatusOK, w.Code)

	var results []Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	require.Equal(t, 1, results[0].ID)
}

func TestStatsScenario(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "a", Status: StatusCompleted})
	require.NoError(t, err)
	_, err = repo.Create(Todo{ID: 2, Title: "b", Status: StatusNotStarted})
	require.NoError(t, err)

	w := doJSON(router, "GET", "/todos/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats StatsResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	require.Equal(t, StatsResult{Total: 2, Completed: 1, NotCompleted: 1}, stats)
}

func TestPriorityFilter(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "high", Priority: prioPtr(PriorityHigh)})
	require.NoError(t, err)
	_, err = repo.Create(Todo{ID: 2, Title: "none"})
	require.NoError(t, err)

	w := doJSON(router, "GET", "/todos/priority/높음", "")
	require.Equal(t, http.StatusOK, w.Code)
	var results []Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results, 1)
	require.Equal(t, 1, results[0].ID)

	w = doJSON(router, "GET", "/todos/priority/urgent", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSubtaskUpdateForcesID(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "parent"})
	require.NoError(t, err)

	w := doJSON(router, "POST", "/todos/1/subtasks", `{"id":1,"title":"step","completed":false}`)
	require.Equal(t, http.StatusOK, w.Code)

	// the body carries no id; the path id wins
	w = doJSON(router, "PUT", "/todos/1/subtasks/1", `{"title":"step2","completed":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	var sub SubTask
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sub))
	require.Equal(t, 1, sub.ID)
	require.Equal(t, "step2", sub.Title)
	require.True(t, sub.Completed)
}

func TestSubtaskNotFoundMessages(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "parent"})
	require.NoError(t, err)

	w := doJSON(router, "GET", "/todos/9/subtasks", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "To-Do item not found", detailOf(t, w))

	w = doJSON(router, "DELETE", "/todos/1/subtasks/9", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Subtask not found", detailOf(t, w))
}

func uploadFile(t *testing.T, router *gin.Engine, path, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAttachmentUploadDownloadDelete(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "parent"})
	require.NoError(t, err)

	w := uploadFile(t, router, "/todos/1/attachments", "메모.txt", "exact original bytes")
	require.Equal(t, http.StatusOK, w.Code)

	var att Attachment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &att))
	require.NotEmpty(t, att.ID)
	require.Equal(t, "메모.txt", att.OriginalFilename)

	// download returns the exact bytes under the original name
	w = doJSON(router, "GET", "/todos/1/attachments/"+att.ID+"/download", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "exact original bytes", w.Body.String())
	require.Equal(t, `attachment; filename="메모.txt"`, w.Header().Get("Content-Disposition"))

	// delete removes metadata and blob
	w = doJSON(router, "DELETE", "/todos/1/attachments/"+att.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Attachment deleted successfully")
	require.False(t, repo.files.Exists(att.Filename))

	w = doJSON(router, "GET", "/todos/1/attachments", "")
	require.Equal(t, http.StatusOK, w.Code)
	var atts []Attachment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &atts))
	require.Empty(t, atts)
}

func TestAttachmentDistinctNotFoundMessages(t *testing.T) {
	router, repo := newTestRouter(t)
	_, err := repo.Create(Todo{ID: 1, Title: "parent"})
	require.NoError(t, err)

	w := doJSON(router, "GET", "/todos/9/attachments/x/download", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "To-Do item not found", detailOf(t, w))

	w = doJSON(router, "GET", "/todos/1/attachments/x/download", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Attachment not found in To-Do item", detailOf(t, w))

	// metadata exists but the blob is gone
	att, err := repo.AddAttachment(1, strings.NewReader("x"), "a.txt", "text/plain")
	require.NoError(t, err)
	require.NoError(t, os.Remove(repo.files.Path(att.Filename)))

	w = doJSON(router, "GET", "/todos/1/attachments/"+att.ID+"/download", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Attachment file not found on server", detailOf(t, w))

	w = doJSON(router, "DELETE", "/todos/1/attachments/missing", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "Attachment not found", detailOf(t, w))
}
