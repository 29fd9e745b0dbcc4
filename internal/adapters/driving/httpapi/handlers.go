package httpapi

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
	"github.com/custodia-labs/docsuggest/internal/logger"
)

// Handlers holds the services the HTTP routes call into.
type Handlers struct {
	suggest   driving.SuggestService
	documents driving.DocumentService
	users     driving.UserService
}

// NewHandlers creates handlers. documents and users may be nil, in which
// case their routes answer 501.
func NewHandlers(suggest driving.SuggestService, documents driving.DocumentService, users driving.UserService) *Handlers {
	return &Handlers{suggest: suggest, documents: documents, users: users}
}

// HandleHealth reports liveness.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "ok",
		Generation: h.suggest.Stats().Generation,
	})
}

// HandleSearch serves GET /search/:ownerId and GET /search/:ownerId/*prefix.
func (h *Handlers) HandleSearch(c *gin.Context) {
	// The catch-all keeps slashes in titles like "Q1/Q2 Plan" searchable.
	prefix := strings.TrimPrefix(c.Param("prefix"), "/")
	h.search(c, c.Param("ownerId"), prefix)
}

// HandleLegacySearch serves GET /search?user_id=...&title=...
func (h *Handlers) HandleLegacySearch(c *gin.Context) {
	h.search(c, c.Query("user_id"), c.Query("title"))
}

func (h *Handlers) search(c *gin.Context, ownerID, prefix string) {
	limit, err := queryInt(c, "limit")
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	res, err := h.suggest.Suggest(c.Request.Context(), ownerID, prefix, domain.SuggestOptions{Limit: limit})
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			c.JSON(http.StatusNotFound, MessageResponse{Message: MsgUserNotFound})
			return
		}
		writeError(c, err)
		return
	}

	c.Header("X-Index-Generation", strconv.FormatUint(res.Generation, 10))
	c.JSON(http.StatusOK, res.Documents)
}

// HandleRebuild rebuilds the index synchronously and returns its stats.
func (h *Handlers) HandleRebuild(c *gin.Context) {
	stats, err := h.suggest.Rebuild(c.Request.Context(), domain.RebuildManual)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HandleStats returns the current index stats.
func (h *Handlers) HandleStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.suggest.Stats())
}

// HandleUpload serves POST /upload?userId=...&title=...&categories=a,b with
// a multipart "file" field.
func (h *Handlers) HandleUpload(c *gin.Context) {
	if h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgNoFile})
		return
	}
	title := c.Query("title")
	if strings.TrimSpace(title) == "" {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgTitleRequired})
		return
	}
	categories := c.Query("categories")
	if strings.TrimSpace(categories) == "" {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgCategoriesNeeded})
		return
	}
	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: MsgNoSelectedFile})
		return
	}

	file, err := header.Open()
	if err != nil {
		writeError(c, err)
		return
	}
	defer file.Close()

	doc, err := h.documents.Add(c.Request.Context(), driving.AddDocumentRequest{
		OwnerID:    c.Query("userId"),
		Title:      title,
		Categories: strings.Split(categories, ","),
		FileName:   filepath.Base(header.Filename),
		Content:    file,
	})
	if err != nil {
		var dup *domain.DuplicateContentError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, DuplicateResponse{
				Message: MsgDuplicate,
				ExistingDocument: ExistingDocument{
					Title:      dup.Existing.Title,
					UploadDate: dup.Existing.UploadDate,
					Categories: dup.Existing.Categories,
				},
			})
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, MessageResponse{Message: MsgUserNotFound})
			return
		}
		writeError(c, err)
		return
	}

	logger.Debug("httpapi: stored %s for %s", doc.ID, doc.OwnerID)
	c.JSON(http.StatusOK, UploadResponse{Message: MsgUploaded, Hash: doc.HashValue, Document: *doc})
}

// HandleListDocuments returns every stored document.
func (h *Handlers) HandleListDocuments(c *gin.Context) {
	if h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	docs, err := h.documents.ListAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	c.JSON(http.StatusOK, docs)
}

// HandleGetDocument returns one document.
func (h *Handlers) HandleGetDocument(c *gin.Context) {
	if h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	doc, err := h.documents.Get(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		writeNotFound(c, err, MsgDocumentNotFound)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// HandleDownload streams the stored body of a document.
func (h *Handlers) HandleDownload(c *gin.Context) {
	if h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	rc, doc, err := h.documents.Open(c.Request.Context(), c.Param("documentId"))
	if err != nil {
		writeNotFound(c, err, MsgDocumentNotFound)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(doc.FileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Title+doc.FileExt))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Warn("httpapi: download %s: %v", doc.ID, err)
	}
}

// HandleDeleteDocument removes a document.
func (h *Handlers) HandleDeleteDocument(c *gin.Context) {
	if h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	if err := h.documents.Delete(c.Request.Context(), c.Param("documentId")); err != nil {
		writeNotFound(c, err, MsgDocumentNotFound)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Document deleted"})
}

// HandleListCategories returns the shared category list.
func (h *Handlers) HandleListCategories(c *gin.Context) {
	if h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	categories, err := h.documents.Categories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if categories == nil {
		categories = []string{}
	}
	c.JSON(http.StatusOK, categories)
}

// HandleAddCategories merges a JSON list of categories into the shared list.
func (h *Handlers) HandleAddCategories(c *gin.Context) {
	if h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	var req CategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid categories: " + err.Error()})
		return
	}
	categories, err := h.documents.AddCategories(c.Request.Context(), req.Categories)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories})
}

// HandleListUsers returns all users.
func (h *Handlers) HandleListUsers(c *gin.Context) {
	if h.users == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// HandleCreateUser stores a user from a JSON body.
func (h *Handlers) HandleCreateUser(c *gin.Context) {
	if h.users == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Invalid user: " + err.Error()})
		return
	}
	created, err := h.users.Add(c.Request.Context(), user)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// HandleGetUser returns one user.
func (h *Handlers) HandleGetUser(c *gin.Context) {
	if h.users == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	user, err := h.users.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		writeNotFound(c, err, MsgUserNotFound)
		return
	}
	c.JSON(http.StatusOK, user)
}

// HandleDeleteUser removes a user and their documents.
func (h *Handlers) HandleDeleteUser(c *gin.Context) {
	if h.users == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	if err := h.users.Remove(c.Request.Context(), c.Param("userId")); err != nil {
		writeNotFound(c, err, MsgUserNotFound)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted"})
}

// HandleUserDocuments lists the documents of one user.
func (h *Handlers) HandleUserDocuments(c *gin.Context) {
	if h.users == nil || h.documents == nil {
		writeError(c, domain.ErrNotImplemented)
		return
	}
	ctx := c.Request.Context()
	userID := c.Param("userId")
	if _, err := h.users.Get(ctx, userID); err != nil {
		writeNotFound(c, err, MsgUserNotFound)
		return
	}
	docs, err := h.documents.ListByOwner(ctx, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	c.JSON(http.StatusOK, docs)
}

func queryInt(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return n, nil
}

func writeNotFound(c *gin.Context, err error, message string) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: message})
		return
	}
	writeError(c, err)
}

// writeError maps domain errors to status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrOwnerNotFound), errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicateContent):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrNotImplemented):
		status = http.StatusNotImplemented
	}
	if status == http.StatusInternalServerError {
		logger.Error("httpapi: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, MessageResponse{Message: err.Error()})
}
