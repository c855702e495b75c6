package handlers

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"hidayah-ai/internal/contextutil"
	"hidayah-ai/internal/session"
)

// maxUploadBytes caps document uploads at 32 MiB.
const maxUploadBytes = 32 << 20

// DocumentService extracts, chunks and indexes an uploaded file.
type DocumentService interface {
	IndexDocument(ctx context.Context, sessionID, path, name string) (*session.Session, int, error)
}

// DocumentHandler handles HTTP requests for document uploads.
type DocumentHandler struct {
	svc DocumentService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(svc DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// DocumentResponse represents the HTTP response payload for an indexed
// document.
type DocumentResponse struct {
	SessionID string `json:"session_id"`
	Document  string `json:"document"`
	Chunks    int    `json:"chunks"`
}

// ServeHTTP handles HTTP requests for document uploads. The file arrives as
// multipart form data under "file"; an optional "session_id" field attaches
// the index to an existing session.
func (h *DocumentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		logger.WarnContext(ctx, "invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "A file part named \"file\" is required")
		return
	}
	defer file.Close()

	// Spool the upload to disk so the extractor can work from a path.
	tmpDir, err := os.MkdirTemp("", "upload-*")
	if err != nil {
		logger.ErrorContext(ctx, "creating temp dir failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, filepath.Base(header.Filename))
	out, err := os.Create(tmpPath)
	if err != nil {
		logger.ErrorContext(ctx, "creating temp file failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	if _, err := io.Copy(out, file); err != nil {
		out.Close()
		logger.ErrorContext(ctx, "writing temp file failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to store upload")
		return
	}
	out.Close()

	sess, chunks, err := h.svc.IndexDocument(ctx, r.FormValue("session_id"), tmpPath, header.Filename)
	if err != nil {
		handleServiceError(w, r, err, "Failed to index document")
		return
	}

	writeJSON(w, http.StatusOK, DocumentResponse{
		SessionID: sess.ID,
		Document:  header.Filename,
		Chunks:    chunks,
	})
}
