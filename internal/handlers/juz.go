package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hidayah-ai/internal/contextutil"
	"hidayah-ai/internal/quran"
	"hidayah-ai/internal/session"
)

// JuzService loads a juz into a session window.
type JuzService interface {
	LoadJuz(ctx context.Context, sessionID string, number int, language string) (*session.Session, []quran.Ayah, error)
}

// JuzHandler handles HTTP requests for loading a juz.
type JuzHandler struct {
	svc JuzService
}

// NewJuzHandler creates a new JuzHandler.
func NewJuzHandler(svc JuzService) *JuzHandler {
	return &JuzHandler{svc: svc}
}

// JuzResponse represents the HTTP response payload for a loaded juz.
type JuzResponse struct {
	SessionID  string        `json:"session_id"`
	Juz        int           `json:"juz"`
	AyahCount  int           `json:"ayah_count"`
	WindowSize int           `json:"window_size"`
	Surahs     []quran.Surah `json:"surahs"`
	Ayahs      []quran.Ayah  `json:"ayahs"`
}

// ServeHTTP handles HTTP requests for loading a juz.
func (h *JuzHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil || number < 1 || number > quran.JuzCount {
		writeError(w, http.StatusBadRequest, "Juz number must be between 1 and 30")
		return
	}

	sessionID := r.URL.Query().Get("session_id")
	language := r.URL.Query().Get("language")

	sess, ayahs, err := h.svc.LoadJuz(ctx, sessionID, number, language)
	if err != nil {
		handleServiceError(w, r, err, "Failed to load juz")
		return
	}

	writeJSON(w, http.StatusOK, JuzResponse{
		SessionID:  sess.ID,
		Juz:        number,
		AyahCount:  len(ayahs),
		WindowSize: len(sess.Window),
		Surahs:     quran.SurahsIn(ayahs),
		Ayahs:      ayahs,
	})
}
