package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/testnotes/testnotes-go/internal/ai"
	"github.com/testnotes/testnotes-go/internal/extract"
	"github.com/testnotes/testnotes-go/internal/model"
	"github.com/testnotes/testnotes-go/internal/service"
)

// StudyHandler handles HTTP requests that proxy study notes to the
// generative model.
type StudyHandler struct {
	study *service.StudyService
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(study *service.StudyService) *StudyHandler {
	return &StudyHandler{study: study}
}

// HandleAnalyze handles POST /api/analyze requests.
func (h *StudyHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotes(w, r)
	if !ok {
		return
	}

	points, err := h.study.AnalyzeNotes(r.Context(), req.Notes)
	if err != nil {
		h.writeStudyError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AnalyzeResponse{Success: true, Points: points})
}

// HandleGenerateQuiz handles POST /api/generate-quiz requests.
func (h *StudyHandler) HandleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeNotes(w, r)
	if !ok {
		return
	}

	questions, err := h.study.GenerateQuiz(r.Context(), req.Notes)
	if err != nil {
		h.writeStudyError(w, err)
		return
	}

	if questions == nil {
		questions = []model.QuizQuestion{}
	}
	writeJSON(w, http.StatusOK, model.QuizResponse{Success: true, Questions: questions})
}

func (h *StudyHandler) decodeNotes(w http.ResponseWriter, r *http.Request) (model.NotesRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.NotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return req, false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return req, false
	}

	return req, true
}

// writeStudyError maps study failures onto the envelope: validation to 400,
// upstream and parse failures to 500 with a client-safe message.
func (h *StudyHandler) writeStudyError(w http.ResponseWriter, err error) {
	var ue *ai.UpstreamError

	switch {
	case isValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	case errors.As(err, &ue):
		slog.Error("ai request failed", "status", ue.StatusCode, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(ue.Message))
	case errors.Is(err, extract.ErrQuizFormat):
		slog.Error("quiz extraction failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse(err.Error()))
	default:
		slog.Error("study request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
