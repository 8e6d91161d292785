package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/testnotes/testnotes-go/internal/middleware"
)

// NewRouter wires the full HTTP surface under /api. The sessions middleware
// runs on every route so any request carrying a valid cookie refreshes its
// session, whether or not the route reads it.
func NewRouter(auth *AuthHandler, study *StudyHandler, sessions func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(sessions)

	r.Route("/api", func(r chi.Router) {
		r.Get("/test", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]bool{"success": true})
		})

		r.Post("/signup", auth.HandleSignup)
		r.Post("/signin", auth.HandleSignin)
		r.Post("/logout", auth.HandleLogout)
		r.Get("/auth/check", auth.HandleCheckAuth)

		r.Post("/analyze", study.HandleAnalyze)
		r.Post("/generate-quiz", study.HandleGenerateQuiz)
	})

	return r
}
