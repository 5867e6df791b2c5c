package http

import (
	"net/http"
	"time"

	httpmw "github.com/emo-circle/backend/internal/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	middlewareChi "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewareChi.RequestID)
	r.Use(middlewareChi.RealIP)
	r.Use(middlewareChi.Recoverer)
	r.Use(middlewareChi.Timeout(30 * time.Second))

	r.Route("/api", func(api chi.Router) {
		api.Use(httpmw.CORS)

		api.Post("/register", h.Register)
		api.Post("/login", h.Login)

		api.Route("/sessions", func(s chi.Router) {
			s.Post("/", h.CreateSession)
			s.Get("/", h.ListSessions)
			s.Get("/details_by_code", h.SessionDetailsByCode)
			s.Post("/member/join", h.JoinSession)
			s.Put("/{id}/end", h.EndSession)
		})

		api.Route("/messages", func(m chi.Router) {
			m.Post("/", h.SendMessage)
			m.Post("/{id}/reply", h.AddReply)
		})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}
