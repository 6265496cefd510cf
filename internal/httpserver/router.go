package httpserver

import (
	"net/http"

	"katanatsl/internal/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Config config.Config
}

type Server struct {
	cfg config.Config
}

func NewRouter(deps RouterDeps) (http.Handler, error) {
	s := &Server{cfg: deps.Config}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(s.cfg.RequestTimeout))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok\n"))
	})

	r.Post("/api/decode", s.handleDecode)
	r.Post("/api/names", s.handleNames)
	r.Get("/api/enums", s.handleEnums)
	r.Get("/api/enums/{domain}", s.handleEnum)

	return r, nil
}
