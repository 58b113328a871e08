// Package site wires the HTTP surface: public pages, the admin panel and
// the comments API. It exposes a plain http.Handler so any deployment
// target (local server, function shim) mounts the same core.
package site

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	g "github.com/maragudk/gomponents"

	"z3z/auth"
	"z3z/comments"
	"z3z/config"
	"z3z/content"
)

type Site struct {
	cfg      *config.Config
	log      *slog.Logger
	repos    map[content.Collection]*content.Repository
	comments *comments.Service
	auth     *auth.Service
}

func New(cfg *config.Config, log *slog.Logger, repos map[content.Collection]*content.Repository, cs *comments.Service, as *auth.Service) *Site {
	return &Site{cfg: cfg, log: log, repos: repos, comments: cs, auth: as}
}

// Router builds the chi router with the full middleware stack.
func (s *Site) Router() *chi.Mux {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware.Handler)
	r.Use(httprate.LimitByIP(100, time.Minute))

	r.Get("/", s.home)
	r.Get("/sobre", s.about)
	for _, coll := range content.Collections {
		coll := coll
		r.Get("/"+string(coll), s.publicList(coll))
		r.Get("/"+string(coll)+"/{id}", s.publicDetail(coll))
	}

	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", s.loginForm)
		r.Post("/login", s.login)
		r.Get("/logout", s.logout)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/", func(w http.ResponseWriter, r *http.Request) {
				http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			})
			r.Get("/dashboard", s.dashboard)
			r.Route("/{collection}", func(r chi.Router) {
				r.Get("/", s.adminList)
				r.Get("/novo", s.adminNewForm)
				r.Post("/novo", s.adminCreate)
				r.Get("/{id}/editar", s.adminEditForm)
				r.Post("/{id}/editar", s.adminUpdate)
				r.Post("/{id}/excluir", s.adminDelete)
				r.Delete("/{id}", s.adminDeleteJSON)
			})
		})
	})

	r.Route("/comments", func(r chi.Router) {
		r.Get("/admin/stats", s.commentStats)
		r.With(httprate.LimitByIP(10, time.Minute)).Post("/add", s.addComment)
		r.Get("/{category}/{postID}", s.commentsForPost)
		r.Delete("/{commentID}", s.deleteComment)
	})

	fileServer := http.FileServer(http.Dir(s.cfg.AssetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	r.NotFound(s.notFound)
	return r
}

func (s *Site) repo(coll content.Collection) *content.Repository {
	return s.repos[coll]
}

// render writes a gomponents page with the given status.
func (s *Site) render(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		s.log.Error("render page", "error", err)
	}
}
