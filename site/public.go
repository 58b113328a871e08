package site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"z3z/content"
	"z3z/templates"
)

func (s *Site) home(w http.ResponseWriter, r *http.Request) {
	var featured []templates.Featured
	for _, coll := range content.Collections {
		items, err := s.repo(coll).List(true)
		if err != nil {
			s.log.Error("load featured posts", "collection", coll, "error", err)
			s.render(w, http.StatusInternalServerError, templates.ErrorPage(""))
			return
		}
		if len(items) == 0 {
			continue
		}
		// newest published item: collections are append-ordered
		featured = append(featured, templates.Featured{Collection: coll, Item: items[len(items)-1]})
	}
	s.render(w, http.StatusOK, templates.HomePage(featured))
}

func (s *Site) about(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusOK, templates.AboutPage())
}

func (s *Site) notFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, templates.NotFoundPage(""))
}

func (s *Site) publicList(coll content.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.repo(coll).List(true)
		if err != nil {
			s.log.Error("list items", "collection", coll, "error", err)
			s.render(w, http.StatusInternalServerError, templates.ErrorPage("Erro ao carregar "+coll.Label()+"."))
			return
		}
		s.render(w, http.StatusOK, templates.ListPage(coll, items))
	}
}

func (s *Site) publicDetail(coll content.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			s.render(w, http.StatusNotFound, templates.NotFoundPage(""))
			return
		}

		item, err := s.repo(coll).GetByID(id)
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				s.render(w, http.StatusNotFound, templates.NotFoundPage("O conteúdo que você procura não foi encontrado."))
				return
			}
			s.log.Error("load item", "collection", coll, "id", id, "error", err)
			s.render(w, http.StatusInternalServerError, templates.ErrorPage(""))
			return
		}
		// unpublished items are invisible to the public, not just unlisted
		if !item.Published {
			s.render(w, http.StatusNotFound, templates.NotFoundPage("O conteúdo que você procura não foi encontrado."))
			return
		}
		s.render(w, http.StatusOK, templates.DetailPage(coll, item))
	}
}
