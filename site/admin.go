package site

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"z3z/content"
	"z3z/templates"
)

func (s *Site) loginForm(w http.ResponseWriter, r *http.Request) {
	if s.currentSession(r) != nil {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, templates.LoginPage(""))
}

func (s *Site) login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	sess, err := s.auth.Login(username, password)
	if err != nil {
		// same message for a wrong username and a wrong password
		s.log.Warn("failed admin login", "username", username)
		s.render(w, http.StatusUnauthorized, templates.LoginPage("Usuário ou senha inválidos"))
		return
	}

	s.setSessionCookie(w, sess.Token)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (s *Site) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.auth.Logout(cookie.Value)
	}
	s.clearSessionCookie(w)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

func (s *Site) adminName(r *http.Request) string {
	sess := s.currentSession(r)
	if sess == nil {
		return ""
	}
	if sess.Admin.Name != "" {
		return sess.Admin.Name
	}
	return sess.Admin.Username
}

func (s *Site) dashboard(w http.ResponseWriter, r *http.Request) {
	stats := templates.DashboardStats{PerCollection: map[content.Collection]int{}}
	for _, coll := range content.Collections {
		items, err := s.repo(coll).List(false)
		if err != nil {
			s.log.Error("dashboard counts", "collection", coll, "error", err)
			s.render(w, http.StatusInternalServerError, templates.ErrorPage("Erro ao carregar dashboard"))
			return
		}
		stats.PerCollection[coll] = len(items)
		stats.Total += len(items)
	}
	if cs, err := s.comments.Stats(); err == nil {
		stats.Comments = cs.Total
	}
	s.render(w, http.StatusOK, templates.DashboardPage(s.adminName(r), stats))
}

// collectionParam resolves the {collection} URL segment; unknown names get
// the 404 page.
func (s *Site) collectionParam(w http.ResponseWriter, r *http.Request) (content.Collection, bool) {
	coll, ok := content.ParseCollection(chi.URLParam(r, "collection"))
	if !ok {
		s.render(w, http.StatusNotFound, templates.NotFoundPage(""))
		return "", false
	}
	return coll, true
}

func adminFlash(r *http.Request) templates.Flash {
	q := r.URL.Query()
	switch q.Get("success") {
	case "created":
		return templates.Flash{Message: "Item criado com sucesso!"}
	case "updated":
		return templates.Flash{Message: "Item atualizado com sucesso!"}
	case "deleted":
		return templates.Flash{Message: "Item excluído com sucesso!"}
	}
	switch q.Get("error") {
	case "create":
		return templates.Flash{Message: "Erro ao criar item", IsError: true}
	case "update":
		return templates.Flash{Message: "Erro ao atualizar item", IsError: true}
	case "delete":
		return templates.Flash{Message: "Erro ao excluir item", IsError: true}
	case "notfound":
		return templates.Flash{Message: "Item não encontrado", IsError: true}
	case "load":
		return templates.Flash{Message: "Erro ao carregar item", IsError: true}
	}
	return templates.Flash{}
}

func (s *Site) adminList(w http.ResponseWriter, r *http.Request) {
	coll, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	// admin sees drafts too
	items, err := s.repo(coll).List(false)
	if err != nil {
		s.log.Error("admin list", "collection", coll, "error", err)
		s.render(w, http.StatusInternalServerError, templates.ErrorPage("Erro ao carregar "+coll.Label()))
		return
	}
	s.render(w, http.StatusOK, templates.AdminListPage(s.adminName(r), coll, items, adminFlash(r)))
}

func (s *Site) adminNewForm(w http.ResponseWriter, r *http.Request) {
	coll, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	s.render(w, http.StatusOK, templates.AdminFormPage(s.adminName(r), coll, nil))
}

func parseTags(raw string) []string {
	tags := []string{}
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

func (s *Site) adminCreate(w http.ResponseWriter, r *http.Request) {
	coll, ok := s.collectionParam(w, r)
	if !ok {
		return
	}

	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		category = "geral"
	}

	sess := s.currentSession(r)
	fields := content.Fields{
		Title:     strings.TrimSpace(r.FormValue("title")),
		Content:   content.FormatContent(coll, r.FormValue("content")),
		Category:  category,
		Tags:      parseTags(r.FormValue("tags")),
		Published: r.FormValue("published") == "on",
		Date:      strings.TrimSpace(r.FormValue("date")),
		Author:    sess.Admin.Name,
		Image:     r.FormValue("image"),
	}

	if _, err := s.repo(coll).Create(fields); err != nil {
		s.log.Error("create item", "collection", coll, "error", err)
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=create", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/"+string(coll)+"?success=created", http.StatusSeeOther)
}

func (s *Site) adminEditForm(w http.ResponseWriter, r *http.Request) {
	coll, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=notfound", http.StatusSeeOther)
		return
	}

	item, err := s.repo(coll).GetByID(id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.Redirect(w, r, "/admin/"+string(coll)+"?error=notfound", http.StatusSeeOther)
			return
		}
		s.log.Error("load item for edit", "collection", coll, "id", id, "error", err)
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=load", http.StatusSeeOther)
		return
	}
	s.render(w, http.StatusOK, templates.AdminFormPage(s.adminName(r), coll, &item))
}

func (s *Site) adminUpdate(w http.ResponseWriter, r *http.Request) {
	coll, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=notfound", http.StatusSeeOther)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	category := strings.TrimSpace(r.FormValue("category"))
	if category == "" {
		category = "geral"
	}
	published := r.FormValue("published") == "on"
	date := strings.TrimSpace(r.FormValue("date"))
	image := r.FormValue("image")

	patch := content.Patch{
		Title:     &title,
		Content:   content.FormatContent(coll, r.FormValue("content")),
		Category:  &category,
		Tags:      parseTags(r.FormValue("tags")),
		Published: &published,
		Image:     &image,
	}
	if date != "" {
		patch.Date = &date
	}

	if _, err := s.repo(coll).Update(id, patch); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.Redirect(w, r, "/admin/"+string(coll)+"?error=notfound", http.StatusSeeOther)
			return
		}
		s.log.Error("update item", "collection", coll, "id", id, "error", err)
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=update", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/"+string(coll)+"?success=updated", http.StatusSeeOther)
}

func (s *Site) adminDelete(w http.ResponseWriter, r *http.Request) {
	coll, ok := s.collectionParam(w, r)
	if !ok {
		return
	}
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=notfound", http.StatusSeeOther)
		return
	}

	removed, err := s.repo(coll).Delete(id)
	if err != nil {
		s.log.Error("delete item", "collection", coll, "id", id, "error", err)
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=delete", http.StatusSeeOther)
		return
	}
	if !removed {
		http.Redirect(w, r, "/admin/"+string(coll)+"?error=notfound", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/admin/"+string(coll)+"?success=deleted", http.StatusSeeOther)
}

// adminDeleteJSON backs the dynamic confirm dialogs; unlike the form flow
// it answers with a structured body instead of a redirect.
func (s *Site) adminDeleteJSON(w http.ResponseWriter, r *http.Request) {
	coll, okColl := content.ParseCollection(chi.URLParam(r, "collection"))
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if !okColl || err != nil {
		writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: "Item não encontrado"})
		return
	}

	removed, err := s.repo(coll).Delete(id)
	if err != nil {
		s.log.Error("delete item", "collection", coll, "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Erro ao excluir item"})
		return
	}
	if !removed {
		writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: "Item não encontrado"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Item excluído com sucesso!"})
}
