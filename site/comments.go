package site

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"z3z/comments"
)

type apiResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
	Comment any      `json:"comment,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Site) commentsForPost(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	postID := chi.URLParam(r, "postID")

	list, err := s.comments.ForPost(category, postID)
	if err != nil {
		s.log.Error("load comments", "category", category, "postId", postID, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Erro ao carregar comentários"})
		return
	}

	// redact before anything leaves the server
	public := make([]comments.Public, 0, len(list))
	for _, c := range list {
		public = append(public, comments.Public{ID: c.ID, Name: c.Name, Comment: c.Comment, Date: c.Date})
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "comments": public})
}

func (s *Site) addComment(w http.ResponseWriter, r *http.Request) {
	var in comments.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: "Corpo da requisição inválido"})
		return
	}
	in.IP = r.RemoteAddr

	public, err := s.comments.Add(in)
	if err != nil {
		var verr *comments.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, apiResponse{
				Success: false,
				Message: "Dados inválidos",
				Errors:  verr.Errors,
			})
			return
		}
		s.log.Error("save comment", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Erro ao salvar comentário"})
		return
	}

	writeJSON(w, http.StatusOK, apiResponse{
		Success: true,
		Message: "Comentário adicionado com sucesso!",
		Comment: public,
	})
}

func (s *Site) deleteComment(w http.ResponseWriter, r *http.Request) {
	if s.currentSession(r) == nil {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Não autorizado"})
		return
	}

	commentID := chi.URLParam(r, "commentID")
	removed, err := s.comments.Delete(commentID)
	if err != nil {
		s.log.Error("delete comment", "commentId", commentID, "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Erro ao remover comentário"})
		return
	}
	if !removed {
		writeJSON(w, http.StatusNotFound, apiResponse{Success: false, Message: "Comentário não encontrado"})
		return
	}
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: "Comentário removido com sucesso!"})
}

func (s *Site) commentStats(w http.ResponseWriter, r *http.Request) {
	if s.currentSession(r) == nil {
		writeJSON(w, http.StatusUnauthorized, apiResponse{Success: false, Message: "Não autorizado"})
		return
	}

	stats, err := s.comments.Stats()
	if err != nil {
		s.log.Error("comment stats", "error", err)
		writeJSON(w, http.StatusInternalServerError, apiResponse{Success: false, Message: "Erro ao carregar estatísticas"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "stats": stats})
}
