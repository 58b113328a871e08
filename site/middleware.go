package site

import (
	"context"
	"net/http"

	"z3z/auth"
)

const sessionCookieName = "z3z_session"

type sessionCtxKey struct{}

// currentSession resolves the session behind the request cookie, sliding
// its expiry. Returns nil for anonymous or expired visitors.
func (s *Site) currentSession(r *http.Request) *auth.Session {
	if sess, ok := r.Context().Value(sessionCtxKey{}).(*auth.Session); ok {
		return sess
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	return s.auth.Sessions.Get(cookie.Value)
}

// requireAuth gates the admin pages. Unauthenticated requests are sent to
// the login page rather than erroring out.
func (s *Site) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.currentSession(r)
		if sess == nil {
			http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), sessionCtxKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Site) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.auth.Sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Site) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
	})
}
