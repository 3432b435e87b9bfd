package server

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"shaimind/src/llm"
	"shaimind/src/session"
)

const sessionCookie = "shaimind_session"

type chatMessage struct {
	Role    string
	Content string
}

type pageData struct {
	Personas    []string
	ActiveKey   string
	PersonaName string
	Traits      string
	Mood        string
	Intensity   int
	Messages    []chatMessage
}

// sessionFor resolves the request's session from its cookie, creating
// a fresh one with the default persona when absent or unknown
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) (*session.Session, error) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if sess, ok := s.manager.Get(cookie.Value); ok {
			return sess, nil
		}
	}

	sess, err := s.manager.Create(s.manager.DefaultPersonaKey())
	if err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
	})
	return sess, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFor(w, r)
	if err != nil {
		s.logger.Error("failed to create session", zap.Error(err))
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	persona := sess.Persona()

	data := pageData{
		Personas:    s.manager.Catalog().Keys(),
		ActiveKey:   s.activeKey(persona.Name),
		PersonaName: persona.Name,
		Traits:      strings.Join(persona.Traits, ", "),
		Mood:        persona.EmotionalState,
		Intensity:   persona.EmotionalIntensity,
	}

	// The hidden system entry never reaches the scrollback
	for _, m := range sess.History() {
		if m.Role == llm.RoleSystem {
			continue
		}
		data.Messages = append(data.Messages, chatMessage{Role: m.Role, Content: m.Content})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chatTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render page", zap.Error(err))
	}
}

// activeKey maps a display name back to its catalog key so the
// selector can mark the current persona
func (s *Server) activeKey(displayName string) string {
	for _, key := range s.manager.Catalog().Keys() {
		if p, err := s.manager.Catalog().Get(key); err == nil && p.Name == displayName {
			return key
		}
	}
	return ""
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFor(w, r)
	if err != nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	input := strings.TrimSpace(r.FormValue("message"))
	if input == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	// Blocking call: the pipeline runs to completion before the page
	// re-renders. Generation failures come back as displayable text,
	// never as an HTTP error.
	sess.Process(r.Context(), input)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSwitchPersona(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFor(w, r)
	if err != nil {
		http.Error(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	key := r.FormValue("persona")
	if err := s.manager.Switch(sess.ID, key); err != nil {
		s.logger.Warn("persona switch failed", zap.String("persona", key), zap.Error(err))
		http.Error(w, "unknown persona", http.StatusBadRequest)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
