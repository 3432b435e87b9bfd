package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"shaimind/src/emotion"
	"shaimind/src/llm"
	"shaimind/src/personality"
)

// ReplyGenerator is the LLM-backed stage of the pipeline. Satisfied by
// *llm.Generator; tests substitute a fake.
type ReplyGenerator interface {
	Generate(ctx context.Context, state *personality.PersonalityState, input string, history []llm.Message) string
}

// Session owns one conversation: a persona clone mutated in place by
// the emotion engine, and the role-tagged history whose first entry is
// always the active persona's system prompt. One message is processed
// to completion before the next begins; the mutex only guards against
// overlapping HTTP requests for the same session cookie.
type Session struct {
	ID string

	mu        sync.Mutex
	persona   *personality.PersonalityState
	history   []llm.Message
	engine    *emotion.Engine
	responder *emotion.Responder
	generator ReplyGenerator
}

func New(persona *personality.PersonalityState, generator ReplyGenerator) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		engine:    emotion.NewEngine(),
		responder: emotion.NewResponder(),
		generator: generator,
	}
	s.reset(persona)
	return s
}

func (s *Session) reset(persona *personality.PersonalityState) {
	s.persona = persona.Clone()
	s.history = []llm.Message{{Role: llm.RoleSystem, Content: s.persona.SystemPrompt}}
}

// SwitchPersona discards the current conversation and re-seeds the
// history with exactly one system entry for the new persona
func (s *Session) SwitchPersona(persona *personality.PersonalityState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(persona)
}

// Process runs one user message through the full pipeline: heuristic
// short-circuit first, then emotion update and LLM generation. The
// reply is appended to history and returned.
func (s *Session) Process(ctx context.Context, input string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, llm.Message{Role: llm.RoleUser, Content: input})

	reply, ok := s.responder.TryRespond(s.persona, input)
	if !ok {
		s.engine.Update(s.persona, input)
		reply = s.generator.Generate(ctx, s.persona, input, s.history)
	}

	s.history = append(s.history, llm.Message{Role: llm.RoleAssistant, Content: reply})
	return reply
}

// Persona returns a snapshot of the session's persona state
func (s *Session) Persona() personality.PersonalityState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.persona.Clone()
}

// History returns a copy of the conversation history
func (s *Session) History() []llm.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]llm.Message(nil), s.history...)
}
