package llm

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	serrors "shaimind/src/errors"
	"shaimind/src/personality"
)

// In-character replies for classified API failures. Raw errors never
// reach the end user; each failure class degrades to one of these.
const (
	authFailureReply = "I'm sorry, but my connection to the mind-stream is reporting an invalid access key. Please ensure my operator has set up the OpenAI API key correctly."
	rateLimitReply   = "My thoughts are racing, but I'm being asked to slow down. Please give me a moment before asking again."
	badRequestReply  = "My internal processing is encountering a complex input I cannot fully parse. Could you rephrase or simplify?"
)

// ChatCompleter is the capability the generator needs from the API client
type ChatCompleter interface {
	ChatCompletion(ctx context.Context, messages []Message) (string, error)
}

// Generator builds persona prompts, calls the chat-completion API and
// degrades every failure to a displayable in-character string.
type Generator struct {
	client ChatCompleter
	logger *zap.Logger
}

func NewGenerator(client ChatCompleter, logger *zap.Logger) *Generator {
	return &Generator{client: client, logger: logger}
}

// Generate produces the persona's reply to input given the prior
// history. The history slice is not mutated: the hidden reasoning
// block and the wrapped user message are appended only to the request.
// The returned text is already cleaned and safe to store in history.
func (g *Generator) Generate(ctx context.Context, state *personality.PersonalityState, input string, history []Message) string {
	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, history...)
	messages = append(messages,
		Message{Role: RoleSystem, Content: internalReasoningPrompt(state)},
		Message{Role: RoleUser, Content: wrapUserMessage(state, input)},
	)

	raw, err := g.client.ChatCompletion(ctx, messages)
	if err != nil {
		g.logger.Error("chat completion failed",
			zap.String("persona", state.Name),
			zap.Error(err))
		return failureReply(err)
	}

	return Clean(raw, state.Name)
}

func failureReply(err error) string {
	if apiErr, ok := serrors.AsAPIError(err); ok {
		switch apiErr.StatusCode {
		case 401:
			return authFailureReply
		case 429:
			return rateLimitReply
		case 400:
			return badRequestReply
		default:
			return fmt.Sprintf("I seem to have encountered a temporary disruption in my thought process (API Error: %d). Please try again shortly.", apiErr.StatusCode)
		}
	}
	return fmt.Sprintf("I seem to have encountered an unexpected error in my thoughts: %v", err)
}

func internalReasoningPrompt(state *personality.PersonalityState) string {
	return fmt.Sprintf(`INTERNAL THOUGHT PROCESS (not shown to user):
You are %s. Think as they would, step by step:
- Interpret the user's message.
- Reflect on your emotional state: %s (Intensity: %d).
- Incorporate these anchors: %s.
- Consider your reasoning style: %s.
- Formulate a brief, persona-appropriate response.
- Your final output should be ONLY the persona's response, without internal thoughts or extra text.`,
		state.Name,
		state.EmotionalState,
		state.EmotionalIntensity,
		strings.Join(state.Anchors, ", "),
		state.ReasoningStyle,
	)
}

func wrapUserMessage(state *personality.PersonalityState, input string) string {
	return fmt.Sprintf("USER MESSAGE: %s\nRespond as %s, considering your thought process and reasoning style.", input, state.Name)
}
