package llm

import (
	"fmt"
	"strings"
	"unicode"
)

// Clean strips internal prompt scaffolding and markdown fences that
// occasionally leak into the model output. Pure and idempotent: each
// transform fires only when its marker is present, operating on the
// output of the previous one.
func Clean(raw, personaName string) string {
	text := raw
	text = dropThroughMarker(text, "USER MESSAGE:")
	text = dropThroughMarker(text, fmt.Sprintf("Respond as %s,", personaName))
	text = dropThroughMarker(text, "RESPONSE:")
	text = stripCodeFence(text)
	return text
}

// dropThroughMarker discards everything up to and including the last
// occurrence of marker, keeping the trimmed remainder
func dropThroughMarker(text, marker string) string {
	i := strings.LastIndex(text, marker)
	if i < 0 {
		return text
	}
	return strings.TrimSpace(text[i+len(marker):])
}

// stripCodeFence removes one triple-backtick fence from each end, plus
// a leading language tag line if the first line looks like one (short,
// single-token, alphabetic-only — e.g. "python", "json"). The tag
// check is heuristic and may occasionally strip a legitimate one-word
// first line; kept loose on purpose.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 6 || !strings.HasPrefix(trimmed, "```") || !strings.HasSuffix(trimmed, "```") {
		return text
	}

	inner := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "```"), "```"))

	lines := strings.Split(inner, "\n")
	if len(lines) > 1 {
		first := strings.ToLower(strings.TrimSpace(lines[0]))
		if len(first) < 20 && first != "" && !strings.Contains(first, " ") && isAlphabetic(first) {
			return strings.TrimSpace(strings.Join(lines[1:], "\n"))
		}
	}

	return inner
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
