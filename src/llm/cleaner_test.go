package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	const name = "Edgar Allan Poe"

	tests := []struct {
		testName string
		raw      string
		want     string
	}{
		{
			testName: "clean_input_unchanged",
			raw:      "Nevermore, said the bird.",
			want:     "Nevermore, said the bird.",
		},
		{
			testName: "leaked_prompt_scaffolding",
			raw:      "USER MESSAGE: hi\nRESPONSE:\n```text\nHello there```",
			want:     "Hello there",
		},
		{
			testName: "respond_as_marker",
			raw:      "Respond as Edgar Allan Poe, considering your thought process.\nThe night was dark.",
			want:     "considering your thought process.\nThe night was dark.",
		},
		{
			testName: "response_marker_keeps_tail",
			raw:      "internal musings...\nRESPONSE: The shadows lengthen.",
			want:     "The shadows lengthen.",
		},
		{
			testName: "fence_without_language_tag",
			raw:      "```\nThe bells, the bells.\n```",
			want:     "The bells, the bells.",
		},
		{
			testName: "fence_with_language_tag",
			raw:      "```markdown\nA dirge for her, the doubly dead.\n```",
			want:     "A dirge for her, the doubly dead.",
		},
		{
			testName: "fence_first_line_with_space_is_kept",
			raw:      "```\nOnce upon a midnight dreary\nI pondered, weak and weary.\n```",
			want:     "Once upon a midnight dreary\nI pondered, weak and weary.",
		},
		{
			testName: "fence_first_line_numeric_is_kept",
			raw:      "```\n1849\nwas the year it ended.\n```",
			want:     "1849\nwas the year it ended.",
		},
		{
			testName: "unterminated_fence_untouched",
			raw:      "```text\nHello there",
			want:     "```text\nHello there",
		},
		{
			testName: "marker_for_other_persona_ignored",
			raw:      "Respond as Nikola Tesla, with precision.",
			want:     "Respond as Nikola Tesla, with precision.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			assert.Equal(t, tt.want, Clean(tt.raw, name))
		})
	}
}

func TestCleanIdempotent(t *testing.T) {
	const name = "Edgar Allan Poe"

	inputs := []string{
		"USER MESSAGE: hi\nRESPONSE:\n```text\nHello there```",
		"plain reply, nothing to strip",
		"```json\n{\"key\": \"value\"}\n```",
		"RESPONSE: twice RESPONSE: nested",
		"   leading whitespace preserved on clean input",
		"",
	}

	for _, raw := range inputs {
		once := Clean(raw, name)
		twice := Clean(once, name)
		assert.Equal(t, once, twice, "Clean not idempotent for %q", raw)
	}
}
