package personality

// PersonalityState describes a conversational character's identity and
// current mood. One instance per active session; the emotion engine
// mutates it in place as the conversation proceeds.
type PersonalityState struct {
	Name               string   `toml:"name"`
	Traits             []string `toml:"traits"`
	Anchors            []string `toml:"anchors"`
	ReasoningStyle     string   `toml:"reasoning_style"`
	SystemPrompt       string   `toml:"system_prompt"`
	EmotionalState     string   `toml:"emotional_state"`
	EmotionalIntensity int      `toml:"emotional_intensity"`
}

// Clone returns a per-session copy. Sessions must never share a cached
// template, since emotional updates mutate in place.
func (p *PersonalityState) Clone() *PersonalityState {
	c := *p
	c.Traits = append([]string(nil), p.Traits...)
	c.Anchors = append([]string(nil), p.Anchors...)
	return &c
}
