package event

import "testing"

func TestTopic_Matches(t *testing.T) {
	tests := []struct {
		name    string
		topic   Topic
		pattern Topic
		want    bool
	}{
		{"exact match", "focus.changed", "focus.changed", true},
		{"exact mismatch", "focus.changed", "focus.cleared", false},
		{"single wildcard", "interaction.key.changed", "interaction.*.changed", true},
		{"single wildcard wrong depth", "interaction.changed", "interaction.*.changed", false},
		{"multi wildcard tail", "interaction.key.changed", "interaction.**", true},
		{"multi wildcard zero segments", "interaction", "interaction.**", true},
		{"multi wildcard everything", "focus.changed", "**", true},
		{"multi wildcard middle", "a.x.y.b", "a.**.b", true},
		{"prefix is not a match", "focus.changed.extra", "focus.changed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.topic.Matches(tt.pattern); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.topic, tt.pattern, got, tt.want)
			}
		})
	}
}

func TestTopic_IsValid(t *testing.T) {
	tests := []struct {
		topic Topic
		want  bool
	}{
		{"focus.changed", true},
		{"focus", true},
		{"", false},
		{".focus", false},
		{"focus.", false},
		{"focus..changed", false},
	}

	for _, tt := range tests {
		if got := tt.topic.IsValid(); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.topic, got, tt.want)
		}
	}
}

func TestTopic_Helpers(t *testing.T) {
	top := Topic("interaction.key.changed")

	if got := top.Base(); got != "changed" {
		t.Errorf("Base() = %q, want %q", got, "changed")
	}
	if got := Topic("interaction").Child("key"); got != "interaction.key" {
		t.Errorf("Child() = %q, want %q", got, "interaction.key")
	}
	if n := len(top.Segments()); n != 3 {
		t.Errorf("Segments() len = %d, want 3", n)
	}
	if !Topic("a.*").IsPattern() {
		t.Error("expected a.* to be a pattern")
	}
	if Topic("a.b").IsPattern() {
		t.Error("did not expect a.b to be a pattern")
	}
}
