package firstx

import "testing"

func TestTextFieldAppendRune(t *testing.T) {
	single := NewTextField("")
	multi := NewTextField("")
	multi.Multiline = true
	short := NewTextField("")
	short.MaxLength = 3

	tests := []struct {
		name  string
		field *TextField
		text  string
		r     rune
		want  string
	}{
		{"letter", single, "ab", 'c', "abc"},
		{"unicode", single, "", 'é', "é"},
		{"newline in single line", single, "ab", '\n', "ab"},
		{"newline in multi line", multi, "ab", '\n', "ab\n"},
		{"carriage return", multi, "ab", '\r', "ab"},
		{"control", single, "ab", '\t', "ab"},
		{"max length", short, "abc", 'd', "abc"},
		{"max length counts runes", short, "éé", 'e', "éée"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.appendRune(tt.text, tt.r); got != tt.want {
				t.Errorf("appendRune(%q, %q) = %q, want %q", tt.text, tt.r, got, tt.want)
			}
		})
	}
}

func TestTrimLastWord(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"hello world", "hello "},
		{"hello world  ", "hello "},
		{"hello", ""},
		{"", ""},
		{"line one\nline", "line one\n"},
	}

	for _, tt := range tests {
		if got := trimLastWord(tt.text); got != tt.want {
			t.Errorf("trimLastWord(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestTextFieldSetText(t *testing.T) {
	f := NewTextField("Your Name")
	f.Invalid = true

	var changes []string
	f.OnChange = func(text string) { changes = append(changes, text) }

	f.SetText("Ada")
	f.SetText("Ada")

	if len(changes) != 1 || changes[0] != "Ada" {
		t.Errorf("changes = %v, want [Ada]", changes)
	}
	if f.Invalid {
		t.Errorf("editing did not clear the invalid flag")
	}
}
