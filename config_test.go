package firstx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()

	if err := c.Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
	if c.Page.HintTimeout != 2*time.Second {
		t.Errorf("hint timeout = %v, want 2s", c.Page.HintTimeout)
	}
	if c.Scroll.Damping != 0.17 {
		t.Errorf("damping = %v, want 0.17", c.Scroll.Damping)
	}
	if c.Contact.Email != ContactEmail {
		t.Errorf("contact email = %q", c.Contact.Email)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	c := DefaultConfig()

	data := []byte(`
scroll:
  damping: 0.16
  maxTickRate: 0
page:
  hintTimeout: 500ms
palette:
  accent: "#22c55e"
`)

	if err := ParseConfig(data, &c); err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}

	if c.Scroll.Damping != 0.16 || c.Scroll.MaxTickRate != 0 {
		t.Errorf("scroll = %+v", c.Scroll)
	}
	if c.Page.HintTimeout != 500*time.Millisecond {
		t.Errorf("hint timeout = %v, want 500ms", c.Page.HintTimeout)
	}
	// untouched keys keep their defaults
	if c.Scroll.SnapEpsilon != 0.5 || c.Window.Width != 1280 {
		t.Errorf("defaults lost: snap %v, width %v", c.Scroll.SnapEpsilon, c.Window.Width)
	}
	if c.Palette["accent"] != "#22c55e" {
		t.Errorf("palette = %v", c.Palette)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"damping", "scroll:\n  damping: 2\n"},
		{"window", "window:\n  width: 0\n"},
		{"hint timeout", "page:\n  hintTimeout: 0s\n"},
		{"ratio", "page:\n  heroPauseRatio: 1.5\n"},
		{"email", "contact:\n  email: nobody\n"},
		{"palette name", "palette:\n  sparkle: \"#fff\"\n"},
		{"palette color", "palette:\n  accent: \"not a color\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			err := ParseConfig([]byte(tt.data), &c)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseConfig() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseConfigBadYaml(t *testing.T) {
	c := DefaultConfig()
	if err := ParseConfig([]byte("scroll: [1, 2"), &c); err == nil {
		t.Errorf("broken yaml parsed")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "firstx.yaml")

	if err := os.WriteFile(path, []byte("window:\n  title: test\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Window.Title != "test" || c.Window.Height != 800 {
		t.Errorf("window = %+v", c.Window)
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: %v, want os.ErrNotExist", err)
	}
}
