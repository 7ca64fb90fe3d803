package firstx

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"firstx/scroll"

	"gopkg.in/yaml.v3"
)

//go:embed firstx.yaml
var defaultConfigYaml []byte

type Config struct {
	Window  WindowConfig      `yaml:"window"`
	Scroll  scroll.Config     `yaml:"scroll"`
	Page    PageConfig        `yaml:"page"`
	Contact ContactConfig     `yaml:"contact"`
	Palette map[string]string `yaml:"palette"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Title  string `yaml:"title"`

	AntiAlias bool `yaml:"antiAlias"`
}

type PageConfig struct {
	// pixels scrolled per wheel notch
	WheelStep float64 `yaml:"wheelStep"`

	// pixels scrolled per arrow key repeat
	KeyStep float64 `yaml:"keyStep"`

	// how long a raised render hint lives
	HintTimeout time.Duration `yaml:"hintTimeout"`

	// hero idle animations pause below this visible ratio
	HeroPauseRatio float64 `yaml:"heroPauseRatio"`

	// finmind starts its staggered reveal at this visible ratio
	FinMindRevealRatio float64 `yaml:"finMindRevealRatio"`
}

type ContactConfig struct {
	Email string `yaml:"email"`
}

var ErrInvalidConfig = errors.New("invalid config")

func DefaultConfig() Config {
	var c Config
	if err := yaml.Unmarshal(defaultConfigYaml, &c); err != nil {
		panic(fmt.Sprintf("embedded config is broken: %v", err))
	}
	return c
}

// LoadConfig reads path on top of the default config.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}

	if err := ParseConfig(data, &c); err != nil {
		return c, err
	}

	return c, nil
}

// ParseConfig decodes yaml into c, keeping values the yaml does not set.
func ParseConfig(data []byte, c *Config) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return err
	}

	return nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", ErrInvalidConfig, c.Window.TPS)
	}

	if err := c.Scroll.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if c.Page.WheelStep <= 0 || c.Page.KeyStep <= 0 {
		return fmt.Errorf("%w: scroll steps must be positive", ErrInvalidConfig)
	}
	if c.Page.HintTimeout <= 0 {
		return fmt.Errorf("%w: hintTimeout %v must be positive", ErrInvalidConfig, c.Page.HintTimeout)
	}
	if c.Page.HeroPauseRatio < 0 || c.Page.HeroPauseRatio > 1 {
		return fmt.Errorf("%w: heroPauseRatio %v must be in [0, 1]", ErrInvalidConfig, c.Page.HeroPauseRatio)
	}
	if c.Page.FinMindRevealRatio < 0 || c.Page.FinMindRevealRatio > 1 {
		return fmt.Errorf("%w: finMindRevealRatio %v must be in [0, 1]", ErrInvalidConfig, c.Page.FinMindRevealRatio)
	}

	if err := ValidateEmail(c.Contact.Email); err != nil {
		return fmt.Errorf("%w: contact email: %w", ErrInvalidConfig, err)
	}

	var palette = DefaultPalette
	if err := ApplyPaletteOverrides(&palette, c.Palette); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
