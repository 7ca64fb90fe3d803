package scroll

import (
	"errors"
	"fmt"
	"slices"
)

type Config struct {
	// fraction of the remaining gap closed per tick
	Damping float64 `yaml:"damping"`

	// below this gap current snaps to target and the tick loop stops
	SnapEpsilon float64 `yaml:"snapEpsilon"`

	// scroll samples closer than this to the current target are ignored
	SampleEpsilon float64 `yaml:"sampleEpsilon"`

	// max processed ticks per second, 0 processes every frame
	MaxTickRate float64 `yaml:"maxTickRate"`

	// fraction of viewport height adjacent sections cross-fade over
	Overlap float64 `yaml:"overlap"`

	// fraction of hero height after which the hero is fully faded
	HeroExit float64 `yaml:"heroExit"`

	// fraction of viewport height added above and below the viewport
	// when deciding if a section is active
	VisibilityMargin float64 `yaml:"visibilityMargin"`

	// intersection ratios that notify visibility observers when crossed
	VisibilityThresholds []float64 `yaml:"visibilityThresholds"`
}

func DefaultConfig() Config {
	return Config{
		Damping:              0.17,
		SnapEpsilon:          0.5,
		SampleEpsilon:        0.5,
		MaxTickRate:          20,
		Overlap:              0.25,
		HeroExit:             0.65,
		VisibilityMargin:     0.2,
		VisibilityThresholds: []float64{0, 0.1, 0.25},
	}
}

var ErrInvalidConfig = errors.New("invalid scroll config")

func (c Config) Validate() error {
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("%w: damping %v must be in (0, 1]", ErrInvalidConfig, c.Damping)
	}
	if c.SnapEpsilon <= 0 {
		return fmt.Errorf("%w: snapEpsilon %v must be positive", ErrInvalidConfig, c.SnapEpsilon)
	}
	if c.SampleEpsilon < 0 {
		return fmt.Errorf("%w: sampleEpsilon %v must not be negative", ErrInvalidConfig, c.SampleEpsilon)
	}
	if c.MaxTickRate < 0 {
		return fmt.Errorf("%w: maxTickRate %v must not be negative", ErrInvalidConfig, c.MaxTickRate)
	}
	if c.Overlap < 0 || c.Overlap >= 0.5 {
		return fmt.Errorf("%w: overlap %v must be in [0, 0.5)", ErrInvalidConfig, c.Overlap)
	}
	if c.HeroExit <= 0 {
		return fmt.Errorf("%w: heroExit %v must be positive", ErrInvalidConfig, c.HeroExit)
	}
	if c.VisibilityMargin < 0 {
		return fmt.Errorf("%w: visibilityMargin %v must not be negative", ErrInvalidConfig, c.VisibilityMargin)
	}
	for _, t := range c.VisibilityThresholds {
		if t < 0 || t > 1 {
			return fmt.Errorf("%w: visibility threshold %v must be in [0, 1]", ErrInvalidConfig, t)
		}
	}
	if !slices.IsSorted(c.VisibilityThresholds) {
		return fmt.Errorf("%w: visibility thresholds must be ascending", ErrInvalidConfig)
	}

	return nil
}
