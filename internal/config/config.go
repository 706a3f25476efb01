package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"v1-esp/internal/display"
)

const (
	DefaultMainVolume = 8
	DefaultFormat     = "c"
	maxVolume         = 15
)

type Config struct {
	Output OutputConfig  `yaml:"output"`
	Alerts []AlertConfig `yaml:"alerts"`
}

type OutputConfig struct {
	// Format is one of c, hex or raw.
	Format string `yaml:"format"`
}

// AlertConfig is one display image as written by a user. Names follow the
// labels on the display ("K Band", "Front Arrow").
type AlertConfig struct {
	Bogey      string `yaml:"bogey" json:"bogey"`
	Band       string `yaml:"band" json:"band"`
	Direction  string `yaml:"direction" json:"direction"`
	Blink      bool   `yaml:"blink" json:"blink"`
	Strength   int    `yaml:"strength" json:"strength"`
	MainVolume *int   `yaml:"main_volume" json:"main_volume"`
	MuteVolume int    `yaml:"mute_volume" json:"mute_volume"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultFormat
	}
	if !ValidFormat(cfg.Output.Format) {
		return Config{}, fmt.Errorf("output.format must be one of c, hex, raw")
	}

	if len(cfg.Alerts) == 0 {
		return Config{}, fmt.Errorf("alerts must contain at least one entry")
	}
	for i := range cfg.Alerts {
		if _, err := cfg.Alerts[i].Selection(); err != nil {
			return Config{}, fmt.Errorf("alerts[%d].%w", i, err)
		}
	}

	return cfg, nil
}

func ValidFormat(f string) bool {
	switch f {
	case "c", "hex", "raw":
		return true
	}
	return false
}

// Selection validates a and converts it for the payload builder. Errors are
// prefixed with the offending field name.
func (a AlertConfig) Selection() (display.Selection, error) {
	band, err := ParseBand(a.Band)
	if err != nil {
		return display.Selection{}, fmt.Errorf("band: %w", err)
	}
	dir, err := ParseDirection(a.Direction)
	if err != nil {
		return display.Selection{}, fmt.Errorf("direction: %w", err)
	}
	if a.Strength < 0 || a.Strength > display.MaxStrength {
		return display.Selection{}, fmt.Errorf("strength must be 0-%d", display.MaxStrength)
	}
	mainVol := DefaultMainVolume
	if a.MainVolume != nil {
		mainVol = *a.MainVolume
	}
	if mainVol < 0 || mainVol > maxVolume {
		return display.Selection{}, fmt.Errorf("main_volume must be 0-%d", maxVolume)
	}
	if a.MuteVolume < 0 || a.MuteVolume > maxVolume {
		return display.Selection{}, fmt.Errorf("mute_volume must be 0-%d", maxVolume)
	}

	return display.Selection{
		Bogey:      ParseBogey(a.Bogey),
		Band:       band,
		Direction:  dir,
		Blink:      a.Blink,
		Strength:   a.Strength,
		MainVolume: mainVol,
		MuteVolume: a.MuteVolume,
	}, nil
}

// ParseBogey maps "0".."9" to a counter digit. Anything else, including the
// empty string, is a blank counter.
func ParseBogey(s string) display.Bogey {
	s = strings.TrimSpace(s)
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return display.NoBogey
	}
	return display.BogeyDigit(int(s[0] - '0'))
}

// ParseBand accepts display labels ("Ka Band") and short names ("ka").
// The empty string and "none" select no band.
func ParseBand(s string) (display.Band, error) {
	switch normalize(s, "band") {
	case "", "none":
		return display.BandNone, nil
	case "laser":
		return display.BandLaser, nil
	case "ka":
		return display.BandKa, nil
	case "k":
		return display.BandK, nil
	case "x":
		return display.BandX, nil
	}
	return display.BandNone, fmt.Errorf("unknown band %q", s)
}

// ParseDirection accepts display labels ("Rear Arrow") and short names
// ("rear"). The empty string and "none" select no arrow.
func ParseDirection(s string) (display.Direction, error) {
	switch normalize(s, "arrow") {
	case "", "none":
		return display.DirectionNone, nil
	case "front":
		return display.DirectionFront, nil
	case "side":
		return display.DirectionSide, nil
	case "rear":
		return display.DirectionRear, nil
	}
	return display.DirectionNone, fmt.Errorf("unknown direction %q", s)
}

func normalize(s, suffix string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, suffix)
	return strings.TrimSpace(s)
}
