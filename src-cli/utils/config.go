package utils

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML shape of the config file. Every field has a
// working default, so a missing or partial file is fine.
type FileConfig struct {
	// IcalBuddyPath is the icalBuddy binary to run; bare names are
	// resolved through PATH.
	IcalBuddyPath string `yaml:"icalbuddy_path"`
	// Timezone is an IANA zone name; empty means the local zone.
	Timezone string `yaml:"timezone"`
	// Calendars is the default calendar allow-list; empty means all.
	Calendars []string `yaml:"calendars"`
	// The three sentinel tokens handed to icalBuddy. Any distinct,
	// unambiguous strings work; these defaults match the dump format
	// the parser's tests are written against.
	PropertySeparator string `yaml:"property_separator"`
	SectionSeparator  string `yaml:"section_separator"`
	NewlineToken      string `yaml:"newline_token"`
	// TanaTag is the supertag appended to every outline line.
	TanaTag string `yaml:"tana_tag"`
}

// DefaultFileConfig returns the built-in defaults.
func DefaultFileConfig() FileConfig {
	return FileConfig{
		IcalBuddyPath:     "icalBuddy",
		Timezone:          "",
		Calendars:         []string{},
		PropertySeparator: "#SEP#",
		SectionSeparator:  "#SS#",
		NewlineToken:      "#NNR#",
		TanaTag:           "meeting",
	}
}

// Normalize fills in missing/zero values so a partially-filled config
// file still behaves.
func (fc *FileConfig) Normalize() {
	defaults := DefaultFileConfig()
	if fc.IcalBuddyPath == "" {
		fc.IcalBuddyPath = defaults.IcalBuddyPath
	}
	if fc.Calendars == nil {
		fc.Calendars = []string{}
	}
	if fc.PropertySeparator == "" {
		fc.PropertySeparator = defaults.PropertySeparator
	}
	if fc.SectionSeparator == "" {
		fc.SectionSeparator = defaults.SectionSeparator
	}
	if fc.NewlineToken == "" {
		fc.NewlineToken = defaults.NewlineToken
	}
	if fc.TanaTag == "" {
		fc.TanaTag = defaults.TanaTag
	}
}

// LoadFileConfig reads the YAML config at path. A missing file is not an
// error; the defaults come back instead. `install` is the only place
// that writes the file.
func LoadFileConfig(path string) (FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no config file, using defaults", "path", path)
			return DefaultFileConfig(), nil
		}
		return FileConfig{}, err
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return FileConfig{}, err
	}
	fc.Normalize()
	return fc, nil
}

// WriteFileConfig writes cfg to path atomically (temp file + rename,
// 0600), creating the parent directory if needed.
func WriteFileConfig(path string, fc FileConfig) error {
	fc.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(fc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".calendar-tana-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// DefaultConfigPath is where `install` puts the config file and where
// the CLI looks when --config isn't given.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yml"
	}
	return filepath.Join(home, ".config", "calendar-tana", "config.yml")
}

type Config struct {
	buddyBin string
	location *time.Location

	calendars []string

	propertySeparator string
	sectionSeparator  string
	newlineToken      string

	tanaTag string
}

// NewConfig layers environment variables over the config file at path
// (file over built-in defaults). Invalid values end the process; there
// is nothing sensible to do with a half-configured pipeline.
func NewConfig(path string) *Config {
	file, err := LoadFileConfig(path)
	if err != nil {
		slog.Error("can't load config file", "path", path, "error", err)
		os.Exit(1)
	}

	return &Config{
		buddyBin: func() string {
			buddyBin := os.Getenv("ICALBUDDY_PATH")
			if buddyBin == "" {
				return file.IcalBuddyPath
			}
			slog.Debug("env", "ICALBUDDY_PATH", buddyBin)
			return buddyBin
		}(),

		location: func() *time.Location {
			timezoneStr := os.Getenv("TIMEZONE")
			if timezoneStr == "" {
				timezoneStr = file.Timezone
			} else {
				slog.Debug("env", "TIMEZONE", timezoneStr)
			}
			switch timezoneStr {
			case "":
				return time.Local
			case "UTC":
				return time.UTC
			default:
				loc, err := time.LoadLocation(timezoneStr)
				if err != nil {
					slog.Error("invalid timezone", "timezone", timezoneStr, "error", err)
					os.Exit(1)
				}
				return loc
			}
		}(),

		calendars: func() []string {
			rawCalendars := os.Getenv("CALENDARS")
			if rawCalendars == "" {
				return file.Calendars
			}
			slog.Debug("env", "CALENDARS", rawCalendars)
			var calendars []string
			for _, name := range strings.Split(rawCalendars, ",") {
				if name := strings.TrimSpace(name); name != "" {
					calendars = append(calendars, name)
				}
			}
			return calendars
		}(),

		propertySeparator: func() string {
			sep := os.Getenv("PROPERTY_SEPARATOR")
			if sep == "" {
				return file.PropertySeparator
			}
			slog.Debug("env", "PROPERTY_SEPARATOR", sep)
			return sep
		}(),
		sectionSeparator: func() string {
			sep := os.Getenv("SECTION_SEPARATOR")
			if sep == "" {
				return file.SectionSeparator
			}
			slog.Debug("env", "SECTION_SEPARATOR", sep)
			return sep
		}(),
		newlineToken: func() string {
			token := os.Getenv("NEWLINE_TOKEN")
			if token == "" {
				return file.NewlineToken
			}
			slog.Debug("env", "NEWLINE_TOKEN", token)
			return token
		}(),

		tanaTag: func() string {
			tag := os.Getenv("TANA_TAG")
			if tag == "" {
				return file.TanaTag
			}
			slog.Debug("env", "TANA_TAG", tag)
			return tag
		}(),
	}
}

// Get the icalBuddy binary path
func (c *Config) GetBuddyBin() string {
	return c.buddyBin
}

// Get the TIMEZONE env / timezone config as a resolved location
func (c *Config) GetLocation() *time.Location {
	return c.location
}

// Get the default calendar allow-list
func (c *Config) GetCalendars() []string {
	return c.calendars
}

// Get the property separator token
func (c *Config) GetPropertySeparator() string {
	return c.propertySeparator
}

// Get the section separator token
func (c *Config) GetSectionSeparator() string {
	return c.sectionSeparator
}

// Get the notes newline token
func (c *Config) GetNewlineToken() string {
	return c.newlineToken
}

// Get the outline supertag
func (c *Config) GetTanaTag() string {
	return c.tanaTag
}
