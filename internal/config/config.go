// Package config handles refdex configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/refdex/refdex/internal/bib"
)

// Config is the process-wide configuration, set once at startup. Actions
// receive it read-only; per-call overrides are layered on top via options,
// never written back.
type Config struct {
	// Bibliography lists the BibTeX files to load.
	Bibliography []string `yaml:"bibliography"`
	// NotesDir is where note files live, one per citation key.
	NotesDir string `yaml:"notes_dir"`
	// DocsDir is where document files live, named <key>.<ext>.
	DocsDir string `yaml:"docs_dir"`
	// Opener is the external command used to open documents.
	Opener string `yaml:"opener,omitempty"`
	// LogFile collects opener subprocess output, append-only.
	LogFile string `yaml:"log_file,omitempty"`
	// Editor opens note files. Falls back to $EDITOR.
	Editor string `yaml:"editor,omitempty"`

	// SearchField builds the primary label text.
	SearchField string `yaml:"search_field,omitempty"`
	// AnnotationField is shown beside each label, truncated.
	AnnotationField string `yaml:"annotation_field,omitempty"`
	// Fields lists the BibTeX fields to extract. Must include title and
	// author; other parts of the system assume their presence.
	Fields []string `yaml:"fields,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "refdex"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// ConfigEnv overrides the config file location.
	ConfigEnv = "REFDEX_CONFIG"

	// NoteExt is the extension for note files.
	NoteExt = ".org"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the config file location: $REFDEX_CONFIG if set, otherwise
// $XDG_CONFIG_HOME/refdex/config.yml, defaulting XDG_CONFIG_HOME to
// ~/.config.
func Path() string {
	if p := os.Getenv(ConfigEnv); p != "" {
		return ExpandTilde(p)
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Default returns the built-in configuration.
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		Bibliography:    []string{filepath.Join(home, "bibliography.bib")},
		NotesDir:        filepath.Join(home, "notes"),
		DocsDir:         filepath.Join(home, "papers"),
		Opener:          defaultOpener(),
		SearchField:     bib.FieldTitle,
		AnnotationField: bib.FieldAuthor,
		Fields:          []string{bib.FieldTitle, bib.FieldAuthor},
	}
}

// defaultOpener returns the platform default open command.
func defaultOpener() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "start"
	default:
		return "xdg-open"
	}
}

// Load reads the configuration file, layering it over the defaults.
// A missing file yields the defaults, not an error.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg := Default()

	path := Path()
	if path == "" {
		configCache = cfg
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			configCache = cfg
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.expandPaths()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configCache = cfg
	return cfg, nil
}

// Save writes the configuration file, creating its directory if needed.
func (c *Config) Save() error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	configCache = nil
	return nil
}

// Validate checks invariants the rest of the system relies on.
func (c *Config) Validate() error {
	if len(c.Bibliography) == 0 {
		return fmt.Errorf("bibliography: at least one file required")
	}
	if len(c.Fields) > 0 {
		if !contains(c.Fields, bib.FieldTitle) || !contains(c.Fields, bib.FieldAuthor) {
			return fmt.Errorf("fields must include %q and %q", bib.FieldTitle, bib.FieldAuthor)
		}
	}
	return nil
}

// expandPaths expands tildes in every configured path.
func (c *Config) expandPaths() {
	for i, p := range c.Bibliography {
		c.Bibliography[i] = ExpandTilde(p)
	}
	c.NotesDir = ExpandTilde(c.NotesDir)
	c.DocsDir = ExpandTilde(c.DocsDir)
	c.LogFile = ExpandTilde(c.LogFile)
}

// ExpandTilde expands ~ to the user's home directory. Returns the original
// path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}

// ResetCache clears the loaded config cache. Used by tests and after Save.
func ResetCache() {
	configCache = nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
