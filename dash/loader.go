package dash

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Loader reads chart configurations. Missing settings keep the values of
// Default.
type Loader struct {
	ExpandEnv bool
	StrictEnv bool
	Validate  bool
}

func NewLoader() *Loader {
	return &Loader{
		ExpandEnv: true,
		Validate:  true,
	}
}

// LoadFile reads the configuration at path, its format given by its
// extension. A relative data path is resolved from the directory of the file.
func (l *Loader) LoadFile(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return Config{}, fmt.Errorf("failed to access config file: %w", err)
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("%w: %s is a directory", ErrUnsupportedFormat, path)
	}
	format, err := formatOf(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := l.load(f, format)
	if err != nil {
		return cfg, err
	}
	if p := cfg.Data.Path; p != "" && !filepath.IsAbs(p) && !isRemote(p) {
		cfg.Data.Path = filepath.Join(filepath.Dir(path), p)
	}
	return cfg, l.validate(cfg)
}

// Load reads a configuration from r.
func (l *Loader) Load(r io.Reader, format Format) (Config, error) {
	cfg, err := l.load(r, format)
	if err != nil {
		return cfg, err
	}
	return cfg, l.validate(cfg)
}

func (l *Loader) LoadString(content string, format Format) (Config, error) {
	return l.Load(strings.NewReader(content), format)
}

func (l *Loader) load(r io.Reader, format Format) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	str := string(data)
	if l.ExpandEnv {
		if str, err = expandEnv(str, l.StrictEnv); err != nil {
			return Config{}, err
		}
	}
	cfg := Default()
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal([]byte(str), &cfg)
	case FormatJSON:
		err = json.Unmarshal([]byte(str), &cfg)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

func (l *Loader) validate(cfg Config) error {
	if !l.Validate {
		return nil
	}
	return cfg.Validate()
}

func formatOf(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}
