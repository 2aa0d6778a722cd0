// internal/config/config.go
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"keyword-dashboard/internal/domain"
)

//go:embed default.yml
var defaultYAML []byte

type Source struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
	Icon  string `yaml:"icon"`
	Role  string `yaml:"role"`
	Path  string `yaml:"path"`
}

type Category struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
}

type Config struct {
	BaseDir     string `yaml:"base_dir"`
	Output      string `yaml:"output"`
	Title       string `yaml:"title"`
	CategoryDir string `yaml:"category_dir"`
	CategoryExt string `yaml:"category_ext"`

	Columns struct {
		Term   []string `yaml:"term"`
		Volume []string `yaml:"volume"`
	} `yaml:"columns"`

	Sources    []Source   `yaml:"sources"`
	Categories []Category `yaml:"categories"`
}

// DefaultYAML returns the configuration document compiled into the binary.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultYAML))
	copy(out, defaultYAML)
	return out
}

func Default() (Config, error) {
	return Parse(defaultYAML)
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(b)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// OutputPath is the report location; relative paths hang off BaseDir.
func (c Config) OutputPath() string {
	if filepath.IsAbs(c.Output) {
		return c.Output
	}
	return filepath.Join(c.BaseDir, c.Output)
}

func (c Config) CategoryPath(cat domain.Category) (dir, name string) {
	return filepath.Join(c.BaseDir, c.CategoryDir), cat.Name + c.CategoryExt
}

func (c Config) DomainSources() []domain.Source {
	out := make([]domain.Source, 0, len(c.Sources))
	for _, s := range c.Sources {
		out = append(out, domain.Source{
			ID:    s.ID,
			Name:  s.Name,
			Color: s.Color,
			Icon:  s.Icon,
			Role:  domain.Role(s.Role),
			Path:  s.Path,
		})
	}
	return out
}

func (c Config) DomainCategories() []domain.Category {
	out := make([]domain.Category, 0, len(c.Categories))
	for _, cat := range c.Categories {
		out = append(out, domain.Category{Name: cat.Name, Icon: cat.Icon})
	}
	return out
}
