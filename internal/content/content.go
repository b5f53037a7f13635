// Package content holds the copy shown on the portfolio page.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Link        string   `yaml:"link"`
	Image       string   `yaml:"image"`
}

type SkillCategory struct {
	Title  string   `yaml:"title"`
	Skills []string `yaml:"skills"`
}

type Service struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Links are the outbound profile links in the hero banner.
type Links struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
	Email    string `yaml:"email"`
}

// Site is everything the page template renders apart from the contact form.
type Site struct {
	Brand        string          `yaml:"brand"`
	Name         string          `yaml:"name"`
	Tagline      string          `yaml:"tagline"`
	Role         string          `yaml:"role"`
	RoleAccent   string          `yaml:"role_accent"`
	CVPath       string          `yaml:"cv_path"`
	ProfileImage string          `yaml:"profile_image"`
	Links        Links           `yaml:"links"`
	Services     []Service       `yaml:"services"`
	About        string          `yaml:"about"`
	Skills       []SkillCategory `yaml:"skills"`
	Projects     []Project       `yaml:"projects"`
	ContactIntro string          `yaml:"contact_intro"`

	aboutHTML template.HTML
}

// AboutHTML is the about text rendered from markdown.
func (s *Site) AboutHTML() template.HTML { return s.aboutHTML }

// Load returns the default site, overridden field-by-field by the YAML file
// at path when path is non-empty.
func Load(path string) (*Site, error) {
	site := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading content %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, site); err != nil {
			return nil, fmt.Errorf("parsing content %s: %w", path, err)
		}
	}
	if err := site.render(); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *Site) render() error {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s.About), &buf); err != nil {
		return fmt.Errorf("rendering about text: %w", err)
	}
	// goldmark escapes raw HTML by default.
	s.aboutHTML = template.HTML(buf.String())
	return nil
}
