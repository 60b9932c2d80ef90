package web

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// Content is the copy rendered on the landing page.
type Content struct {
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Hero        Hero         `yaml:"hero"`
	Features    Features     `yaml:"features"`
	Screenshots Screenshots  `yaml:"screenshots"`
	Waitlist    WaitlistCopy `yaml:"waitlist"`
}

type Hero struct {
	Title   string `yaml:"title"`
	Tagline string `yaml:"tagline"`
	CTA     string `yaml:"cta"`
}

type Feature struct {
	Title string `yaml:"title"`
	Desc  string `yaml:"desc"`
	Icon  string `yaml:"icon"`
}

type Features struct {
	Heading string    `yaml:"heading"`
	Items   []Feature `yaml:"items"`
}

type Screenshot struct {
	Src     string `yaml:"src"`
	Alt     string `yaml:"alt"`
	Caption string `yaml:"caption"`
}

type Screenshots struct {
	Heading string       `yaml:"heading"`
	CTA     string       `yaml:"cta"`
	Items   []Screenshot `yaml:"items"`
}

type WaitlistCopy struct {
	Heading     string `yaml:"heading"`
	Lead        string `yaml:"lead"`
	Placeholder string `yaml:"placeholder"`
}

// DefaultContent returns the embedded landing page copy.
func DefaultContent() (Content, error) {
	return ParseContent(defaultContent)
}

// ParseContent decodes landing page copy from YAML.
func ParseContent(data []byte) (Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("failed to parse landing content: %w", err)
	}
	if c.Hero.Title == "" || c.Waitlist.Heading == "" {
		return Content{}, fmt.Errorf("failed to parse landing content: hero title and waitlist heading are required")
	}
	return c, nil
}
