// Package content holds the copy shown by the landing page widgets: the AI Lab
// process steps and industries, and the chat demo texts. The catalog ships
// embedded in the binary.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var catalogYAML []byte

// Step is one stage of the AI Lab simulation.
type Step struct {
	ID          int           `yaml:"id"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Duration    time.Duration `yaml:"duration"`
	Details     []string      `yaml:"details"`
}

// Industry is a business profile the AI Lab can simulate.
type Industry struct {
	ID              string   `yaml:"id" json:"id"`
	Name            string   `yaml:"name" json:"name"`
	Icon            string   `yaml:"icon" json:"icon"`
	Description     string   `yaml:"description" json:"description"`
	Challenges      []string `yaml:"challenges" json:"challenges"`
	AISolutions     []string `yaml:"aiSolutions" json:"aiSolutions"`
	SampleQuestions []string `yaml:"sampleQuestions" json:"sampleQuestions"`
}

// SampleQuestion is the question the result view answers.
func (i Industry) SampleQuestion() string {
	if len(i.SampleQuestions) == 0 {
		return ""
	}
	return i.SampleQuestions[0]
}

// SampleAnswer is the agent answer paired with SampleQuestion.
func (i Industry) SampleAnswer() string {
	if len(i.AISolutions) == 0 {
		return ""
	}
	return i.AISolutions[0]
}

type Prompt struct {
	Text  string `yaml:"text"`
	Reply string `yaml:"reply"`
	Quick bool   `yaml:"quick"`
}

type Chat struct {
	Greeting     string   `yaml:"greeting"`
	Fallback     string   `yaml:"fallback"`
	DefaultReply string   `yaml:"defaultReply"`
	Apology      string   `yaml:"apology"`
	Prompts      []Prompt `yaml:"prompts"`
}

// Replies returns the exact-text prompt to reply mapping.
func (c Chat) Replies() map[string]string {
	out := make(map[string]string, len(c.Prompts))
	for _, p := range c.Prompts {
		out[p.Text] = p.Reply
	}
	return out
}

// QuickPrompts returns the prompts offered as one-click buttons, in order.
func (c Chat) QuickPrompts() []string {
	var out []string
	for _, p := range c.Prompts {
		if p.Quick {
			out = append(out, p.Text)
		}
	}
	return out
}

type Catalog struct {
	Steps      []Step     `yaml:"steps"`
	Industries []Industry `yaml:"industries"`
	Chat       Chat       `yaml:"chat"`
}

// Industry looks an industry up by id.
func (c *Catalog) Industry(id string) (Industry, bool) {
	for _, ind := range c.Industries {
		if ind.ID == id {
			return ind, true
		}
	}
	return Industry{}, false
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(catalogYAML)
}

// Parse decodes and checks a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	if len(c.Steps) == 0 {
		errs = append(errs, errors.New("content: no process steps"))
	}
	for _, s := range c.Steps {
		if s.Duration <= 0 {
			errs = append(errs, fmt.Errorf("content: step %d has no duration", s.ID))
		}
	}

	seen := make(map[string]struct{}, len(c.Industries))
	for _, ind := range c.Industries {
		if ind.ID == "" {
			errs = append(errs, errors.New("content: industry without id"))
			continue
		}
		if _, dup := seen[ind.ID]; dup {
			errs = append(errs, fmt.Errorf("content: duplicate industry %q", ind.ID))
		}
		seen[ind.ID] = struct{}{}
	}

	if c.Chat.Greeting == "" || c.Chat.Fallback == "" || c.Chat.Apology == "" {
		errs = append(errs, errors.New("content: chat greeting, fallback and apology are required"))
	}
	return errors.Join(errs...)
}
