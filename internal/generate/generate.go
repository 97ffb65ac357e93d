// Package generate produces screen documents from free-form prompts.
package generate

import (
	"context"
	"embed"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/sdui/internal/loader"
	"github.com/alexisbeaulieu97/sdui/internal/model"
)

//go:embed screens/*.yaml
var screens embed.FS

// Generator turns a prompt into a validated screen.
type Generator interface {
	Generate(ctx context.Context, prompt string) (*model.Screen, error)
}

// Template pairs trigger keywords with a canned document.
type Template struct {
	Name     string
	Keywords []string
	File     string
}

// DefaultTemplate is used when no keyword matches.
const DefaultTemplate = "welcome"

// Templates lists the canned documents in match order. The first template
// with a keyword contained in the prompt wins.
var Templates = []Template{
	{Name: "fitness", Keywords: []string{"calorie", "fitness", "health"}, File: "fitness.yaml"},
	{Name: "store", Keywords: []string{"ecommerce", "store", "shop"}, File: "store.yaml"},
	{Name: "banking", Keywords: []string{"banking", "finance", "wallet"}, File: "banking.yaml"},
	{Name: "social", Keywords: []string{"social", "feed", "post"}, File: "social.yaml"},
	{Name: "music", Keywords: []string{"music", "player", "spotify"}, File: "music.yaml"},
	{Name: "recipe", Keywords: []string{"recipe", "cooking", "food"}, File: "recipe.yaml"},
}

var welcome = Template{Name: DefaultTemplate, File: "welcome.yaml"}

// KeywordGenerator matches prompt keywords against Templates after an
// optional simulated latency.
type KeywordGenerator struct {
	Latency time.Duration
}

// NewKeywordGenerator returns a generator that waits latency before answering.
func NewKeywordGenerator(latency time.Duration) *KeywordGenerator {
	return &KeywordGenerator{Latency: latency}
}

// Match returns the template chosen for prompt. Matching is case-insensitive.
func Match(prompt string) Template {
	lowered := strings.ToLower(prompt)
	for _, tpl := range Templates {
		for _, keyword := range tpl.Keywords {
			if strings.Contains(lowered, keyword) {
				return tpl
			}
		}
	}
	return welcome
}

// Generate waits for the configured latency, then loads the matching
// document. It returns ctx.Err() if ctx is done first.
func (g *KeywordGenerator) Generate(ctx context.Context, prompt string) (*model.Screen, error) {
	if g.Latency > 0 {
		timer := time.NewTimer(g.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Load(Match(prompt))
}

// Load decodes and validates the document behind tpl.
func Load(tpl Template) (*model.Screen, error) {
	name := path.Join("screens", tpl.File)
	data, err := screens.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", tpl.Name, err)
	}
	return loader.LoadBytes(name, data)
}

// Source returns the raw document behind tpl.
func Source(tpl Template) ([]byte, error) {
	return screens.ReadFile(path.Join("screens", tpl.File))
}
