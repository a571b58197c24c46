// file: internal/collect/collect.go
// version: 1.0.0
// guid: a1d3f575-0bc8-4def-b702-8ac4e6b83971

// Package collect runs the preference interview: a fixed sequence of
// questions whose free-text answers resolve against the catalog's
// distinct values.
package collect

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/thriftpick/thriftpick/internal/catalog"
	"github.com/thriftpick/thriftpick/internal/console"
	"github.com/thriftpick/thriftpick/internal/matcher"
	"github.com/thriftpick/thriftpick/internal/models"
)

// Prompter reads one line of user input for a prompt.
type Prompter interface {
	Ask(prompt string) (string, error)
}

// ConsolePrompter prompts on an output stream and reads answers from an
// input stream.
type ConsolePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewConsolePrompter wraps in and out for interactive prompting.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{reader: bufio.NewReader(in), out: out}
}

// Ask prints prompt and returns the next input line, trimmed. A final
// unterminated line is returned before EOF surfaces on the next call.
func (p *ConsolePrompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Collector assembles a preference set by interviewing the user.
type Collector struct {
	catalog   *catalog.Catalog
	prompter  Prompter
	console   *console.Console
	threshold float64
}

// New builds a collector. A non-positive threshold falls back to the
// resolver default.
func New(cat *catalog.Catalog, prompter Prompter, cons *console.Console, threshold float64) *Collector {
	if threshold <= 0 {
		threshold = matcher.DefaultThreshold
	}
	return &Collector{catalog: cat, prompter: prompter, console: cons, threshold: threshold}
}

// Collect asks the fixed question sequence and returns the stated
// preferences. Input errors (including EOF) abort collection.
func (c *Collector) Collect() (models.PreferenceSet, error) {
	c.console.Greeting()

	prefs := models.PreferenceSet{}

	steps := []struct {
		attr   models.Attribute
		prompt string
	}{
		{models.AttrCategory, "What type of clothing are you looking for?"},
		{models.AttrOccasion, "What occasion are you shopping for?"},
		{models.AttrSeason, "Which season are you shopping for?"},
		{models.AttrColor, "Do you have a color preference?"},
		{models.AttrStyle, "What style are you interested in?"},
		{models.AttrGender, "Gender preference?"},
		{models.AttrSize, "What size are you looking for?"},
		{models.AttrMaterial, "Do you have a preferred material?"},
		{models.AttrCondition, "What's your minimum acceptable condition?"},
	}
	for _, step := range steps {
		options := c.catalog.DistinctValues(step.attr)
		if step.attr.IsList() {
			values, err := c.collectMultiChoice(step.prompt, options)
			if err != nil {
				return nil, err
			}
			prefs.SetList(step.attr, values)
			continue
		}
		value, err := c.collectChoice(step.prompt, options)
		if err != nil {
			return nil, err
		}
		prefs.SetScalar(step.attr, value)
	}

	priceRange, ok, err := c.collectPriceRange()
	if err != nil {
		return nil, err
	}
	if ok {
		prefs.SetRange(models.AttrPriceRange, priceRange)
	}

	log.Debug().Int("stated", len(prefs)).Msg("preferences collected")
	return prefs, nil
}

// collectChoice asks until the answer resolves to an option or the
// user skips with an empty answer.
func (c *Collector) collectChoice(prompt string, options []string) (string, error) {
	for {
		answer, err := c.prompter.Ask(choicePrompt(prompt, options, false))
		if err != nil {
			return "", err
		}
		if answer == "" {
			return "", nil
		}
		if match, ok := matcher.Resolve(answer, options, c.threshold); ok {
			return match, nil
		}
		c.console.Warningf("Sorry, %q isn't a valid option. Please try again.", answer)
	}
}

// collectMultiChoice accepts a comma-separated answer. Unresolved
// tokens are reported and dropped; if none resolve the question is
// asked again.
func (c *Collector) collectMultiChoice(prompt string, options []string) ([]string, error) {
	for {
		answer, err := c.prompter.Ask(choicePrompt(prompt, options, true))
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}

		var resolved []string
		seen := make(map[string]struct{})
		for _, token := range strings.Split(answer, ",") {
			token = strings.TrimSpace(token)
			match, ok := matcher.Resolve(token, options, c.threshold)
			if !ok {
				c.console.Warningf("Sorry, %q isn't a valid option.", token)
				continue
			}
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			resolved = append(resolved, match)
		}
		if len(resolved) > 0 {
			return resolved, nil
		}
		c.console.Warningf("Please try again with valid options.")
	}
}

// collectPriceRange asks for the budget. Any invalid input drops the
// whole price preference with a warning instead of re-asking.
func (c *Collector) collectPriceRange() (models.PriceRange, bool, error) {
	c.console.Printf("\nWhat's your budget range?\n")

	minAnswer, err := c.prompter.Ask("Minimum price ($ or press Enter to skip): $")
	if err != nil {
		return models.PriceRange{}, false, err
	}
	if minAnswer == "" {
		return models.PriceRange{}, false, nil
	}
	minPrice, perr := strconv.ParseFloat(minAnswer, 64)
	if perr != nil {
		c.console.Warningf("Invalid price format. Using no price filter.")
		return models.PriceRange{}, false, nil
	}

	maxAnswer, err := c.prompter.Ask("Maximum price ($ or press Enter for no max): $")
	if err != nil {
		return models.PriceRange{}, false, err
	}
	maxPrice := math.Inf(1)
	if maxAnswer != "" {
		maxPrice, perr = strconv.ParseFloat(maxAnswer, 64)
		if perr != nil {
			c.console.Warningf("Invalid price format. Using no price filter.")
			return models.PriceRange{}, false, nil
		}
	}

	if minPrice < 0 || (!math.IsInf(maxPrice, 1) && maxPrice < minPrice) {
		c.console.Warningf("Invalid price range. Using no price filter.")
		return models.PriceRange{}, false, nil
	}
	return models.PriceRange{Min: minPrice, Max: maxPrice}, true, nil
}

func choicePrompt(prompt string, options []string, multi bool) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(prompt)
	if len(options) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(options, ", "))
		b.WriteString("]")
	}
	if multi {
		b.WriteString(" (separate multiple choices with commas)")
	}
	b.WriteString(" (or press Enter to skip): ")
	return b.String()
}
