// file: internal/session/session.go
// version: 1.0.0
// guid: 7b2f4c86-1e5a-4d39-8c07-f3a9d5e1b264

// Package session drives the interactive main-menu loop: collect
// preferences, rank the catalog, browse, or showcase a random item.
package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/thriftpick/thriftpick/internal/catalog"
	"github.com/thriftpick/thriftpick/internal/collect"
	"github.com/thriftpick/thriftpick/internal/console"
	"github.com/thriftpick/thriftpick/internal/models"
	"github.com/thriftpick/thriftpick/internal/recommend"
)

// PreferenceCollector yields one interview's worth of preferences.
type PreferenceCollector interface {
	Collect() (models.PreferenceSet, error)
}

// Config carries the collaborators a Session wires together.
type Config struct {
	Catalog    *catalog.Catalog
	Engine     *recommend.Engine
	Console    *console.Console
	Prompter   collect.Prompter
	Collector  PreferenceCollector
	ExportPath string
	Limit      int
}

// Session runs the interactive protocol against one loaded catalog.
type Session struct {
	catalog    *catalog.Catalog
	engine     *recommend.Engine
	console    *console.Console
	prompter   collect.Prompter
	collector  PreferenceCollector
	exportPath string
	limit      int
}

// New builds a session. An empty export path falls back to the default
// export filename.
func New(cfg Config) *Session {
	if cfg.ExportPath == "" {
		cfg.ExportPath = catalog.DefaultExportName
	}
	return &Session{
		catalog:    cfg.Catalog,
		engine:     cfg.Engine,
		console:    cfg.Console,
		prompter:   cfg.Prompter,
		collector:  cfg.Collector,
		exportPath: cfg.ExportPath,
		limit:      cfg.Limit,
	}
}

// Run drives the main menu until the user exits. An invalid choice
// re-prompts without counting as an error; after actions 1-3 a negative
// continue answer exits the same way as choosing 4.
func (s *Session) Run() error {
	for {
		s.console.MainMenu()
		choice, err := s.prompter.Ask("\nEnter your choice (1-4): ")
		if err != nil {
			return s.finish(err)
		}

		switch choice {
		case "1":
			if err := s.recommend(); err != nil {
				return s.finish(err)
			}
		case "2":
			if err := s.browse(); err != nil {
				return s.finish(err)
			}
		case "3":
			s.random()
		case "4":
			s.console.Farewell()
			return nil
		default:
			s.console.Warningf("Invalid choice. Please try again.")
			continue
		}

		again, err := s.prompter.Ask("\nWould you like to do something else? (y/n): ")
		if err != nil {
			return s.finish(err)
		}
		if !strings.HasPrefix(strings.ToLower(again), "y") {
			s.console.Farewell()
			return nil
		}
	}
}

// finish maps end-of-input to a clean farewell exit. Anything else is a
// real error for the caller.
func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.console.Farewell()
		return nil
	}
	return err
}

// recommend runs one interview, ranks the catalog against it and
// presents the results, offering an export when there are any.
func (s *Session) recommend() error {
	id := ulid.Make()
	prefs, err := s.collector.Collect()
	if err != nil {
		return err
	}

	ranked := s.engine.Rank(s.catalog.Items(), prefs, s.limit)
	log.Info().
		Str("session", id.String()).
		Int("preferences", len(prefs)).
		Int("results", len(ranked)).
		Msg("recommendation round finished")

	if len(ranked) == 0 {
		s.console.NoMatches()
		return nil
	}
	s.console.Recommendations(ranked, prefs)
	return s.offerExport(ranked)
}

// offerExport asks whether to save the ranked items to a file. A write
// failure is reported and the session continues.
func (s *Session) offerExport(items []models.Item) error {
	answer, err := s.prompter.Ask("\nWould you like to save these recommendations to a file? (y/n): ")
	if err != nil {
		return err
	}
	if !strings.HasPrefix(strings.ToLower(answer), "y") {
		return nil
	}

	name, err := s.prompter.Ask(fmt.Sprintf("Enter filename (%s): ", s.exportPath))
	if err != nil {
		return err
	}
	if name == "" {
		name = s.exportPath
	}

	if err := catalog.Export(items, name); err != nil {
		log.Error().Err(err).Str("path", name).Msg("saving recommendations failed")
		s.console.Errorf("Error saving recommendations: %v", err)
		return nil
	}
	s.console.Successf("Recommendations saved to %s", name)
	return nil
}

// browse shows every inventory item as a card, pausing after each
// third one so the listing stays readable.
func (s *Session) browse() error {
	s.console.Section("All Items in Inventory")
	items := s.catalog.Items()
	for i, item := range items {
		s.console.Printf("\n[Item #%d]\n", i+1)
		s.console.ItemCard(item)

		if (i+1)%3 == 0 && i+1 < len(items) {
			if _, err := s.prompter.Ask("\nPress Enter to continue viewing items..."); err != nil {
				return err
			}
		}
	}
	return nil
}

// random showcases one randomly chosen item.
func (s *Session) random() {
	item, ok := s.catalog.Random()
	if !ok {
		s.console.Warningf("The inventory is empty.")
		return
	}
	s.console.Section("Random Item Showcase")
	s.console.ItemCard(item)
}
