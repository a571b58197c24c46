// file: internal/session/session_test.go
// version: 1.0.0
// guid: c8e1a5d2-9f47-4b06-8a3e-6d0b2c7f4915

package session

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thriftpick/thriftpick/internal/catalog"
	"github.com/thriftpick/thriftpick/internal/collect"
	"github.com/thriftpick/thriftpick/internal/console"
	"github.com/thriftpick/thriftpick/internal/models"
	"github.com/thriftpick/thriftpick/internal/recommend"
)

// scriptedPrompter feeds canned answers and records every prompt. An
// exhausted script reports EOF like a closed stdin.
type scriptedPrompter struct {
	answers []string
	prompts []string
	next    int
}

func (s *scriptedPrompter) Ask(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.next >= len(s.answers) {
		return "", io.EOF
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

// newScriptedSession wires a real collector and engine over cat, with
// all input scripted and all output captured.
func newScriptedSession(cat *catalog.Catalog, exportPath string, answers ...string) (*Session, *scriptedPrompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cons := console.New(out)
	prompter := &scriptedPrompter{answers: answers}
	s := New(Config{
		Catalog:    cat,
		Engine:     recommend.New(),
		Console:    cons,
		Prompter:   prompter,
		Collector:  collect.New(cat, prompter, cons, 0),
		ExportPath: exportPath,
	})
	return s, prompter, out
}

func TestSessionExitImmediately(t *testing.T) {
	s, prompter, out := newScriptedSession(catalog.Default(), "", "4")

	require.NoError(t, s.Run())
	assert.Equal(t, []string{"\nEnter your choice (1-4): "}, prompter.prompts)
	assert.Contains(t, out.String(), "1. Find clothing recommendations")
	assert.Contains(t, out.String(), "Thank you for using the Thrift Shop Assistant! Come back soon!")
}

// TestSessionInvalidChoiceReprompts checks that a bad menu answer warns
// and goes straight back to the menu, skipping the continue question.
func TestSessionInvalidChoiceReprompts(t *testing.T) {
	s, prompter, out := newScriptedSession(catalog.Default(), "", "9", "4")

	require.NoError(t, s.Run())
	require.Len(t, prompter.prompts, 2)
	assert.Equal(t, "\nEnter your choice (1-4): ", prompter.prompts[1])
	assert.Contains(t, out.String(), "Invalid choice. Please try again.")
	assert.NotContains(t, out.String(), "Would you like to do something else?")
}

// TestSessionEOFExitsCleanly treats a closed input stream as a normal
// farewell exit rather than an error.
func TestSessionEOFExitsCleanly(t *testing.T) {
	s, _, out := newScriptedSession(catalog.Default(), "")

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Thank you for using the Thrift Shop Assistant! Come back soon!")
}

// TestSessionRecommendFlow walks the whole happy path: interview,
// ranking, presentation and export.
func TestSessionRecommendFlow(t *testing.T) {
	exportPath := filepath.Join(t.TempDir(), "recs.json")
	s, _, out := newScriptedSession(catalog.Default(), exportPath,
		"1",         // menu: recommendations
		"outerwear", // category
		"",          // occasion
		"fall",      // season
		"",          // color
		"",          // style
		"",          // gender
		"",          // size
		"",          // material
		"",          // condition
		"0",         // minimum price
		"50",        // maximum price
		"y",         // save to file
		"",          // filename, use default
		"n",         // do something else
	)

	require.NoError(t, s.Run())

	text := out.String()
	assert.Contains(t, text, "FOUND 3 RECOMMENDATIONS FOR YOU!")
	assert.Contains(t, text, "Based on your preferences:")
	assert.Contains(t, text, "[Recommendation #3]")
	assert.Contains(t, text, "VINTAGE DENIM JACKET")
	assert.NotContains(t, text, "Floral Summer Dress")
	assert.Contains(t, text, "Recommendations saved to "+exportPath)

	data, err := os.ReadFile(exportPath)
	require.NoError(t, err)
	var saved []models.Item
	require.NoError(t, json.Unmarshal(data, &saved))
	require.Len(t, saved, 3)
	assert.Equal(t, "TS001", saved[0].ID)
	assert.Equal(t, "TS003", saved[1].ID)
	assert.Equal(t, "TS006", saved[2].ID)
}

// TestSessionRecommendNoMatches verifies the sorry message and that no
// export is offered for an empty result.
func TestSessionRecommendNoMatches(t *testing.T) {
	s, _, out := newScriptedSession(catalog.Default(), "",
		"1",
		// every question skipped, then a budget no item reaches
		"", "", "", "", "", "", "", "", "",
		"2000",
		"3000",
		"n",
	)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Sorry, I couldn't find any items that match your preferences.")
	assert.NotContains(t, out.String(), "Would you like to save these recommendations")
}

// TestSessionExportDeclined answers "n" to the save question and checks
// the filename prompt never appears, then loops back to the menu.
func TestSessionExportDeclined(t *testing.T) {
	s, prompter, out := newScriptedSession(catalog.Default(), "",
		"1",
		"outerwear",
		"", "", "", "", "", "", "", "",
		"",  // minimum price skipped
		"n", // save to file
		"y", // do something else
		"4",
	)

	require.NoError(t, s.Run())
	for _, prompt := range prompter.prompts {
		assert.NotContains(t, prompt, "Enter filename")
	}
	assert.Equal(t, 2, strings.Count(out.String(), "1. Find clothing recommendations"))
}

// TestSessionExportFailureContinues reports a failed write and keeps
// the session alive.
func TestSessionExportFailureContinues(t *testing.T) {
	s, _, out := newScriptedSession(catalog.Default(), "",
		"1",
		"outerwear",
		"", "", "", "", "", "", "", "",
		"",          // minimum price skipped
		"y",         // save to file
		t.TempDir(), // filename is an existing directory, write fails
		"n",         // do something else
	)

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Error saving recommendations:")
	assert.Contains(t, out.String(), "Thank you for using the Thrift Shop Assistant! Come back soon!")
}

// TestSessionBrowsePauses pages the 15-item default inventory with a
// pause after every third card except the last.
func TestSessionBrowsePauses(t *testing.T) {
	s, prompter, out := newScriptedSession(catalog.Default(), "",
		"2", "", "", "", "", "n",
	)

	require.NoError(t, s.Run())
	require.Len(t, prompter.prompts, 6)

	pauses := 0
	for _, prompt := range prompter.prompts {
		if prompt == "\nPress Enter to continue viewing items..." {
			pauses++
		}
	}
	assert.Equal(t, 4, pauses)
	assert.Contains(t, out.String(), "[Item #1]")
	assert.Contains(t, out.String(), "[Item #15]")
	assert.Contains(t, out.String(), "All Items in Inventory")
}

func TestSessionRandomItem(t *testing.T) {
	cat := catalog.New(catalog.Default().Items()[:1], "test")
	s, _, out := newScriptedSession(cat, "", "3", "n")

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "Random Item Showcase")
	assert.Contains(t, out.String(), "VINTAGE DENIM JACKET")
}

func TestSessionRandomItemEmptyCatalog(t *testing.T) {
	s, _, out := newScriptedSession(catalog.New(nil, "test"), "", "3", "n")

	require.NoError(t, s.Run())
	assert.Contains(t, out.String(), "The inventory is empty.")
}
