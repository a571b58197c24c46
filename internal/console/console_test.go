// file: internal/console/console_test.go
// version: 1.0.0
// guid: 0fc2e364-9ab7-4ced-a6f1-79b3d5a72860

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/thriftpick/thriftpick/internal/models"
)

func cardItem() models.Item {
	return models.Item{
		ID:          "TS001",
		Name:        "Vintage Denim Jacket",
		Category:    "Outerwear",
		Color:       "Blue",
		Style:       "Vintage",
		Season:      []string{"Spring", "Fall"},
		Material:    "Denim",
		Occasion:    []string{"Casual", "Streetwear"},
		Gender:      "Unisex",
		Size:        "M",
		Condition:   "Good",
		Price:       24.99,
		Description: "Classic 90s denim jacket.",
	}
}

func TestMainMenu(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).MainMenu()

	out := buf.String()
	for _, want := range []string{
		"THRIFT SHOP CLOTHING ASSISTANT",
		"1. Find clothing recommendations",
		"2. Browse all items",
		"3. View random item",
		"4. Exit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected menu to contain %q, got:\n%s", want, out)
		}
	}
}

func TestItemCard(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).ItemCard(cardItem())

	out := buf.String()
	for _, want := range []string{
		"VINTAGE DENIM JACKET (ID: TS001)",
		"Category: Outerwear",
		"Season: Spring, Fall",
		"Occasion: Casual, Streetwear",
		"Price: $24.99",
		"Description: Classic 90s denim jacket.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected card to contain %q, got:\n%s", want, out)
		}
	}
}

func TestItemCardWithoutDescription(t *testing.T) {
	var buf bytes.Buffer
	item := cardItem()
	item.Description = ""
	New(&buf).ItemCard(item)

	if strings.Contains(buf.String(), "Description:") {
		t.Error("Expected no description line for empty description")
	}
}

func TestPreferenceSummary(t *testing.T) {
	var buf bytes.Buffer
	prefs := models.PreferenceSet{}
	prefs.SetScalar(models.AttrCategory, "Outerwear")
	prefs.SetList(models.AttrSeason, []string{"Fall", "Winter"})
	prefs.SetRange(models.AttrPriceRange, models.PriceRange{Min: 0, Max: 50})

	New(&buf).PreferenceSummary(prefs)

	out := buf.String()
	for _, want := range []string{
		"Based on your preferences:",
		"Category: Outerwear",
		"Season: Fall, Winter",
		"Price Range: $0.00 to $50.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected summary to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPreferenceSummarySkipsAbsent(t *testing.T) {
	var buf bytes.Buffer
	prefs := models.PreferenceSet{}
	prefs.SetScalar(models.AttrColor, "Blue")

	New(&buf).PreferenceSummary(prefs)

	out := buf.String()
	if !strings.Contains(out, "Color: Blue") {
		t.Errorf("Expected stated preference in summary, got:\n%s", out)
	}
	if strings.Contains(out, "Category:") {
		t.Errorf("Expected absent attributes to be omitted, got:\n%s", out)
	}
}

func TestRecommendations(t *testing.T) {
	var buf bytes.Buffer
	prefs := models.PreferenceSet{}
	prefs.SetScalar(models.AttrCategory, "Outerwear")
	New(&buf).Recommendations([]models.Item{cardItem()}, prefs)

	out := buf.String()
	header := strings.Index(out, "FOUND 1 RECOMMENDATIONS FOR YOU!")
	recap := strings.Index(out, "Based on your preferences:")
	card := strings.Index(out, "[Recommendation #1]")
	if header == -1 || recap == -1 || card == -1 {
		t.Fatalf("Expected header, recap and numbered card, got:\n%s", out)
	}
	if !(header < recap && recap < card) {
		t.Errorf("Expected header before recap before card, got:\n%s", out)
	}
}

func TestNoMatches(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).NoMatches()

	out := buf.String()
	for _, want := range []string{
		"Sorry, I couldn't find any items that match your preferences.",
		"Tips for finding more items:",
		"Try selecting multiple seasons or occasions",
		"Be more flexible with color or style preferences",
		"Consider browsing all items in a specific category",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected no-match output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestBrowseTable(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).BrowseTable([]models.Item{cardItem()})

	out := buf.String()
	for _, want := range []string{"TS001", "Vintage Denim Jacket", "$24.99"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, out)
		}
	}
}

func TestFarewellAndInterrupted(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Farewell()
	if !strings.Contains(buf.String(), "Thank you for using the Thrift Shop Assistant! Come back soon!") {
		t.Errorf("Expected farewell message, got:\n%s", buf.String())
	}

	buf.Reset()
	c.Interrupted()
	if !strings.Contains(buf.String(), "Program terminated by user. Goodbye!") {
		t.Errorf("Expected interrupt message, got:\n%s", buf.String())
	}
}

func TestPrinterHelpers(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	c.Infof("loaded %d items", 15)
	c.Successf("saved to %s", "picks.json")
	c.Warningf("using default inventory")
	c.Errorf("write failed: %v", "disk full")
	c.Printf("[Item #%d]\n", 2)

	out := buf.String()
	for _, want := range []string{
		"loaded 15 items",
		"saved to picks.json",
		"using default inventory",
		"write failed: disk full",
		"[Item #2]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
