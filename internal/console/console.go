// file: internal/console/console.go
// version: 1.0.0
// guid: 9eb1d253-8fa6-4bdc-95e0-68a2c4f61759

// Package console renders the interactive UI. Diagnostics never print
// here; they belong to the log file.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/thriftpick/thriftpick/internal/models"
)

var titleCase = cases.Title(language.English)

// Console writes the user-facing output of a session. Every printer
// targets the injected writer so sessions can be scripted in tests.
type Console struct {
	out     io.Writer
	header  pterm.HeaderPrinter
	section pterm.SectionPrinter
	info    pterm.PrefixPrinter
	success pterm.PrefixPrinter
	warning pterm.PrefixPrinter
	errorp  pterm.PrefixPrinter
}

// New builds a console writing to out.
func New(out io.Writer) *Console {
	return &Console{
		out:     out,
		header:  *pterm.DefaultHeader.WithFullWidth().WithWriter(out),
		section: *pterm.DefaultSection.WithWriter(out),
		info:    *pterm.Info.WithWriter(out),
		success: *pterm.Success.WithWriter(out),
		warning: *pterm.Warning.WithWriter(out),
		errorp:  *pterm.Error.WithWriter(out),
	}
}

// Banner renders the application title.
func (c *Console) Banner() {
	c.header.Println("THRIFT SHOP CLOTHING ASSISTANT")
}

// MainMenu renders the title and the numbered action menu.
func (c *Console) MainMenu() {
	fmt.Fprintln(c.out)
	c.Banner()
	fmt.Fprintln(c.out, "1. Find clothing recommendations")
	fmt.Fprintln(c.out, "2. Browse all items")
	fmt.Fprintln(c.out, "3. View random item")
	fmt.Fprintln(c.out, "4. Exit")
}

// Greeting opens the preference interview.
func (c *Console) Greeting() {
	c.section.Println("Welcome to the Thrift Shop Assistant!")
	fmt.Fprintln(c.out, "I'll help you find the perfect thrifted item for your style.")
	fmt.Fprintln(c.out, "Let me ask you a few questions to understand what you're looking for.")
}

// Section renders a titled divider.
func (c *Console) Section(title string) {
	c.section.Println(title)
}

// ItemCard renders one item as a boxed card.
func (c *Console) ItemCard(item models.Item) {
	lines := []string{
		"Category: " + item.Category,
		"Color: " + item.Color,
		"Style: " + item.Style,
		"Season: " + strings.Join(item.Season, ", "),
		"Material: " + item.Material,
		"Occasion: " + strings.Join(item.Occasion, ", "),
		"Gender: " + item.Gender,
		"Size: " + item.Size,
		"Condition: " + item.Condition,
		fmt.Sprintf("Price: $%.2f", item.Price),
	}
	if item.Description != "" {
		lines = append(lines, "", "Description: "+item.Description)
	}
	pterm.DefaultBox.
		WithTitle(fmt.Sprintf("%s (ID: %s)", strings.ToUpper(item.Name), item.ID)).
		WithWriter(c.out).
		Println(strings.Join(lines, "\n"))
}

// PreferenceSummary lists the stated preferences in question order.
func (c *Console) PreferenceSummary(prefs models.PreferenceSet) {
	fmt.Fprintln(c.out, "\nBased on your preferences:")
	bullets := make([]pterm.BulletListItem, 0, len(prefs))
	for _, attr := range models.AllAttributes {
		pref, ok := prefs[attr]
		if !ok || pref.IsZero() {
			continue
		}
		var value string
		switch {
		case pref.Range != nil:
			value = pref.Range.String()
		case len(pref.List) > 0:
			value = strings.Join(pref.List, ", ")
		default:
			value = pref.Scalar
		}
		bullets = append(bullets, pterm.BulletListItem{
			Level: 0,
			Text:  fmt.Sprintf("%s: %s", titleCase.String(attr.Label()), value),
		})
	}
	_ = pterm.DefaultBulletList.WithItems(bullets).WithWriter(c.out).Render()
}

// Recommendations announces the results: a found-count banner, a recap
// of the stated preferences, then each item as a numbered card.
func (c *Console) Recommendations(items []models.Item, prefs models.PreferenceSet) {
	c.success.Printfln("FOUND %d RECOMMENDATIONS FOR YOU!", len(items))
	c.PreferenceSummary(prefs)
	for i, item := range items {
		fmt.Fprintf(c.out, "\n[Recommendation #%d]\n", i+1)
		c.ItemCard(item)
	}
}

// NoMatches apologizes and suggests loosening the search.
func (c *Console) NoMatches() {
	c.warning.Println("Sorry, I couldn't find any items that match your preferences.")
	fmt.Fprintln(c.out, "\nTips for finding more items:")
	bullets := []pterm.BulletListItem{
		{Level: 0, Text: "Try selecting multiple seasons or occasions"},
		{Level: 0, Text: "Be more flexible with color or style preferences"},
		{Level: 0, Text: "Consider browsing all items in a specific category"},
	}
	_ = pterm.DefaultBulletList.WithItems(bullets).WithWriter(c.out).Render()
}

// BrowseTable renders a compact inventory listing.
func (c *Console) BrowseTable(items []models.Item) {
	data := pterm.TableData{{"ID", "Name", "Category", "Size", "Condition", "Price"}}
	for _, item := range items {
		data = append(data, []string{
			item.ID,
			item.Name,
			item.Category,
			item.Size,
			item.Condition,
			fmt.Sprintf("$%.2f", item.Price),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).WithWriter(c.out).Render()
}

// Farewell prints the closing message. Every exit path ends here.
func (c *Console) Farewell() {
	c.success.Println("Thank you for using the Thrift Shop Assistant! Come back soon!")
}

// Interrupted prints the closing message for a user interrupt.
func (c *Console) Interrupted() {
	fmt.Fprintln(c.out)
	c.warning.Println("Program terminated by user. Goodbye!")
}

// Printf writes plain text to the console writer.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Infof prints an informational line.
func (c *Console) Infof(format string, args ...any) {
	c.info.Printfln(format, args...)
}

// Successf prints a success line.
func (c *Console) Successf(format string, args ...any) {
	c.success.Printfln(format, args...)
}

// Warningf prints a warning line.
func (c *Console) Warningf(format string, args ...any) {
	c.warning.Printfln(format, args...)
}

// Errorf prints an error line.
func (c *Console) Errorf(format string, args ...any) {
	c.errorp.Printfln(format, args...)
}
