// Package menu writes status-bar menus in the xbar line protocol shared by
// xbar, SwiftBar and BitBar: the first line is the bar title, "---" starts
// the dropdown, and each line may carry "| key=value" display parameters.
package menu

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Item is one line of the menu. A zero-value Item with Separator set
// renders as "---".
type Item struct {
	Text      string
	Color     string
	Font      string
	Size      int
	Href      string
	Separator bool
}

// Sep returns a separator item.
func Sep() Item { return Item{Separator: true} }

// Text returns a plain item.
func Text(text string) Item { return Item{Text: text} }

// Menu is an ordered list of items; the first is the bar title.
type Menu []Item

func (it Item) params() []string {
	var out []string
	if it.Color != "" {
		out = append(out, "color="+quote(it.Color))
	}
	if it.Font != "" {
		out = append(out, "font="+quote(it.Font))
	}
	if it.Size > 0 {
		out = append(out, "size="+strconv.Itoa(it.Size))
	}
	if it.Href != "" {
		out = append(out, "href="+quote(it.Href))
	}
	return out
}

// String renders the item as a single protocol line without the newline.
func (it Item) String() string {
	if it.Separator {
		return "---"
	}
	// A bare pipe in the text would start the parameter section.
	text := strings.ReplaceAll(it.Text, "|", "¦")
	params := it.params()
	if len(params) == 0 {
		return text
	}
	return text + " | " + strings.Join(params, " ")
}

// Render writes the menu to w.
func (m Menu) Render(w io.Writer) error {
	for _, item := range m {
		if _, err := fmt.Fprintln(w, item.String()); err != nil {
			return fmt.Errorf("write menu: %w", err)
		}
	}
	return nil
}

func quote(value string) string {
	if strings.ContainsAny(value, " \t\"") {
		return strconv.Quote(value)
	}
	return value
}
