// Package menu lists the key bindings for the help screen.
package menu

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "tilewalk/pkg/engine/input"
)

// BindingItem is one line of the bindings list.
type BindingItem struct {
	Key engineinput.Key
}

// GetLabel returns the display label for this binding.
func (b BindingItem) GetLabel() string {
	codes := engineinput.GetBindingsByKey()[b.Key]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%-6s %s", engineinput.KeyName(b.Key)+":", codeText)
}

// GetMenuItems returns the bindings in display order.
func GetMenuItems() []BindingItem {
	keys := []engineinput.Key{
		engineinput.KeyUp,
		engineinput.KeyDown,
		engineinput.KeyLeft,
		engineinput.KeyRight,
		engineinput.KeyExit,
		engineinput.KeyBack,
	}
	items := make([]BindingItem, len(keys))
	for i, k := range keys {
		items[i] = BindingItem{Key: k}
	}
	return items
}

// FormatBindings renders the bindings as a titled list.
func FormatBindings() string {
	var b strings.Builder
	b.WriteString(gotext.Get("BINDINGS_TITLE"))
	b.WriteString("\n")
	for _, item := range GetMenuItems() {
		b.WriteString("  ")
		b.WriteString(item.GetLabel())
		b.WriteString("\n")
	}
	return b.String()
}
