// internal/ui/model_helpers.go
// Small helper functions used across the UI layer
package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// matchKey returns true if the key message matches any of the provided key strings
func matchKey(msg tea.KeyMsg, keys []string) bool {
	keyStr := msg.String()
	for _, k := range keys {
		if k == keyStr {
			return true
		}
	}
	return false
}

// firstKey returns the first binding or fallback
func firstKey(bindings []string, fallback string) string {
	if len(bindings) > 0 {
		return bindings[0]
	}
	return fallback
}

// limitString truncates s to maxLen runes by replacing the middle with "..."
func limitString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen || maxLen < 5 {
		return s
	}
	half := (maxLen - 3) / 2
	return string(r[:half]) + "..." + string(r[len(r)-half:])
}

// tableHeight is the number of rows the table may use given the chrome
func tableHeight(total, chrome int) int {
	// header, header border, footer and outer borders
	const tableChrome = 6
	h := total - chrome - tableChrome
	if h < 1 {
		return 1
	}
	return h
}
