package icons

const (
	// Record icons
	IconLandmark = "🏛"
	IconPin      = "📍"

	// Utility Icons
	IconSuccess   = "✓"
	IconError     = "⚠"
	IconDownload  = "⬇"
	IconSeparator = " · "
)

// ForKind returns the row icon for a record category
func ForKind(landmark bool) string {
	if landmark {
		return IconLandmark
	}
	return IconPin
}
