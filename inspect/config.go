package inspect

// Config configures the inspector Model.
type Config struct {
	// Initial text for the internal reader.
	Text string

	// Rendering options. The zero Style renders plain text; see DefaultStyle.
	Style  Style
	KeyMap KeyMap // zero value means DefaultKeyMap
}
