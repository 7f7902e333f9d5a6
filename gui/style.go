package gui

// Style defines colors and metrics for the overlay widgets.
type Style struct {
	TextColor      uint32
	TextMutedColor uint32

	PanelColor       uint32
	PanelBorderColor uint32
	PanelHeaderColor uint32

	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	PadBgColor     uint32
	PadGridColor   uint32
	PadMarkerColor uint32

	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	FontScale    float32
	ItemSpacing  float32
	PanelPadding float32
	LabelWidth   float32 // Fixed label column so controls line up
	BorderSize   float32
}

// DefaultStyle returns a dark, semi-transparent pane style.
func DefaultStyle() Style {
	return Style{
		TextColor:      RGBA(220, 221, 226, 255),
		TextMutedColor: RGBA(140, 142, 150, 255),

		PanelColor:       RGBA(40, 41, 46, 235),
		PanelBorderColor: RGBA(70, 72, 80, 255),
		PanelHeaderColor: RGBA(55, 56, 63, 255),

		SliderTrackColor:  RGBA(28, 29, 33, 255),
		SliderFillColor:   RGBA(90, 110, 150, 255),
		SliderGrabColor:   RGBA(170, 172, 180, 255),
		SliderGrabHovered: RGBA(200, 202, 210, 255),
		SliderGrabActive:  RGBA(240, 241, 245, 255),

		PadBgColor:     RGBA(28, 29, 33, 255),
		PadGridColor:   RGBA(60, 62, 70, 255),
		PadMarkerColor: RGBA(240, 241, 245, 255),

		ButtonColor:        RGBA(62, 64, 72, 255),
		ButtonHoveredColor: RGBA(78, 80, 90, 255),
		ButtonActiveColor:  RGBA(90, 110, 150, 255),

		FontScale:    1,
		ItemSpacing:  6,
		PanelPadding: 8,
		LabelWidth:   100,
		BorderSize:   1,
	}
}
