package model

// ColorOption describes one entry of the fixed event palette. Background and
// text values are the CSS colors the month grid renders with.
type ColorOption struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Background string `json:"bg"`
	Text       string `json:"text"`
}

// ColorOptions is the palette, in display order. The first entry is the
// fallback for unknown tokens.
var ColorOptions = []ColorOption{
	{ID: "gray", Name: "회색", Background: "#e5e5e5", Text: "#333"},
	{ID: "yellow", Name: "노란색", Background: "#fff9c4", Text: "#333"},
	{ID: "green", Name: "초록색", Background: "#c8e6c9", Text: "#333"},
	{ID: "blue", Name: "파란색", Background: "#bbdefb", Text: "#333"},
	{ID: "orange", Name: "주황색", Background: "#ffe0b2", Text: "#333"},
	{ID: "pink", Name: "분홍색", Background: "#f8bbd0", Text: "#333"},
	{ID: "dark-blue", Name: "진한 파란색", Background: "#90caf9", Text: "#333"},
	{ID: "light-gray", Name: "연한 회색", Background: "#f5f5f5", Text: "#333"},
	{ID: "light-green", Name: "연한 초록색", Background: "#dcedc8", Text: "#333"},
}

// legacyColors maps tokens written by earlier versions to current palette ids.
var legacyColors = map[string]string{
	"grey":       "gray",
	"light-grey": "light-gray",
	"lightgray":  "light-gray",
	"lightgreen": "light-green",
	"navy":       "dark-blue",
	"darkblue":   "dark-blue",
	"sky-blue":   "blue",
}

// DefaultColor returns the palette's fallback token.
func DefaultColor() string {
	return ColorOptions[0].ID
}

// NormalizeColor resolves any stored or submitted color token to a current
// palette id. Legacy tokens go through the compatibility map; anything still
// unknown falls back to the first palette entry. Never an error.
func NormalizeColor(token string) string {
	if mapped, ok := legacyColors[token]; ok {
		token = mapped
	}
	for _, opt := range ColorOptions {
		if opt.ID == token {
			return token
		}
	}
	return DefaultColor()
}

// ColorByID returns the palette entry for a token, after normalization.
func ColorByID(token string) ColorOption {
	token = NormalizeColor(token)
	for _, opt := range ColorOptions {
		if opt.ID == token {
			return opt
		}
	}
	return ColorOptions[0]
}
