package styles

// DefaultTheme is the baseline indigo storefront palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#111827",
		Panel:      "#1F2937",
		Text:       "#F9FAFB",
		TextMuted:  "#9CA3AF",
		Border:     "#374151",
		Accent:     "#4F46E5",
		AccentText: "#FFFFFF",
		Focus:      "#818CF8",
		Success:    "#16A34A",
		Warning:    "#D29922",
		Error:      "#DC2626",
		Info:       "#A5B4FC",
		Price:      "#F9FAFB",
		Rating:     "#FACC15",
	},
}
