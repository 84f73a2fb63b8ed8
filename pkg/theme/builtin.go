package theme

// thBirdTheme returns the light brand theme: white page, black buttons,
// neutral cards and the pink/blue/orange link accents.
func thBirdTheme() Theme {
	return Theme{
		Name:       "bird",
		Background: "#ffffff",
		Foreground: "#171717",
		Muted:      "#6b7280",
		Subtle:     "#9ca3af",

		Surface:    "#fafafa",
		SurfaceAlt: "#f5f5f5",
		Border:     "#e5e5e5",

		Accent:     "#000000",
		AccentText: "#ffffff",
		Focus:      "#ec4899",

		Pink:    "#ec4899",
		Blue:    "#3b82f6",
		Orange:  "#f97316",
		Yellow:  "#EBB343",
		Red:     "#D65239",
		Overlay: "#0a0a0a",
	}
}

// thNightTheme returns the dark variant for terminals with a dark
// background.
func thNightTheme() Theme {
	return Theme{
		Name:       "night",
		Background: "#0a0a0a",
		Foreground: "#f5f5f5",
		Muted:      "#a3a3a3",
		Subtle:     "#737373",

		Surface:    "#171717",
		SurfaceAlt: "#262626",
		Border:     "#404040",

		Accent:     "#ffffff",
		AccentText: "#000000",
		Focus:      "#f472b6",

		Pink:    "#f472b6",
		Blue:    "#60a5fa",
		Orange:  "#fb923c",
		Yellow:  "#EBB343",
		Red:     "#D65239",
		Overlay: "#000000",
	}
}

// thMonoTheme returns a grayscale theme for low-color terminals and
// screenshots.
func thMonoTheme() Theme {
	return Theme{
		Name:       "mono",
		Background: "#ffffff",
		Foreground: "#000000",
		Muted:      "#555555",
		Subtle:     "#888888",

		Surface:    "#f0f0f0",
		SurfaceAlt: "#e0e0e0",
		Border:     "#bbbbbb",

		Accent:     "#000000",
		AccentText: "#ffffff",
		Focus:      "#000000",

		Pink:    "#333333",
		Blue:    "#333333",
		Orange:  "#333333",
		Yellow:  "#999999",
		Red:     "#666666",
		Overlay: "#111111",
	}
}
