package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		HighlightLegalMoves:      true,
		Colors: ConfigColors{
			BoardColor:        28,
			BoardColorAlt:     34,
			Side1Color:        232,
			Side2Color:        255,
			LegalColor:        22,
			CursorColorBG:     4,
			LastPlayedColorBG: 3,
		},
		Symbols: ConfigSymbols{
			Side1Disc: '●',
			Side2Disc: '●',
			Empty:     ' ',
			Legal:     '·',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Player1: PlayerConfig{
			Name: "Player 1",
		},
		Player2: PlayerConfig{
			Name: "Player 2",
		},
		LogLevel: "info",
	}
}
