package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"

	"github.com/daystram/reversi/board"
)

var (
	cfgFile = "reversi/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	Side1Color        int `json:"side1"`
	Side2Color        int `json:"side2"`
	LegalColor        int `json:"legal"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	Side1Disc rune `json:"side1"`
	Side2Disc rune `json:"side2"`
	Empty     rune `json:"empty"`
	Legal     rune `json:"legal"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	HighlightLegalMoves      bool          `json:"highlight_legal_moves"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

type PlayerConfig struct {
	Name string `json:"name"`
	// AI makes the side move greedily on its own.
	AI bool `json:"ai"`
}

type Config struct {
	Theme    Theme        `json:"theme"`
	Player1  PlayerConfig `json:"player1"`
	Player2  PlayerConfig `json:"player2"`
	LogLevel string       `json:"log_level"`
}

// InitConfig reads the user's config file over DefaultConfig. A missing file is
// not an error.
func InitConfig() (*Config, error) {
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err != nil {
		config := DefaultConfig
		return &config, nil
	}
	return Load(absPath)
}

// Load reads filePath over DefaultConfig and validates the result.
func Load(filePath string) (*Config, error) {
	config := DefaultConfig
	if err := readCfgFile(filePath, &config); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Side1Disc, c.Theme.Symbols.Side2Disc, c.Theme.Symbols.Empty, c.Theme.Symbols.Legal} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if c.Player1.Name == "" || c.Player2.Name == "" {
		return &InvalidConfig{"player names must not be empty"}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	return nil
}

func (c *Config) Player(s board.Side) PlayerConfig {
	if s == board.Side2 {
		return c.Player2
	}
	return c.Player1
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0o664)
}

func (c *Config) SaveTo(filePath string) error {
	return saveCfgFile(filePath, c, 0o664)
}

func saveCfgFile(filePath string, a any, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a any) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
