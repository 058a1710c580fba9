package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

var (
	cfgFile = "boardsketch/config.json"
)

// Environment variables that override the config file.
const (
	EnvExportDir = "BOARDSKETCH_EXPORT_DIR"
	EnvFPS       = "BOARDSKETCH_FPS"
	EnvLogLevel  = "BOARDSKETCH_LOG_LEVEL"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// ThemeColors are hex color strings ("#rrggbb" or "#rrggbbaa").
type ThemeColors struct {
	Background string `json:"background"`
	Line       string `json:"line"`
	Black      string `json:"black"`
	White      string `json:"white"`
	Outline    string `json:"outline"`
	Active     string `json:"active"`
}

type Theme struct {
	Colors     ThemeColors `json:"colors"`
	HoverAlpha float64     `json:"hover_alpha"`
	StoneGap   float64     `json:"stone_gap"`
}

type RenderConfig struct {
	FPS int `json:"fps"`
}

type ExportConfig struct {
	Dir      string `json:"dir"`
	Filename string `json:"filename"`
	SGF      bool   `json:"sgf"`
}

type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Config struct {
	Theme  Theme        `json:"theme"`
	Render RenderConfig `json:"render"`
	Export ExportConfig `json:"export"`
	Log    LogConfig    `json:"log"`
}

// InitConfig builds the configuration from the defaults, the config file
// found in the XDG config directories, a .env file in the working directory
// and the environment, in that order.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	if err := config.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// ApplyEnv overrides fields from environment variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvExportDir)); v != "" {
		c.Export.Dir = v
	}
	if v := strings.TrimSpace(getenv(EnvFPS)); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			return &InvalidConfig{fmt.Sprintf("%s must be an integer, got %q", EnvFPS, v)}
		}
		c.Render.FPS = fps
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.Log.Level = v
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Render.FPS < 1 || c.Render.FPS > 120 {
		return &InvalidConfig{fmt.Sprintf("render.fps must be between 1 and 120, got %d", c.Render.FPS)}
	}
	if c.Theme.HoverAlpha < 0 || c.Theme.HoverAlpha > 1 {
		return &InvalidConfig{"theme.hover_alpha must be between 0 and 1"}
	}
	if c.Theme.StoneGap < 0 {
		return &InvalidConfig{"theme.stone_gap must not be negative"}
	}
	colors := []struct{ name, hex string }{
		{"background", c.Theme.Colors.Background},
		{"line", c.Theme.Colors.Line},
		{"black", c.Theme.Colors.Black},
		{"white", c.Theme.Colors.White},
		{"outline", c.Theme.Colors.Outline},
		{"active", c.Theme.Colors.Active},
	}
	for _, col := range colors {
		if !validHex(col.hex) {
			return &InvalidConfig{fmt.Sprintf("theme.colors.%s is not a hex color: %q", col.name, col.hex)}
		}
	}
	name := c.Export.Filename
	if name == "" || strings.ContainsAny(name, `/\`) {
		return &InvalidConfig{fmt.Sprintf("export.filename must be a plain file name, got %q", name)}
	}
	return nil
}

// validHex accepts "#rgb", "#rrggbb" and "#rrggbbaa", with or without '#'.
func validHex(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 3 && len(s) != 6 && len(s) != 8 {
		return false
	}
	_, err := strconv.ParseUint(s, 16, 32)
	return err == nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(filePath, jsonData, perm); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
