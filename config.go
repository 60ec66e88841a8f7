package adalex

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/amirrezaask/adalex/lexers"
)

type RGBA color.RGBA

func (c RGBA) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ANSI returns the 24-bit foreground escape sequence for c.
func (c RGBA) ANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

const ansiReset = "\x1b[0m"

// SyntaxColors maps token categories (lexers.Kind.Category) to colors.
type SyntaxColors map[string]RGBA

type Colors struct {
	Background   RGBA
	Foreground   RGBA
	SyntaxColors SyntaxColors
}

type Theme struct {
	Name   string
	Colors Colors
}

func (t Theme) String() string {
	return t.Name
}

type Config struct {
	Themes                   []Theme
	CurrentTheme             string
	TabSize                  int
	EnableSyntaxHighlighting bool
}

func (c *Config) String() string {
	colors := c.CurrentThemeColors()
	output := []string{
		fmt.Sprintf("theme %s", c.CurrentTheme),
		fmt.Sprintf("syntax %v", c.EnableSyntaxHighlighting),
		fmt.Sprintf("tab_size %d", c.TabSize),
		fmt.Sprintf("color.background %s", colors.Background),
		fmt.Sprintf("color.foreground %s", colors.Foreground),
	}
	var categories []string
	for category := range colors.SyntaxColors {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		output = append(output, fmt.Sprintf("color.%s %s", category, colors.SyntaxColors[category]))
	}
	return strings.Join(output, "\n")
}

func parseHexColor(v string) (out RGBA, err error) {
	if len(v) != 7 {
		return out, errors.New("hex color must be 7 characters")
	}
	if v[0] != '#' {
		return out, errors.New("hex color must start with '#'")
	}
	components := []*uint8{&out.R, &out.G, &out.B}
	for i, name := range []string{"red", "green", "blue"} {
		c, err := strconv.ParseUint(v[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return out, fmt.Errorf("%s component invalid", name)
		}
		*components[i] = uint8(c)
	}
	out.A = 255
	return out, nil
}

func mustParseHexColor(hex string) RGBA {
	c, err := parseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultConfig returns a fresh copy of the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		CurrentTheme: "Default",
		Themes: []Theme{
			{
				Name: "Default",
				Colors: Colors{
					Background: mustParseHexColor("#000000"),
					Foreground: mustParseHexColor("#a9a9a9"),
					SyntaxColors: SyntaxColors{
						lexers.CategoryIdent:   mustParseHexColor("#eedd82"),
						lexers.CategoryKeyword: mustParseHexColor("#cd950c"),
						lexers.CategoryString:  mustParseHexColor("#118a1a"),
						lexers.CategoryComment: mustParseHexColor("#118a1a"),
						lexers.CategoryNumber:  mustParseHexColor("#8cde94"),
						lexers.CategoryInvalid: mustParseHexColor("#ff0000"),
					},
				},
			},
			{
				Name: "Light",
				Colors: Colors{
					Background: mustParseHexColor("#ffffff"),
					Foreground: mustParseHexColor("#000000"),
					SyntaxColors: SyntaxColors{
						lexers.CategoryIdent:   mustParseHexColor("#1f1f1f"),
						lexers.CategoryKeyword: mustParseHexColor("#0000ff"),
						lexers.CategoryString:  mustParseHexColor("#a31515"),
						lexers.CategoryComment: mustParseHexColor("#008000"),
						lexers.CategoryNumber:  mustParseHexColor("#098658"),
						lexers.CategoryInvalid: mustParseHexColor("#ff0000"),
					},
				},
			},
		},
		TabSize:                  4,
		EnableSyntaxHighlighting: true,
	}
}

func (c *Config) CurrentThemeColors() *Colors {
	for i := range c.Themes {
		if c.Themes[i].Name == c.CurrentTheme {
			return &c.Themes[i].Colors
		}
	}
	return &c.Themes[0].Colors
}

func addToConfig(cfg *Config, key string, value string) error {
	switch {
	case key == "syntax":
		cfg.EnableSyntaxHighlighting = value == "true"
	case key == "theme":
		cfg.CurrentTheme = value
	case key == "tab_size":
		var err error
		cfg.TabSize, err = strconv.Atoi(value)
		if err != nil {
			return err
		}
	case strings.HasPrefix(key, "color."):
		c, err := parseHexColor(value)
		if err != nil {
			return err
		}
		colors := cfg.CurrentThemeColors()
		switch category := strings.TrimPrefix(key, "color."); category {
		case "background":
			colors.Background = c
		case "foreground":
			colors.Foreground = c
		default:
			colors.SyntaxColors[category] = c
		}
	}

	return nil
}

// ReadConfig reads a "key value" per line config file on top of the
// defaults. A missing file yields the defaults.
func ReadConfig(cfgPath string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(cfgPath); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	bs, err := os.ReadFile(cfgPath)
	if err != nil {
		return nil, err
	}
	if err := parseConfig(cfg, string(bs)); err != nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, err)
	}
	return cfg, nil
}

func parseConfig(cfg *Config, content string) error {
	for i, line := range strings.Split(content, "\n") {
		splitted := strings.SplitN(strings.TrimSpace(line), " ", 2)
		if len(splitted) != 2 || strings.HasPrefix(splitted[0], "#") {
			continue
		}
		key := strings.Trim(splitted[0], " \t\r")
		value := strings.Trim(splitted[1], " \t\r")
		if err := addToConfig(cfg, key, value); err != nil {
			return fmt.Errorf("line %d: %s: %w", i+1, key, err)
		}
	}
	return nil
}
