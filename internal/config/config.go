// Package config holds the settings shared by the interactive viewer and the
// resolve command.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	DefaultX           = "area"
	DefaultY           = "price"
	DefaultSplit       = 50
	DefaultClickRadius = 3
)

var (
	DefaultDimensions = []string{"price", "area", "rooms", "stories"}
	DefaultAliases    = []string{"rooms=bedrooms"}
)

var (
	ErrSplitRange       = errors.New("split must be between 20 and 80")
	ErrClickRadius      = errors.New("click-radius must be positive")
	ErrSameScatterAttrs = errors.New("x and y must differ")
)

// Config is decoded from flags, LINKVIEW_* variables and an optional TOML
// file, in that priority order.
type Config struct {
	Data        string   `toml:"data"`
	X           string   `toml:"x"`
	Y           string   `toml:"y"`
	Dimensions  []string `toml:"dimensions"`
	Alias       []string `toml:"alias"`
	Split       int      `toml:"split"`
	ClickRadius int      `toml:"click-radius"`
	LogFile     string   `toml:"log-file"`
}

func NewConfig() *Config {
	return &Config{
		X:           DefaultX,
		Y:           DefaultY,
		Dimensions:  append([]string(nil), DefaultDimensions...),
		Alias:       append([]string(nil), DefaultAliases...),
		Split:       DefaultSplit,
		ClickRadius: DefaultClickRadius,
	}
}

// Flags registers every setting on fs, with the current values as defaults.
func (c *Config) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.Data, "data", "d", c.Data, "CSV or JSON file to open on start.")
	fs.StringVar(&c.X, "x", c.X, "Scatter x attribute.")
	fs.StringVar(&c.Y, "y", c.Y, "Scatter y attribute.")
	fs.StringSliceVar(&c.Dimensions, "dimensions", c.Dimensions, "Parallel-coordinates axes, in order.")
	fs.StringSliceVar(&c.Alias, "alias", c.Alias, "Extra attribute names as name=column.")
	fs.IntVar(&c.Split, "split", c.Split, "Scatter width as a percentage of the plot area.")
	fs.IntVar(&c.ClickRadius, "click-radius", c.ClickRadius, "Scatter click tolerance in braille dots.")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Write logs to this file.")
}

// Validate that the settings make sense together.
func (c *Config) Validate() error {
	if c.Split < 20 || c.Split > 80 {
		return ErrSplitRange
	}
	if c.ClickRadius < 1 {
		return ErrClickRadius
	}
	if c.X != "" && c.X == c.Y {
		return ErrSameScatterAttrs
	}
	_, err := c.Aliases()
	return err
}

// Aliases parses the alias list into exposed name -> source column.
func (c *Config) Aliases() (map[string]string, error) {
	out := make(map[string]string, len(c.Alias))
	for _, a := range c.Alias {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		name, col, ok := strings.Cut(a, "=")
		name, col = strings.TrimSpace(name), strings.TrimSpace(col)
		if !ok || name == "" || col == "" {
			return nil, errors.Errorf("alias %q: want name=column", a)
		}
		if prev, dup := out[name]; dup && prev != col {
			return nil, errors.Errorf("alias %q: %s already maps to %s", a, name, prev)
		}
		out[name] = col
	}
	return out, nil
}
