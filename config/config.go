// Package config loads rangehighlight settings from a config file, a .env
// file and RANGEHIGHLIGHT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	rh "github.com/phanxgames/rangehighlight"
	"github.com/phanxgames/rangehighlight/logging"
)

// EnvPrefix prefixes every environment override, e.g.
// RANGEHIGHLIGHT_SHOW_ALL_RANGES_KEY or RANGEHIGHLIGHT_LOG_LEVEL.
const EnvPrefix = "RANGEHIGHLIGHT"

// File is everything a config file can hold.
type File struct {
	Config rh.Config
	Log    logging.Options
}

// raw mirrors the file layout. Tints and keybinds are strings; an empty tint
// keeps the default.
type raw struct {
	ShowAllRangesKey      string `mapstructure:"show_all_ranges_key"`
	ShowSprinklerRangeKey string `mapstructure:"show_sprinkler_range_key"`
	ShowScarecrowRangeKey string `mapstructure:"show_scarecrow_range_key"`
	ShowBeehouseRangeKey  string `mapstructure:"show_beehouse_range_key"`
	ShowJunimoRangeKey    string `mapstructure:"show_junimo_range_key"`
	ShowBombRangeKey      string `mapstructure:"show_bomb_range_key"`

	JunimoRangeTint    string `mapstructure:"junimo_range_tint"`
	SprinklerRangeTint string `mapstructure:"sprinkler_range_tint"`
	ScarecrowRangeTint string `mapstructure:"scarecrow_range_tint"`
	BeehouseRangeTint  string `mapstructure:"beehouse_range_tint"`
	BombRangeTint      string `mapstructure:"bomb_range_tint"`

	ShowSprinklerRange bool `mapstructure:"show_sprinkler_range"`
	ShowScarecrowRange bool `mapstructure:"show_scarecrow_range"`
	ShowBeehouseRange  bool `mapstructure:"show_beehouse_range"`
	ShowJunimoRange    bool `mapstructure:"show_junimo_range"`
	ShowBombRange      bool `mapstructure:"show_bomb_range"`

	ShowOtherRangesWhenHeld   bool `mapstructure:"show_other_ranges_when_held"`
	HighlightBuildingsOnHover bool `mapstructure:"highlight_buildings_on_hover"`
	TickInterval              int  `mapstructure:"tick_interval"`
	ClearBeforeBlockCheck     bool `mapstructure:"clear_before_block_check"`
	Debug                     bool `mapstructure:"debug"`

	Log logging.Options `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	d := rh.DefaultConfig()
	v.SetDefault("show_all_ranges_key", d.ShowAllRangesKey.String())
	v.SetDefault("show_sprinkler_range_key", d.ShowSprinklerRangeKey.String())
	v.SetDefault("show_scarecrow_range_key", d.ShowScarecrowRangeKey.String())
	v.SetDefault("show_beehouse_range_key", d.ShowBeehouseRangeKey.String())
	v.SetDefault("show_junimo_range_key", d.ShowJunimoRangeKey.String())
	v.SetDefault("show_bomb_range_key", d.ShowBombRangeKey.String())

	for _, k := range []string{"junimo_range_tint", "sprinkler_range_tint", "scarecrow_range_tint", "beehouse_range_tint", "bomb_range_tint"} {
		v.SetDefault(k, "")
	}

	v.SetDefault("show_sprinkler_range", d.ShowSprinklerRange)
	v.SetDefault("show_scarecrow_range", d.ShowScarecrowRange)
	v.SetDefault("show_beehouse_range", d.ShowBeehouseRange)
	v.SetDefault("show_junimo_range", d.ShowJunimoRange)
	v.SetDefault("show_bomb_range", d.ShowBombRange)
	v.SetDefault("show_other_ranges_when_held", d.ShowOtherRangesWhenHeld)
	v.SetDefault("highlight_buildings_on_hover", d.HighlightBuildingsOnHover)
	v.SetDefault("tick_interval", d.TickInterval)
	v.SetDefault("clear_before_block_check", d.ClearBeforeBlockCheck)
	v.SetDefault("debug", d.Debug)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.stderr", false)
	v.SetDefault("log.json", false)
}

// Load reads path (toml, yaml or json by extension) and returns the resolved
// Config. An empty path or a missing file yields the defaults plus any
// environment overrides.
func Load(path string) (rh.Config, error) {
	f, err := LoadFile(path, ".env")
	if err != nil {
		return rh.Config{}, err
	}
	return f.Config, nil
}

// LoadFile is Load with an explicit .env file (empty to skip) that also
// returns the log options.
func LoadFile(path, envFile string) (*File, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var r raw
	if err := v.Unmarshal(&r); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg, err := r.resolve()
	if err != nil {
		return nil, err
	}
	return &File{Config: cfg, Log: r.Log}, nil
}

func (r *raw) resolve() (rh.Config, error) {
	c := rh.DefaultConfig()

	keys := []struct {
		name string
		src  string
		dst  *rh.KeybindList
	}{
		{"show_all_ranges_key", r.ShowAllRangesKey, &c.ShowAllRangesKey},
		{"show_sprinkler_range_key", r.ShowSprinklerRangeKey, &c.ShowSprinklerRangeKey},
		{"show_scarecrow_range_key", r.ShowScarecrowRangeKey, &c.ShowScarecrowRangeKey},
		{"show_beehouse_range_key", r.ShowBeehouseRangeKey, &c.ShowBeehouseRangeKey},
		{"show_junimo_range_key", r.ShowJunimoRangeKey, &c.ShowJunimoRangeKey},
		{"show_bomb_range_key", r.ShowBombRangeKey, &c.ShowBombRangeKey},
	}
	for _, k := range keys {
		kl, err := rh.ParseKeybindList(k.src)
		if err != nil {
			return rh.Config{}, fmt.Errorf("%s: %w", k.name, err)
		}
		*k.dst = kl
	}

	tints := []struct {
		name string
		src  string
		dst  *rh.Color
	}{
		{"junimo_range_tint", r.JunimoRangeTint, &c.JunimoRangeTint},
		{"sprinkler_range_tint", r.SprinklerRangeTint, &c.SprinklerRangeTint},
		{"scarecrow_range_tint", r.ScarecrowRangeTint, &c.ScarecrowRangeTint},
		{"beehouse_range_tint", r.BeehouseRangeTint, &c.BeehouseRangeTint},
		{"bomb_range_tint", r.BombRangeTint, &c.BombRangeTint},
	}
	for _, t := range tints {
		if strings.TrimSpace(t.src) == "" {
			continue
		}
		col, err := rh.ParseColor(t.src)
		if err != nil {
			return rh.Config{}, fmt.Errorf("%s: %w", t.name, err)
		}
		*t.dst = col
	}

	c.ShowSprinklerRange = r.ShowSprinklerRange
	c.ShowScarecrowRange = r.ShowScarecrowRange
	c.ShowBeehouseRange = r.ShowBeehouseRange
	c.ShowJunimoRange = r.ShowJunimoRange
	c.ShowBombRange = r.ShowBombRange
	c.ShowOtherRangesWhenHeld = r.ShowOtherRangesWhenHeld
	c.HighlightBuildingsOnHover = r.HighlightBuildingsOnHover
	c.TickInterval = r.TickInterval
	c.ClearBeforeBlockCheck = r.ClearBeforeBlockCheck
	c.Debug = r.Debug
	return c, nil
}
