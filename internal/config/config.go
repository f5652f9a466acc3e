package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RUSH"

const (
	KeyPrompt  = "prompt"
	KeyEditors = "editors"
	KeyDebug   = "debug"
	KeyNoColor = "no-color"
	KeyBanner  = "banner"
)

var defaultEditors = []string{"nano", "vi"}

type Config struct {
	Prompt  string
	Editors []string
	Debug   bool
	NoColor bool
	Banner  bool
}

// Flags registers the command line flags Load understands.
func Flags(flags *pflag.FlagSet) {
	flags.String(KeyPrompt, "shell> ", "prompt shown before each command (env: RUSH_PROMPT)")
	flags.StringSlice(KeyEditors, defaultEditors, "editors tried in order by nano (env: RUSH_EDITORS, space separated)")
	flags.BoolP(KeyDebug, "d", false, "enable debug logging (env: RUSH_DEBUG)")
	flags.Bool(KeyNoColor, false, "disable colored output (env: RUSH_NO_COLOR)")
	flags.Bool(KeyBanner, true, "print the welcome and farewell lines (env: RUSH_BANNER)")
}

// Load merges flags and RUSH_* environment variables. Explicit flags win
// over the environment. No configuration file is read.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyPrompt, "shell> ")
	v.SetDefault(KeyEditors, defaultEditors)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyNoColor, false)
	v.SetDefault(KeyBanner, true)

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	cfg := &Config{
		Prompt:  v.GetString(KeyPrompt),
		Editors: v.GetStringSlice(KeyEditors),
		Debug:   v.GetBool(KeyDebug),
		NoColor: v.GetBool(KeyNoColor),
		Banner:  v.GetBool(KeyBanner),
	}

	if len(cfg.Editors) == 0 {
		return nil, fmt.Errorf("%s: at least one editor is required", KeyEditors)
	}

	return cfg, nil
}
