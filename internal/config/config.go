package config

import (
	"errors"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	DefaultDBName         = "todoline.db"
	DefaultLogName        = "todoline.log"
)

type Keymap struct {
	Quit   string `toml:"quit"`
	Submit string `toml:"submit"`
	Cancel string `toml:"cancel"`
}

type UI struct {
	Title string `toml:"title"`
}

type Config struct {
	DBPath  string `toml:"db_path"`
	LogPath string `toml:"log_path"`
	UI      UI     `toml:"ui"`
	Keys    Keymap `toml:"keys"`
}

// LoadOrCreate reads the config file, writing one with defaults first if
// it does not exist. Missing fields fall back to defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func applyDefaults(cfg *Config) {
	def := defaultConfig()
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.UI.Title == "" {
		cfg.UI.Title = def.UI.Title
	}
	if cfg.Keys.Quit == "" {
		cfg.Keys.Quit = def.Keys.Quit
	}
	if cfg.Keys.Submit == "" {
		cfg.Keys.Submit = def.Keys.Submit
	}
	if cfg.Keys.Cancel == "" {
		cfg.Keys.Cancel = def.Keys.Cancel
	}
}

func defaultConfig() Config {
	return Config{
		DBPath:  DefaultDBName,
		LogPath: DefaultLogName,
		UI: UI{
			Title: "Todolist",
		},
		Keys: Keymap{
			Quit:   "esc",
			Submit: "enter",
			Cancel: "esc",
		},
	}
}
