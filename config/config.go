package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// display names
const (
	DisplayTerminal = "terminal"
	DisplayWindow   = "window"
)

// Config holds everything the shell around the engine can be told. Physics
// constants are fixed and not part of it.
type Config struct {
	Game  GameConfig  `toml:"game"`
	Shell ShellConfig `toml:"shell"`
}

type GameConfig struct {
	// Scoring selects the game with a menu and points, otherwise the ball
	// bounces off every wall forever
	Scoring bool `toml:"scoring"`

	// Seed for the launch directions, 0 means seed from the clock
	Seed int64 `toml:"seed"`
}

type ShellConfig struct {
	Display      string `toml:"display"`
	TickMs       int    `toml:"tick_ms"`
	SpectateAddr string `toml:"spectate_addr"`
	LogFile      string `toml:"log_file"`
	Title        string `toml:"title"`
}

func Default() Config {
	return Config{
		Game: GameConfig{
			Scoring: true,
		},
		Shell: ShellConfig{
			Display: DisplayTerminal,
			TickMs:  16,
			LogFile: "pong.log",
			Title:   "Bracket Pong",
		},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("No config file at %s, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// InitEnv loads a .env file into the environment if there is one
func InitEnv(files ...string) {
	if err := godotenv.Load(files...); err != nil {
		log.Println("No .env file loaded:", err)
		return
	}
	log.Println("Successfully loaded environment variables")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// ApplyEnv overrides fields from PONG_* variables that are set
func (c *Config) ApplyEnv() error {
	if v, err := GetEnvVariable("PONG_DISPLAY"); err == nil {
		c.Shell.Display = v
	}
	if v, err := GetEnvVariable("PONG_SPECTATE_ADDR"); err == nil {
		c.Shell.SpectateAddr = v
	}
	if v, err := GetEnvVariable("PONG_LOG_FILE"); err == nil {
		c.Shell.LogFile = v
	}
	if v, err := GetEnvVariable("PONG_SCORING"); err == nil {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("PONG_SCORING: %w", err)
		}
		c.Game.Scoring = b
	}
	if v, err := GetEnvVariable("PONG_SEED"); err == nil {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PONG_SEED: %w", err)
		}
		c.Game.Seed = n
	}
	if v, err := GetEnvVariable("PONG_TICK_MS"); err == nil {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PONG_TICK_MS: %w", err)
		}
		c.Shell.TickMs = n
	}
	return nil
}

func (c Config) Validate() error {
	switch c.Shell.Display {
	case DisplayTerminal, DisplayWindow:
	default:
		return fmt.Errorf("unknown display %q", c.Shell.Display)
	}
	if c.Shell.TickMs <= 0 {
		return fmt.Errorf("tick_ms must be positive, got %d", c.Shell.TickMs)
	}
	return nil
}
