package config

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"
)

// DefaultListenAddr is used by the standalone HTTP host when nothing is configured.
const DefaultListenAddr = ":3000"

type GameConfig struct {
	// Seed fixes the shuffle sequence. Zero means seed from the clock.
	Seed       int64  `json:"seed"`
	ListenAddr string `json:"listen_addr"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		c, err := ReadGameConfig(path)
		if err != nil {
			loadErr = err
			return
		}
		cfg = c
	})
	return loadErr
}

// ReadGameConfig parses a config file without touching the global config.
func ReadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var c GameConfig
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	return &c, nil
}

// GetGameConfig returns the global game configuration, or nil if none was loaded.
func GetGameConfig() *GameConfig {
	return cfg
}

// GetSeed returns the configured seed, or 0 if no config was loaded.
func GetSeed() int64 {
	if cfg == nil {
		return 0
	}
	return cfg.Seed
}

// GetListenAddr returns the configured HTTP address or DefaultListenAddr.
func GetListenAddr() string {
	if cfg == nil || cfg.ListenAddr == "" {
		return DefaultListenAddr
	}
	return cfg.ListenAddr
}

// ParseSeed reads a seed override. Empty input returns fallback.
func ParseSeed(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("invalid seed %q: %w", raw, err)
	}
	return seed, nil
}

// NewRand returns an rng for seed, or a clock-seeded one when seed is 0.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
