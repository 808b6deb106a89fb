package bot

import (
	"fmt"
)

// BotLevel selects a move policy.
type BotLevel int

const (
	// BotLevelFirstLegal always plays the first legal piece.
	BotLevelFirstLegal BotLevel = iota
)

// NewBrain creates a move policy for the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelFirstLegal:
		return FirstLegalBot{}, nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}
