package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"pigeonwatch/internal/model"
)

// Load reads the bot state from a JSON file. Returns a zero state if the
// file doesn't exist.
func Load(filePath string) (*model.BotState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.BotState{}, nil
		}
		return nil, err
	}
	var st model.BotState
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Save writes the bot state to a JSON file, creating the parent
// directory if needed.
func Save(filePath string, st *model.BotState) error {
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	st.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
