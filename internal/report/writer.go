package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// New creates an empty summary for a run over root.
func New(root string) *Summary {
	return &Summary{
		Version:     SupportedVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Root:        root,
	}
}

// WriteJSON serializes the summary to an indented JSON file.
func WriteJSON(s *Summary, path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a summary written by WriteJSON.
func ReadJSON(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse summary: %w", err)
	}
	if s.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported summary version: %d", s.Version)
	}
	return &s, nil
}
