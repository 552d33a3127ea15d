package message

import (
	"encoding/json"
	"fmt"
	"os"
)

const fileMode = 0600

// ReadFile loads a batch of messages from a JSON file.
func ReadFile(path string) ([]*Message, error) {
	if path == "" {
		return nil, fmt.Errorf("file path required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading messages from %s: %w", path, err)
	}
	var msgs []*Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, fmt.Errorf("parsing messages from %s: %w", path, err)
	}
	return msgs, nil
}

// WriteFile saves a batch of messages to a JSON file.
func WriteFile(path string, msgs []*Message) error {
	if path == "" {
		return fmt.Errorf("file path required")
	}
	b, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding messages: %w", err)
	}
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("writing messages to %s: %w", path, err)
	}
	return nil
}
