package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arcanaland/codexcards/internal/card"
)

// indent matches the four-space layout of the database the client ships with
const indent = "    "

// Records converts cards to records, keeping their order
func Records(cards []card.Card) []CardRecord {
	records := make([]CardRecord, len(cards))
	for i, c := range cards {
		records[i] = FromCard(c)
	}
	return records
}

// Marshal encodes cards as the indented JSON card database
func Marshal(cards []card.Card) ([]byte, error) {
	records := Records(cards)
	for i, r := range records {
		if err := r.Front.Validate(); err != nil {
			return nil, fmt.Errorf("card %d front: %w", i, err)
		}
		if err := r.Back.Validate(); err != nil {
			return nil, fmt.Errorf("card %d back: %w", i, err)
		}
	}

	data, err := json.MarshalIndent(records, "", indent)
	if err != nil {
		return nil, fmt.Errorf("error encoding card database: %v", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes and validates a JSON card database
func Unmarshal(data []byte) ([]CardRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var records []CardRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("error decoding card database: %v", err)
	}

	for i, r := range records {
		if err := r.Front.Validate(); err != nil {
			return nil, fmt.Errorf("card %d front: %w", i, err)
		}
		if err := r.Back.Validate(); err != nil {
			return nil, fmt.Errorf("card %d back: %w", i, err)
		}
	}
	return records, nil
}

// ReadFile loads a JSON card database from path
func ReadFile(path string) ([]CardRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Unmarshal(data)
}

// WriteFile encodes cards and replaces path atomically.
// Nothing is left at path if encoding or writing fails.
func WriteFile(path string, cards []card.Card) error {
	data, err := Marshal(cards)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %v", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %v", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("error writing card database: %v", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("error writing card database: %v", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("error setting permissions: %v", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("error moving card database into place: %v", err)
	}
	return nil
}
