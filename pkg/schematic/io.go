package schematic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// WriteJSON encodes a snapshot as indented JSON and writes it to w.
// Items are sorted by ID for deterministic output; the input is not mutated.
func WriteJSON(s Snapshot, w io.Writer) error {
	out := Snapshot{
		Items:      slices.Clone(s.Items),
		Connectors: slices.Clone(s.Connectors),
	}
	slices.SortFunc(out.Items, func(a, b Item) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a snapshot from r.
//
// Each item must have an "id" field; connectors reference items by ID.
// Dangling connector references are not an error here - the layout engine
// filters them, matching the editing store's tolerance for stale wires.
func ReadJSON(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("decode: %w", err)
	}
	for _, it := range s.Items {
		if it.ID == "" {
			return Snapshot{}, fmt.Errorf("item with empty id")
		}
	}
	return s, nil
}

// ExportJSON writes a snapshot to a JSON file at path.
func ExportJSON(s Snapshot, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}

// ImportJSON reads a JSON file at path and returns the decoded snapshot.
func ImportJSON(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
