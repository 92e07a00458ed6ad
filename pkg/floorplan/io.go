package floorplan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
)

// WriteJSON encodes a plan as indented JSON and writes it to w.
// Walls are sorted by ID for deterministic output; the input is not mutated.
func WriteJSON(p Plan, w io.Writer) error {
	out := Plan{
		Walls:   slices.Clone(p.Walls),
		Doors:   slices.Clone(p.Doors),
		Windows: slices.Clone(p.Windows),
		Rooms:   slices.Clone(p.Rooms),
	}
	slices.SortFunc(out.Walls, func(a, b Wall) int {
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

// ReadJSON decodes a plan from r. Openings referencing a missing host wall
// are not an error here - stitching and detection tolerate stale wall IDs.
func ReadJSON(r io.Reader) (Plan, error) {
	var p Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Plan{}, fmt.Errorf("decode: %w", err)
	}
	for _, w := range p.Walls {
		if w.ID == "" {
			return Plan{}, fmt.Errorf("wall with empty id")
		}
	}
	return p, nil
}

// ExportJSON writes a plan to a JSON file at path.
func ExportJSON(p Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, f)
}

// ImportJSON reads a JSON file at path and returns the decoded plan.
func ImportJSON(path string) (Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return Plan{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
