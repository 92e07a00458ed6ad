// Package store persists designs: a named pairing of a schematic snapshot
// and a floor plan. The API and CLI load a design, run geometry over it, and
// save the result back.
//
// Two backends are provided: an in-memory store for tests and single-process
// use, and a MongoDB store for server deployments.
package store

import (
	"context"
	"time"

	"github.com/rickerduniya/Sayanho-sub002/pkg/floorplan"
	"github.com/rickerduniya/Sayanho-sub002/pkg/schematic"
)

// Design is the persisted document: one electrical schematic plus the floor
// plan it is drawn over.
type Design struct {
	ID        string             `json:"id" bson:"_id"`
	Name      string             `json:"name" bson:"name"`
	Schematic schematic.Snapshot `json:"schematic" bson:"schematic"`
	Plan      floorplan.Plan     `json:"plan" bson:"plan"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Summary is the listing view of a design, without geometry payloads.
type Summary struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store is the persistence interface for designs.
//
// Create assigns an ID when the design has none and stamps CreatedAt and
// UpdatedAt. Update refreshes UpdatedAt. Get, Update, and Delete return an
// error with code ErrCodeDesignNotFound when the ID is unknown.
type Store interface {
	Create(ctx context.Context, d *Design) error
	Get(ctx context.Context, id string) (*Design, error)
	Update(ctx context.Context, d *Design) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Summary, error)
	Close(ctx context.Context) error
}
