package envlookup

import (
	"fmt"
	"maps"

	"github.com/joho/godotenv"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/boundaries/out"
)

// Snapshot implements the EnvLookup interface over a fixed set of variables.
// It is read-only after construction and safe for concurrent use.
type Snapshot struct {
	vars map[string]string
}

var _ out.EnvLookup = (*Snapshot)(nil)

// NewSnapshot copies vars into a new snapshot.
func NewSnapshot(vars map[string]string) *Snapshot {
	return &Snapshot{vars: maps.Clone(vars)}
}

// NewSnapshotFromFiles reads one or more dotenv files into a snapshot.
// When a key appears in several files the last file wins. With no paths,
// ./.env is read.
func NewSnapshotFromFiles(paths ...string) (*Snapshot, error) {
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to read env files %v: %w", paths, err)
	}
	return &Snapshot{vars: vars}, nil
}

// Lookup returns the value recorded for name.
func (s *Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Len returns the number of variables in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.vars)
}
