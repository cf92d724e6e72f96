// Package envlookup implements the deployment variable lookup adapters.
package envlookup

import (
	"os"

	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/internal/boundaries/out"
)

// Process implements the EnvLookup interface against the live process environment.
// Every call reads os.LookupEnv, so changes made at runtime are visible immediately.
type Process struct{}

var _ out.EnvLookup = Process{}

// NewProcess creates a lookup backed by the process environment.
func NewProcess() Process {
	return Process{}
}

// Lookup returns the value of the named process environment variable.
func (Process) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}
