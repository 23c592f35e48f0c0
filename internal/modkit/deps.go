// Package modkit provides module wiring and core deps
package modkit

import (
	"almanacco/internal/platform/config"
	"almanacco/internal/platform/logger"
	"almanacco/internal/platform/store"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
	DB  *store.Store
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check the store
func (d Deps) ZeroOK() bool { return true }
