package puzzle

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridwalk/grid"
)

var (
	// ErrUnknownKind indicates a kind with no registered solver.
	ErrUnknownKind = errors.New("puzzle: unknown kind")

	// ErrUnknownPuzzle indicates a name missing from the manifest.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")

	// ErrNoVisual indicates a kind that has no Drawer.
	ErrNoVisual = errors.New("puzzle: kind cannot be rendered")

	// ErrMismatch indicates an answer that differs from the manifest's expectation.
	ErrMismatch = errors.New("puzzle: answer mismatch")

	// ErrBadManifest indicates a manifest that cannot be used as written.
	// It wraps grid.ErrMalformedInput.
	ErrBadManifest = fmt.Errorf("puzzle: bad manifest: %w", grid.ErrMalformedInput)

	// ErrBadParams indicates params that do not fit the kind's schema.
	// It wraps grid.ErrMalformedInput.
	ErrBadParams = fmt.Errorf("puzzle: bad params: %w", grid.ErrMalformedInput)
)
