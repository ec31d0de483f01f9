package depend

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyName     = errors.New("dependency name must not be empty")
	ErrNilFactory    = errors.New("dependency factory must not be nil")
	ErrDuplicateName = errors.New("duplicate dependency name")
)

// FactoryError reports a failed dependency construction. The pipeline maps
// it to a 500-class response; the handler is never invoked.
type FactoryError struct {
	Name string
	Err  error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("dependency %q: factory failed: %v", e.Name, e.Err)
}

func (e *FactoryError) Unwrap() error { return e.Err }

// CleanupError reports one or more failed cleanups. It is informational:
// cleanup failures never change an already-computed response.
type CleanupError struct {
	Name string
	Err  error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("dependency %q: cleanup failed: %v", e.Name, e.Err)
}

func (e *CleanupError) Unwrap() error { return e.Err }
