package feature

import (
	"github.com/pkg/errors"
)

// Sentinel errors for the module's failure taxonomy.  Call sites
// decorate these with pkg/errors, so test with errors.Cause rather than
// direct comparison.
var (
	// ErrTypeMismatch indicates an operation invoked on a combination of
	// record kinds it is not defined for, e.g. intersecting a Bedpe.
	ErrTypeMismatch = errors.New("operation not defined for these record kinds")

	// ErrMissingStrand indicates a strand-aware comparison requested on
	// a record that carries no strand information.
	ErrMissingStrand = errors.New("record carries no strand information")

	// ErrParse indicates malformed record text, e.g. a GTF attribute
	// pair without a quoted value.
	ErrParse = errors.New("malformed record text")
)
