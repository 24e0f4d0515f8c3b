package lower

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/queryc/pkg/ops"
)

// Error sentinels for the lowering layer. All failures are synchronous and
// deterministic; callers match with errors.Is.
var (
	// ErrUnsupportedOperation marks an operation kind, or a sub-case of one,
	// that has no correct translation for the target dialect.
	ErrUnsupportedOperation = errors.New("operation not supported on this backend")

	// ErrUnsupportedArgument marks an argument that must be a compile-time
	// literal but was not.
	ErrUnsupportedArgument = errors.New("unsupported argument")

	// ErrUnknownAlgorithm marks a hash algorithm outside the supported set.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrMissingTimezoneInfo marks a timezone-typed literal whose value
	// carries no offset information. This is an upstream defect.
	ErrMissingTimezoneInfo = errors.New("timezone-typed literal has no offset information")

	// ErrUnknownOperation marks a kind with no rule in the resolved registry
	// that is not on the denylist. This is a registry defect, not a
	// legitimate runtime branch.
	ErrUnknownOperation = errors.New("no lowering rule registered for operation")

	// ErrDepthExceeded marks an expression tree nested beyond the
	// translator's depth limit.
	ErrDepthExceeded = errors.New("expression tree exceeds maximum depth")
)

// Unsupportedf wraps ErrUnsupportedOperation with detail.
func Unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}

// unsupportedKind reports a denylisted kind.
func unsupportedKind(kind ops.Kind) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, kind)
}

// ShapeError reports a node whose Go type does not match the operand shape
// its rule expects. This is an upstream construction defect.
func ShapeError(node ops.Node, want string) error {
	return fmt.Errorf("%w: %s node is %T, want %s shape", ErrUnsupportedArgument, node.Kind(), node, want)
}
