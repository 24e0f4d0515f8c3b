// Package lower turns a typed operation tree into abstract SQL expression
// nodes for one target dialect.
//
// Translation is a pure post-order walk: a Translator resolves each node's
// kind in the dialect's Registry and applies the matched Rule, which
// translates the node's children recursively. The single piece of contextual
// state — whether the current position is a predicate (WHERE-like) position
// — travels on the Translator value itself; Predicate and Projection return
// derived translators rather than mutating shared state, so independent
// trees may be lowered concurrently.
package lower

import (
	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// DefaultMaxDepth bounds the recursive walk to guard against pathological
// nesting.
const DefaultMaxDepth = 1000

// Translator performs the recursive lowering walk. The zero value is not
// usable; construct with New.
type Translator struct {
	reg         *Registry
	inPredicate bool
	depth       int
	maxDepth    int
}

// Option configures a Translator.
type Option func(*Translator)

// WithMaxDepth overrides the depth guard.
func WithMaxDepth(n int) Option {
	return func(t *Translator) { t.maxDepth = n }
}

// New returns a translator over the given dialect registry, positioned in
// projection context.
func New(reg *Registry, opts ...Option) *Translator {
	t := &Translator{reg: reg, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate lowers node and its subtree. Rules call this for children.
func (t *Translator) Translate(node ops.Node) (sqlast.Expr, error) {
	if t.depth >= t.maxDepth {
		return nil, ErrDepthExceeded
	}
	rule, err := t.reg.Resolve(node.Kind())
	if err != nil {
		return nil, err
	}
	child := *t
	child.depth++
	return rule(&child, node)
}

// InPredicate reports whether the current position is a predicate (WHERE-like)
// position rather than a projection/selection position.
func (t *Translator) InPredicate() bool { return t.inPredicate }

// Predicate returns a translator positioned in predicate context.
func (t *Translator) Predicate() *Translator {
	child := *t
	child.inPredicate = true
	return &child
}

// Projection returns a translator positioned in projection context.
func (t *Translator) Projection() *Translator {
	child := *t
	child.inPredicate = false
	return &child
}

// Lower is the compiler entry point for projection-position trees.
func Lower(reg *Registry, node ops.Node, opts ...Option) (sqlast.Expr, error) {
	return New(reg, opts...).Translate(node)
}

// LowerPredicate is the compiler entry point for predicate-position trees
// (filter conditions).
func LowerPredicate(reg *Registry, node ops.Node, opts ...Option) (sqlast.Expr, error) {
	return New(reg, opts...).Predicate().Translate(node)
}
