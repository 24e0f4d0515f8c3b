package lower

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/queryc/pkg/ops"
	"github.com/leapstack-labs/queryc/pkg/sqlast"
)

// Rule lowers one operation node into an abstract SQL expression. Children
// are translated through t; the rule never performs I/O and fails only with
// the declared error kinds.
type Rule func(t *Translator, node ops.Node) (sqlast.Expr, error)

// Registry is the immutable operation-kind → Rule table for one dialect.
// It is built once via Builder and safe for concurrent reads.
type Registry struct {
	rules  map[ops.Kind]Rule
	denied map[ops.Kind]struct{}
}

// Resolve returns the rule for kind. Denylisted kinds fail with
// ErrUnsupportedOperation; kinds absent for any other reason fail with
// ErrUnknownOperation, which indicates a registry defect.
func (r *Registry) Resolve(kind ops.Kind) (Rule, error) {
	if _, ok := r.denied[kind]; ok {
		return nil, unsupportedKind(kind)
	}
	rule, ok := r.rules[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperation, kind)
	}
	return rule, nil
}

// Supported reports whether kind resolves to a rule.
func (r *Registry) Supported(kind ops.Kind) bool {
	_, err := r.Resolve(kind)
	return err == nil
}

// Denied reports whether kind is on the dialect's denylist.
func (r *Registry) Denied(kind ops.Kind) bool {
	_, ok := r.denied[kind]
	return ok
}

// Kinds returns every kind known to the registry, supported or denied,
// sorted by tag.
func (r *Registry) Kinds() []ops.Kind {
	kinds := make([]ops.Kind, 0, len(r.rules)+len(r.denied))
	for k := range r.rules {
		kinds = append(kinds, k)
	}
	for k := range r.denied {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Builder composes a dialect registry: a copy of the default table, plus
// dialect overrides, minus a denylist. Build validates that every override
// targets a kind present in the default table and fails otherwise —
// overriding an unknown kind is a programming error, not a runtime
// condition.
type Builder struct {
	base      map[ops.Kind]Rule
	overrides map[ops.Kind]Rule
	deny      []ops.Kind
}

// NewBuilder starts a registry builder from a copy of the default lowering
// table.
func NewBuilder() *Builder {
	return &Builder{
		base:      DefaultTable(),
		overrides: make(map[ops.Kind]Rule),
	}
}

// Override replaces the rule for kind with a dialect-specific one.
func (b *Builder) Override(kind ops.Kind, rule Rule) *Builder {
	b.overrides[kind] = rule
	return b
}

// Remove puts kinds on the denylist. Lookups for denylisted kinds fail with
// ErrUnsupportedOperation after Build.
func (b *Builder) Remove(kinds ...ops.Kind) *Builder {
	b.deny = append(b.deny, kinds...)
	return b
}

// Build produces the immutable registry, failing fast on overrides or
// denylist entries that reference kinds absent from the default table.
func (b *Builder) Build() (*Registry, error) {
	var unknown []string
	for kind := range b.overrides {
		if _, ok := b.base[kind]; !ok {
			unknown = append(unknown, string(kind))
		}
	}
	for _, kind := range b.deny {
		if _, ok := b.base[kind]; !ok {
			unknown = append(unknown, string(kind))
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("registry build: kinds not in default table: %s", strings.Join(unknown, ", "))
	}

	rules := make(map[ops.Kind]Rule, len(b.base))
	for kind, rule := range b.base {
		rules[kind] = rule
	}
	for kind, rule := range b.overrides {
		rules[kind] = rule
	}
	denied := make(map[ops.Kind]struct{}, len(b.deny))
	for _, kind := range b.deny {
		delete(rules, kind)
		denied[kind] = struct{}{}
	}
	return &Registry{rules: rules, denied: denied}, nil
}

// MustBuild is Build for init-time registry construction, panicking on the
// programming errors Build reports.
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(err)
	}
	return r
}

// Dialect registry
var (
	dialectsMu sync.RWMutex
	dialects   = make(map[string]*Registry)
)

// Register registers a dialect registry under a name. Called by dialect
// implementations in their init() functions.
func Register(name string, r *Registry) {
	dialectsMu.Lock()
	defer dialectsMu.Unlock()
	dialects[strings.ToLower(name)] = r
}

// Get returns a registered dialect registry by name.
func Get(name string) (*Registry, bool) {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	r, ok := dialects[strings.ToLower(name)]
	return r, ok
}

// List returns all registered dialect names (sorted).
func List() []string {
	dialectsMu.RLock()
	defer dialectsMu.RUnlock()
	names := make([]string, 0, len(dialects))
	for name := range dialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
