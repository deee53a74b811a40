package blockmodel

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// ErrWrongKind is returned when a looked-up document exists but is not
// a block model. That indicates a corrupt registry, not a resolvable
// model error, so resolution aborts instead of substituting the
// missing model.
var ErrWrongKind = errors.New("parent is not a block model")

// ResolveParent resolves the model's parent chain. It is idempotent: a
// model whose parent is already resolved, or that has no parent
// reference, is left untouched and no lookups are issued.
//
// Absent parents and reference loops are soft failures: they log a
// warning and substitute the missing-model sentinel, rewriting the
// offending parent reference to MissingModelLocation. After a nil
// error, following Parent() links from any document in the chain
// reaches a terminal document in finitely many steps and no document
// appears twice in its own ancestor chain.
func (m *Model) ResolveParent(ctx Context, getter Getter) error {
	if m.parent.resolved() || m.parent.ref == nil {
		return nil
	}

	// Ordered chain of documents visited so far, starting from the
	// model itself so that a chain looping back to its origin is
	// caught as well.
	chain := map[Unbaked]struct{}{m: {}}
	order := []string{ctx.ModelName()}

	parent, err := fetchParent(getter, chain, order, *m.parent.ref, ctx.ModelName())
	if err != nil {
		return err
	}
	if parent == nil {
		if parent, err = missingModel(getter); err != nil {
			return err
		}
		m.rewriteToMissing()
	}
	m.parent.model = parent

	// Walk the chain, resolving each link that still has a pending
	// reference. Every step either resolves one more link or
	// substitutes the terminal sentinel, so the walk is linear in the
	// chain length.
	for link := parent; link.parent.ref != nil && !link.parent.resolved(); link = link.parent.model {
		chain[link] = struct{}{}
		order = append(order, link.Name)

		next, err := fetchParent(getter, chain, order, *link.parent.ref, link.Name)
		if err != nil {
			return err
		}
		if next == nil {
			if next, err = missingModel(getter); err != nil {
				return err
			}
			link.rewriteToMissing()
		}
		link.parent.model = next
	}
	return nil
}

func (m *Model) rewriteToMissing() {
	loc := MissingModelLocation
	m.parent.ref = &loc
}

// fetchParent looks up one parent document. A nil model with a nil
// error means the parent is absent or would close a loop; both are
// logged and left for the caller to substitute the sentinel.
func fetchParent(getter Getter, chain map[Unbaked]struct{}, order []string, ref Location, name string) (*Model, error) {
	unbaked := getter(ref)
	if unbaked == nil {
		log.Warn("no parent while loading model",
			zap.Stringer("parent", ref),
			zap.String("model", name))
		return nil, nil
	}
	if _, seen := chain[unbaked]; seen {
		log.Warn("parent loop while loading model",
			zap.String("model", name),
			zap.String("chain", strings.Join(order, " -> ")),
			zap.Stringer("parent", ref))
		return nil, nil
	}
	model, ok := unbaked.(*Model)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrWrongKind, ref)
	}
	return model, nil
}

// missingModel fetches the sentinel, verifying its kind. A registry
// that cannot produce the sentinel is unusable, so this is a hard
// error.
func missingModel(getter Getter) (*Model, error) {
	model, ok := getter(MissingModelLocation).(*Model)
	if !ok {
		return nil, errors.New("failed to load the missing model")
	}
	return model, nil
}
