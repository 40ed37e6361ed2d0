package template

// Block resolution walks the inheritance chain as a small state machine:
// each (document, block) pair moves Unresolved → ResolvingAncestor →
// Resolved within one top-level Resolve call. The chain is acyclic by
// construction, so revisiting a pair that is still resolving can only
// mean a malformed document set and fails with a TemplateError instead
// of recursing forever.

type resolveState int

const (
	stateUnresolved resolveState = iota
	stateResolvingAncestor
	stateResolved
)

type resolveKey struct {
	owner *Document
	block string
}

// Resolver resolves named blocks against a document's inheritance chain.
// The zero value is ready to use; a Resolver holds no per-render state
// and is safe for concurrent use.
type Resolver struct{}

// NewResolver creates a Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve renders the named block for the most-derived document doc. The
// nearest definition in the chain wins; its SuperFunc lazily resolves the
// same block one level further up, so an override can splice the ancestor
// fragment wherever it chooses. A block no document defines resolves to
// the empty string: blocks are optional by default.
func (r *Resolver) Resolve(doc *Document, block string, ctx *Context) (string, error) {
	return r.resolveFrom(doc, doc, block, ctx, make(map[resolveKey]resolveState))
}

func (r *Resolver) resolveFrom(root, start *Document, block string, ctx *Context, states map[resolveKey]resolveState) (string, error) {
	owner, err := findOwner(root, start, block)
	if err != nil {
		return "", err
	}
	if owner == nil {
		return "", nil
	}

	key := resolveKey{owner: owner, block: block}
	if states[key] == stateResolvingAncestor {
		return "", NewTemplateError(owner.name, block, "re-entrant block resolution")
	}
	states[key] = stateResolvingAncestor

	super := func() (string, error) {
		if owner.parent == nil {
			return "", nil
		}
		return r.resolveFrom(root, owner.parent, block, ctx, states)
	}

	out, err := owner.blocks[block](ctx, super)
	if err != nil {
		return "", &BlockError{Document: owner.name, Block: block, Cause: err}
	}
	states[key] = stateResolved
	return out, nil
}

// findOwner returns the nearest document at or above start that defines
// block, guarding against a cyclic parent chain.
func findOwner(root, start *Document, block string) (*Document, error) {
	visited := make(map[*Document]struct{})
	for doc := start; doc != nil; doc = doc.parent {
		if _, seen := visited[doc]; seen {
			return nil, NewTemplateError(root.name, block, "inheritance cycle in parent chain")
		}
		visited[doc] = struct{}{}
		if doc.Defines(block) {
			return doc, nil
		}
	}
	return nil, nil
}
