package keymap

import "github.com/samber/lo"

type scopedKey struct {
	ctx Context
	key string
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[scopedKey]Action
	byAction map[Action][]string // for help
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[scopedKey]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[scopedKey{b.Context, key}] = b.Action
		}
		r.byAction[b.Action] = lo.Uniq(append(r.byAction[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action for key in ctx, falling back to the global
// bindings, or "" when the key is unbound.
func (r *Resolver) Resolve(ctx Context, key string) Action {
	if a, ok := r.bindings[scopedKey{ctx, key}]; ok {
		return a
	}
	return r.bindings[scopedKey{ContextGlobal, key}]
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
