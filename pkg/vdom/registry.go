package vdom

import "sync"

// Registry remembers the last tree rendered into each target.
//
// The registry is safe for concurrent use across distinct targets. Renders
// into the same target must still be serialized by the caller.
type Registry struct {
	mu    sync.Mutex
	roots map[Handle]*Node
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{roots: make(map[Handle]*Node)}
}

// Get returns the tree last rendered into target, or nil.
func (r *Registry) Get(target Handle) *Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.roots[target]
}

// Set records tree as the last tree rendered into target. A nil tree
// drops the entry.
func (r *Registry) Set(target Handle, tree *Node) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tree == nil {
		delete(r.roots, target)
		return
	}
	r.roots[target] = tree
}

// Delete forgets target. Call it when a target is disposed.
func (r *Registry) Delete(target Handle) {
	r.Set(target, nil)
}

// Len returns the number of targets with a remembered tree.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.roots)
}
