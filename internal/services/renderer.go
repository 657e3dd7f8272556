package services

import "sync"

// Renderer lays out and draws a graph definition onto its target
// surface. Rendering may be asynchronous behind this call; errors are
// reported synchronously where the implementation can detect them.
type Renderer interface {
	Render(definition string) error
}

// PageRenderer is the production target surface: it publishes the
// latest graph definition for the tree pages, where the diagram
// library lays it out and draws it in the browser. A failed render
// never clobbers the last successfully published definition.
type PageRenderer struct {
	mu         sync.RWMutex
	definition string
}

func NewPageRenderer() *PageRenderer {
	return &PageRenderer{}
}

// Render publishes the definition
func (r *PageRenderer) Render(definition string) error {
	r.mu.Lock()
	r.definition = definition
	r.mu.Unlock()
	return nil
}

// Definition returns the last successfully rendered definition
func (r *PageRenderer) Definition() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.definition
}
