package render

import (
	"reflect"
	"sort"

	"chatrender/internal/model"
)

// Renderer renders one message. ok is false when the message is not the
// variant the renderer was registered for.
type Renderer func(m model.Message, viewer ViewerID) (node Node, ok bool)

// handle adapts a renderer typed to a single variant. Pointers to the
// variant are accepted too, since they satisfy model.Message as well.
func handle[M model.Message](fn func(M, ViewerID) Node) Renderer {
	return func(m model.Message, viewer ViewerID) (Node, bool) {
		if v, ok := m.(M); ok {
			return fn(v, viewer), true
		}
		if p, ok := any(m).(*M); ok && p != nil {
			return fn(*p, viewer), true
		}
		return Node{}, false
	}
}

// isNil reports whether m is nil or a nil pointer wrapped in the interface.
// Calling value methods through the latter panics.
func isNil(m model.Message) bool {
	if m == nil {
		return true
	}
	v := reflect.ValueOf(m)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// Registry maps discriminator pairs to renderers. It is read-only once built.
type Registry struct {
	renderers map[model.Kind]Renderer
}

// NewRegistry builds the registry of every supported variant.
// There is deliberately no entry for system/image.
func NewRegistry() *Registry {
	return &Registry{
		renderers: map[model.Kind]Renderer{
			model.KindUserImage:  handle(renderUserImage),
			model.KindUserText:   handle(renderUserText),
			model.KindSystemText: handle(renderSystemText),
		},
	}
}

// Lookup returns the renderer registered for kind
func (r *Registry) Lookup(kind model.Kind) (Renderer, bool) {
	fn, ok := r.renderers[kind]
	return fn, ok
}

// Kinds lists the registered discriminator pairs in a stable order
func (r *Registry) Kinds() []model.Kind {
	kinds := make([]model.Kind, 0, len(r.renderers))
	for kind := range r.renderers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		return kinds[i].String() < kinds[j].String()
	})
	return kinds
}

// Dispatch renders m with the renderer registered for its own kind, or the
// Unsupported node when there is none or the renderer rejects it.
func (r *Registry) Dispatch(m model.Message, viewer ViewerID) Node {
	if isNil(m) {
		return Unsupported()
	}

	fn, ok := r.Lookup(m.Kind())
	if !ok {
		return Unsupported()
	}

	node, ok := fn(m, viewer)
	if !ok {
		return Unsupported()
	}
	return node
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry
func Default() *Registry {
	return defaultRegistry
}

// Dispatch renders m using the default registry
func Dispatch(m model.Message, viewer ViewerID) Node {
	return defaultRegistry.Dispatch(m, viewer)
}
