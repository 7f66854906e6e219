package shapes

import (
	"log/slog"
	"slices"
	"sync"
)

// Source produces a mesh. Every shape spec in this package implements it,
// as does *Trail.
type Source interface {
	Mesh() (*Mesh, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func() (*Mesh, error)

// Mesh calls f.
func (f SourceFunc) Mesh() (*Mesh, error) { return f() }

// Builder caches the mesh of a Source and rebuilds it only after the source
// changes, instead of on every frame. Observers registered with OnChange
// run after each successful rebuild.
//
// Builder is safe for concurrent use. The source is built with the builder
// locked, so a Source must not call back into the Builder that owns it.
type Builder struct {
	mu        sync.Mutex
	src       Source
	mesh      *Mesh
	dirty     bool
	builds    int
	observers []func(*Mesh)
	name      string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithName labels the builder in log output.
func WithName(name string) BuilderOption {
	return func(b *Builder) {
		b.name = name
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(fn func(*Mesh)) BuilderOption {
	return func(b *Builder) {
		b.observers = append(b.observers, fn)
	}
}

// NewBuilder creates a builder for src. The first call to Mesh builds it.
func NewBuilder(src Source, opts ...BuilderOption) *Builder {
	b := &Builder{src: src, dirty: true}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Set replaces the source and marks the mesh stale.
func (b *Builder) Set(src Source) {
	b.mu.Lock()
	b.src = src
	b.dirty = true
	b.mu.Unlock()
}

// Invalidate marks the mesh stale, for sources that change in place
// (such as a Trail after Push).
func (b *Builder) Invalidate() {
	b.mu.Lock()
	b.dirty = true
	b.mu.Unlock()
}

// Dirty reports whether the next Mesh call will rebuild.
func (b *Builder) Dirty() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dirty
}

// OnChange registers fn to be called with each newly built mesh.
func (b *Builder) OnChange(fn func(*Mesh)) {
	b.mu.Lock()
	b.observers = append(b.observers, fn)
	b.mu.Unlock()
}

// Builds returns how many times the mesh has been rebuilt.
func (b *Builder) Builds() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.builds
}

// Mesh returns the current mesh, rebuilding it first if the source changed.
// When a rebuild fails the previous mesh is kept, the builder stays dirty
// and the error is returned alongside the previous mesh (nil if there was
// none).
func (b *Builder) Mesh() (*Mesh, error) {
	b.mu.Lock()
	if !b.dirty {
		m := b.mesh
		b.mu.Unlock()
		return m, nil
	}

	m, err := b.src.Mesh()
	if err != nil {
		prev := b.mesh
		b.mu.Unlock()
		Logger().Warn("shapes: rebuild failed",
			slog.String("builder", b.name),
			slog.Any("error", err))
		return prev, err
	}

	b.mesh = m
	b.dirty = false
	b.builds++
	observers := slices.Clone(b.observers)
	builds := b.builds
	b.mu.Unlock()

	Logger().Debug("shapes: mesh rebuilt",
		slog.String("builder", b.name),
		slog.Int("build", builds),
		slog.Int("vertices", m.VertexCount()))
	for _, fn := range observers {
		fn(m)
	}
	return m, nil
}
