// Package hateoas builds hyperlink sets for API responses from an explicit
// table of (resource, relation) -> path templates.
package hateoas

import (
	"fmt"
	"net/http"
	"strings"
)

// Resource is the kind of entity a link is attached to.
type Resource string

const (
	ResourceRoot        Resource = "root"
	ResourceAuth        Resource = "auth"
	ResourceRoom        Resource = "room"
	ResourceEmployee    Resource = "employee"
	ResourceOffer       Resource = "offer"
	ResourceReservation Resource = "reservation"
)

// PathFunc renders the path of a link; id is empty for collection links.
type PathFunc func(id string) string

type routeKey struct {
	resource Resource
	relation Relation
}

// Table maps (resource, relation) pairs to path templates.
type Table struct {
	baseURL string
	paths   map[routeKey]PathFunc
}

// NewTable returns an empty table. A non-empty baseURL is used as the link
// prefix instead of the scheme and host of the incoming request.
func NewTable(baseURL string) *Table {
	return &Table{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		paths:   make(map[routeKey]PathFunc),
	}
}

// Register adds or replaces the template for a pair.
func (t *Table) Register(res Resource, rel Relation, fn PathFunc) {
	t.paths[routeKey{resource: res, relation: rel}] = fn
}

// Path renders the path for a pair.
func (t *Table) Path(res Resource, rel Relation, id string) (string, bool) {
	fn, ok := t.paths[routeKey{resource: res, relation: rel}]
	if !ok {
		return "", false
	}
	return fn(id), true
}

// Has reports whether a pair is registered.
func (t *Table) Has(res Resource, rel Relation) bool {
	_, ok := t.paths[routeKey{resource: res, relation: rel}]
	return ok
}

// Builder starts a link set for one response to r.
func (t *Table) Builder(r *http.Request) *Builder {
	base := t.baseURL
	if base == "" && r != nil {
		base = requestBase(r)
	}
	return &Builder{table: t, base: base, links: Links{}}
}

func requestBase(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	host := r.Host
	if fwd := r.Header.Get("X-Forwarded-Host"); fwd != "" {
		host = strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	if host == "" {
		return ""
	}
	return scheme + "://" + host
}

// Link is one advertised relation.
type Link struct {
	Href      string `json:"href"`
	Title     string `json:"title,omitempty"`
	Templated bool   `json:"templated,omitempty"`
}

// Links is keyed by relation name.
type Links map[string]Link

// Builder accumulates links for a single entity or collection.
type Builder struct {
	table *Table
	base  string
	links Links
}

func (b *Builder) link(res Resource, rel Relation, id string) Link {
	path, ok := b.table.Path(res, rel, id)
	if !ok {
		panic(fmt.Sprintf("hateoas: no route registered for %s/%s", res, rel))
	}
	return Link{Href: b.base + path, Title: rel.Description()}
}

// Add attaches rel for the given resource id.
func (b *Builder) Add(res Resource, rel Relation, id string) *Builder {
	b.links[string(rel)] = b.link(res, rel, id)
	return b
}

// AddTemplate attaches rel with placeholder in place of the id, e.g.
// "{roomId}", and marks the link as templated.
func (b *Builder) AddTemplate(res Resource, rel Relation, placeholder string) *Builder {
	l := b.link(res, rel, placeholder)
	l.Templated = true
	b.links[string(rel)] = l
	return b
}

// Self attaches the "self" link pointing at the target of rel.
func (b *Builder) Self(res Resource, rel Relation, id string) *Builder {
	l := b.link(res, rel, id)
	l.Title = ""
	b.links[string(Self)] = l
	return b
}

// Build returns the accumulated links. The builder must not be reused.
func (b *Builder) Build() Links {
	return b.links
}

// Collection is a HAL collection document.
type Collection[T any] struct {
	Embedded map[string][]T `json:"_embedded"`
	Links    Links          `json:"_links"`
}

// NewCollection wraps items under name; a nil slice is rendered as [].
func NewCollection[T any](name string, items []T, links Links) Collection[T] {
	if items == nil {
		items = []T{}
	}
	return Collection[T]{
		Embedded: map[string][]T{name: items},
		Links:    links,
	}
}
