package scene

// Registry holds the flat entity and group collections walked every frame.
// It is populated once at scene-build time.
type Registry struct {
	groups   []*Group
	entities []*Entity
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// AddGroup registers a group and all of its members.
func (r *Registry) AddGroup(g *Group) {
	if g == nil {
		return
	}
	r.groups = append(r.groups, g)
	r.entities = append(r.entities, g.Members...)
}

// AddEntity registers a top-level entity that belongs to no group.
func (r *Registry) AddEntity(e *Entity) {
	if e == nil {
		return
	}
	r.entities = append(r.entities, e)
}

// Groups returns the registered groups.
func (r *Registry) Groups() []*Group { return r.groups }

// Entities returns every registered entity, grouped or not.
func (r *Registry) Entities() []*Entity { return r.entities }

// Len reports the number of registered entities.
func (r *Registry) Len() int { return len(r.entities) }

// Clear empties the registry and hands back the removed entities so their
// resources can be released once nothing can reach them anymore.
func (r *Registry) Clear() []*Entity {
	removed := r.entities
	r.entities = nil
	r.groups = nil
	return removed
}

// ReleaseAll releases and detaches the resource of every entity given.
func ReleaseAll(entities []*Entity) int {
	released := 0
	for _, e := range entities {
		if e == nil || e.Resource == nil {
			continue
		}
		e.Resource.Release()
		e.Resource = nil
		released++
	}
	return released
}
