package thing

import (
	"sort"
)

// Filter decides which kinds and qualities are allowed.
type Filter struct {
	allowed   map[string]bool
	qualities QualityRange
}

// NewFilter creates a filter that allows nothing and every quality.
func NewFilter() *Filter {
	return &Filter{
		allowed:   make(map[string]bool),
		qualities: AllQualities,
	}
}

// SetAllow allows or disallows a kind.
func (f *Filter) SetAllow(def *Def, allow bool) {
	if def == nil {
		return
	}

	if allow {
		f.allowed[def.Name] = true
		return
	}

	delete(f.allowed, def.Name)
}

// SetAllowAll allows every def in the list.
func (f *Filter) SetAllowAll(defs []*Def) {
	for _, d := range defs {
		f.SetAllow(d, true)
	}
}

// SetDisallowAll clears the filter.
func (f *Filter) SetDisallowAll() {
	f.allowed = make(map[string]bool)
}

// SetAllowedQualities restricts the qualities the filter lets through.
func (f *Filter) SetAllowedQualities(r QualityRange) {
	f.qualities = r
}

// AllowedQualities returns the quality range of the filter.
func (f *Filter) AllowedQualities() QualityRange {
	return f.qualities
}

// AllowsDef returns true if the kind is allowed.
func (f *Filter) AllowsDef(def *Def) bool {
	return def != nil && f.allowed[def.Name]
}

// Allows returns true if the item passes the filter.
func (f *Filter) Allows(t *Thing) bool {
	if t == nil || !f.AllowsDef(t.Def) {
		return false
	}

	if q, ok := t.TryGetQuality(); ok && !f.qualities.Includes(q) {
		return false
	}

	return true
}

// AllowedDefNames returns the names of the allowed kinds, sorted.
func (f *Filter) AllowedDefNames() []string {
	out := make([]string, 0, len(f.allowed))
	for n := range f.allowed {
		out = append(out, n)
	}

	sort.Strings(out)

	return out
}

// CopyFrom replaces the content of f with the content of other.
func (f *Filter) CopyFrom(other *Filter) {
	f.allowed = make(map[string]bool, len(other.allowed))
	for n := range other.allowed {
		f.allowed[n] = true
	}

	f.qualities = other.qualities
}

// StoragePriority orders storage destinations.
type StoragePriority int

// Storage priorities.
const (
	PriorityLow StoragePriority = iota + 1
	PriorityNormal
	PriorityPreferred
	PriorityImportant
	PriorityCritical
)

// StorageSettings are the acceptance settings of a storage building or zone.
type StorageSettings struct {
	Priority StoragePriority
	Filter   *Filter

	// Parent, when set, bounds what the settings can ever allow.
	Parent *StorageSettings
}

// NewStorageSettings creates settings with normal priority and an empty
// filter.
func NewStorageSettings() *StorageSettings {
	return &StorageSettings{
		Priority: PriorityNormal,
		Filter:   NewFilter(),
	}
}

// AllowedToAccept returns true if the item passes these settings and their
// parent.
func (s *StorageSettings) AllowedToAccept(t *Thing) bool {
	if !s.Filter.Allows(t) {
		return false
	}

	if s.Parent != nil && !s.Parent.Filter.Allows(t) {
		return false
	}

	return true
}

// CopyFrom copies the priority and filter of other. The parent is kept.
func (s *StorageSettings) CopyFrom(other *StorageSettings) {
	s.Priority = other.Priority
	s.Filter.CopyFrom(other.Filter)
}
