package ir

import (
	"slices"
	"strings"

	"irval/internal/engine"
)

// AttrSet is a client-side cache of a value's attribute tags, mirrored
// against the engine. The cache equals engine state only while this
// instance is the exclusive mutator for the value; that exclusivity is an
// invariant of the model, not a defect. Local state changes only after the
// engine call succeeds, so a failed call never leaves the cache half
// updated.
type AttrSet struct {
	eng   engine.Engine
	owner engine.Handle
	set   map[engine.Attribute]struct{}
}

func newAttrSet(eng engine.Engine, owner engine.Handle) *AttrSet {
	return &AttrSet{eng: eng, owner: owner, set: make(map[engine.Attribute]struct{})}
}

// Add records an attribute. Adding a present attribute is a no-op and
// does not reach the engine.
func (s *AttrSet) Add(attr engine.Attribute) error {
	if _, ok := s.set[attr]; ok {
		return nil
	}
	if err := s.eng.AddAttribute(s.owner, attr); err != nil {
		return err
	}
	s.set[attr] = struct{}{}
	return nil
}

// Remove drops an attribute. Removing an absent attribute is a no-op.
func (s *AttrSet) Remove(attr engine.Attribute) error {
	if _, ok := s.set[attr]; !ok {
		return nil
	}
	if err := s.eng.RemoveAttribute(s.owner, attr); err != nil {
		return err
	}
	delete(s.set, attr)
	return nil
}

// Has reports presence from the local cache only; it never re-queries the
// engine.
func (s *AttrSet) Has(attr engine.Attribute) bool {
	_, ok := s.set[attr]
	return ok
}

// Len returns the cached attribute count.
func (s *AttrSet) Len() int { return len(s.set) }

// List returns the cached attributes in stable order.
func (s *AttrSet) List() []engine.Attribute {
	out := make([]engine.Attribute, 0, len(s.set))
	for a := range s.set {
		out = append(out, a)
	}
	slices.Sort(out)
	return out
}

func (s *AttrSet) String() string {
	names := make([]string, 0, len(s.set))
	for _, a := range s.List() {
		names = append(names, a.String())
	}
	return "[" + strings.Join(names, " ") + "]"
}
