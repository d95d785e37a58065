// Package modelspec holds the editable model-specification buffer behind the
// editor surface. The buffer text is opaque here: its syntax belongs to the
// fitting engine and is passed through verbatim.
package modelspec

import "strings"

// Origin records how the buffer last received its content.
type Origin int

const (
	// OriginEmpty means the buffer has never been set.
	OriginEmpty Origin = iota
	// OriginTemplate means the buffer was loaded from a catalog template.
	OriginTemplate
	// OriginUser means the analyst edited the buffer by hand.
	OriginUser
)

// TemplateKey identifies a catalog entry.
type TemplateKey struct {
	Category string
	Example  string
}

// Store is the model-specification buffer plus its provenance. It is not
// safe for concurrent use; callers serialize access at the session level.
type Store struct {
	text   string
	origin Origin
	key    TemplateKey
}

// NewStore returns an empty buffer.
func NewStore() *Store {
	return &Store{}
}

// SelectTemplate loads a catalog template into the buffer. Reselecting the
// same key over an unedited buffer is a no-op; over an edited buffer the
// reload is explicit user intent and the edit is discarded.
func (s *Store) SelectTemplate(category, example, syntax string) {
	key := TemplateKey{Category: category, Example: example}
	if s.origin == OriginTemplate && s.key == key {
		return
	}
	s.text = strings.TrimSpace(syntax)
	s.origin = OriginTemplate
	s.key = key
}

// Edit replaces the buffer text verbatim and marks it user-edited. Callers
// must invoke this only for deliberate editor input, never as a side effect
// of re-rendering pickers or other unrelated state changes.
func (s *Store) Edit(text string) {
	s.text = text
	s.origin = OriginUser
	s.key = TemplateKey{}
}

// CurrentText returns the buffer text, used verbatim as engine input.
func (s *Store) CurrentText() string {
	return s.text
}

// Origin returns the buffer's provenance.
func (s *Store) Origin() Origin {
	return s.origin
}

// TemplateKey returns the source template key and whether the buffer is
// still template-sourced.
func (s *Store) TemplateKey() (TemplateKey, bool) {
	if s.origin != OriginTemplate {
		return TemplateKey{}, false
	}
	return s.key, true
}
