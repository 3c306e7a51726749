package mocks

import "agenda/infras/otel"

// Scope records what it was told so tests can assert on tracing.
type Scope struct {
	Ended      bool
	Errors     []error
	Events     []string
	Attributes map[string]any
}

func (s *Scope) End() {
	s.Ended = true
}

func (s *Scope) TraceError(err error) {
	s.Errors = append(s.Errors, err)
}

func (s *Scope) TraceIfError(err *error) {
	if err != nil && *err != nil {
		s.TraceError(*err)
	}
}

func (s *Scope) AddEvent(name string, _ ...map[string]any) {
	s.Events = append(s.Events, name)
}

func (s *Scope) SetAttribute(key string, value any) {
	if s.Attributes == nil {
		s.Attributes = map[string]any{}
	}

	s.Attributes[key] = value
}

func (s *Scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}

func NewScope() otel.Scope {
	return &Scope{}
}
