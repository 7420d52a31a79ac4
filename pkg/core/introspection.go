package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	SourceType string `json:"source_type"`
	Location   string `json:"location"`
	Runs       int    `json:"runs"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	srcType := "unknown"
	location := ""
	if s.src != nil {
		srcType = "source"
		location = s.src.Location()
		if comp, ok := s.src.(introspection.Component); ok {
			srcType = comp.ComponentType()
		}
	}

	return ServiceState{
		SourceType: srcType,
		Location:   location,
		Runs:       s.runs,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
