package depot

import (
	"fmt"
	"reflect"
)

type DuplicateStoreError struct {
	Type reflect.Type
}

func (e DuplicateStoreError) Error() string {
	return fmt.Sprintf("world already composes a store for component type: %v", e.Type)
}

type UnknownComponentError struct {
	Type reflect.Type
}

func (e UnknownComponentError) Error() string {
	return fmt.Sprintf("world tracks no store for component type: %v", e.Type)
}

// ContractViolationError is raised via panic when a required read hits an
// absent component. The map engine filters with HasAll before reading, so
// hitting this indicates an iteration-filter bug, never a recoverable state.
type ContractViolationError struct {
	Type reflect.Type
	ID   EntityID
}

func (e ContractViolationError) Error() string {
	return fmt.Sprintf("required component %v absent for entity %d", e.Type, e.ID)
}

type MalformedShapeError struct {
	Type reflect.Type
}

func (e MalformedShapeError) Error() string {
	return fmt.Sprintf("result shape leaf does not resolve to a tracked component type: %v", e.Type)
}
