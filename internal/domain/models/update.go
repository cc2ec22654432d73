package models

import "fmt"

// UpdateOp identifies the kind of change a FieldUpdate makes.
type UpdateOp uint8

const (
	// OpSet overwrites the field with a value.
	OpSet UpdateOp = iota + 1
	// OpDelete removes the field from the document.
	OpDelete
	// OpArrayUnion adds elements not already present in the array field.
	OpArrayUnion
	// OpArrayRemove removes every occurrence of the elements from the array field.
	OpArrayRemove
)

// String returns the op name.
func (o UpdateOp) String() string {
	switch o {
	case OpSet:
		return "set"
	case OpDelete:
		return "delete"
	case OpArrayUnion:
		return "arrayUnion"
	case OpArrayRemove:
		return "arrayRemove"
	default:
		return fmt.Sprintf("op(%d)", uint8(o))
	}
}

// FieldUpdate is a single mutation of one field. Field is a dotted path
// into nested maps.
type FieldUpdate struct {
	Field    string
	Op       UpdateOp
	Value    Value
	Elements []Value
}

// SetField returns an update that sets field to value.
func SetField(field string, value Value) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpSet, Value: value}
}

// DeleteField returns an update that removes field.
func DeleteField(field string) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpDelete}
}

// ArrayUnion returns an update that adds elements to the array field.
func ArrayUnion(field string, elements ...Value) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpArrayUnion, Elements: elements}
}

// ArrayRemove returns an update that removes elements from the array field.
func ArrayRemove(field string, elements ...Value) FieldUpdate {
	return FieldUpdate{Field: field, Op: OpArrayRemove, Elements: elements}
}

// ApplyUpdates returns a copy of fields with updates applied in order.
//
// Set and array union create missing intermediate maps; a non-map value in
// the way is an error. Delete and array remove on a path that does not
// resolve are no-ops. Array ops on a field holding a non-array value are an
// error.
func ApplyUpdates(fields Fields, updates []FieldUpdate) (Fields, error) {
	out := fields.Clone()
	if out == nil {
		out = Fields{}
	}

	for _, u := range updates {
		if err := ValidateFieldPath(u.Field); err != nil {
			return nil, err
		}

		create := u.Op == OpSet || u.Op == OpArrayUnion
		parent, name, err := parentOf(out, u.Field, create)
		if err != nil {
			return nil, err
		}

		switch u.Op {
		case OpSet:
			parent[name] = u.Value.Clone()
		case OpDelete:
			if parent != nil {
				delete(parent, name)
			}
		case OpArrayUnion:
			current, err := arrayField(parent, name, u.Field)
			if err != nil {
				return nil, err
			}
			for _, e := range u.Elements {
				if !containsValue(current, e) {
					current = append(current, e.Clone())
				}
			}
			parent[name] = Array(current...)
		case OpArrayRemove:
			if parent == nil {
				continue
			}
			if _, ok := parent[name]; !ok {
				continue
			}
			current, err := arrayField(parent, name, u.Field)
			if err != nil {
				return nil, err
			}
			kept := make([]Value, 0, len(current))
			for _, e := range current {
				if !containsValue(u.Elements, e) {
					kept = append(kept, e)
				}
			}
			parent[name] = Array(kept...)
		default:
			return nil, fmt.Errorf("unsupported update %s on field %q", u.Op, u.Field)
		}
	}

	return out, nil
}

func arrayField(parent Fields, name, path string) ([]Value, error) {
	v, ok := parent[name]
	if !ok {
		return []Value{}, nil
	}
	elems, ok := v.AsArray()
	if !ok {
		return nil, fmt.Errorf("field %q holds %s, not array", path, v.Kind())
	}
	return append([]Value(nil), elems...), nil
}

func containsValue(values []Value, v Value) bool {
	for _, e := range values {
		if e.Equal(v) {
			return true
		}
	}
	return false
}
