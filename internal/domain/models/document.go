package models

import "encoding/json"

// Document is a stored document together with its ID.
type Document struct {
	ID     string
	Fields Fields
}

// MarshalJSON flattens the document into its fields annotated with "id".
// A field named "id" in the body is shadowed by the document ID.
func (d Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]Value, len(d.Fields)+1)
	for k, v := range d.Fields {
		out[k] = v
	}
	out["id"] = String(d.ID)
	return json.Marshal(out)
}
