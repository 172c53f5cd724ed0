package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNotFound signals a lookup for a topic that the registry does not hold.
var ErrNotFound = errors.New("topic not found")

// Field is one named value of a topic record. List-valued fields carry Items
// instead of Text.
type Field struct {
	Label string
	Text  string
	Items []string
}

func (f Field) empty() bool {
	return f.Text == "" && len(f.Items) == 0
}

// Record is implemented by every topic record type. Fields must return the
// same labels in the same order for every value of the type, including the
// zero value.
type Record interface {
	Fields() []Field
}

// Lookup is the type-erased view of a registry used by renderers that handle
// every registry the same way.
type Lookup interface {
	Name() string
	Names() []string
	Schema() []string
	Fields(topic string) ([]Field, error)
}

// Registry is an ordered, read-only mapping from topic name to record.
type Registry[T Record] struct {
	name    string
	names   []string
	records map[string]T
}

type entry[T Record] struct {
	Name   string `yaml:"name"`
	Record T      `yaml:",inline"`
}

// decodeRegistry reads a YAML list of records. Unknown keys are rejected so
// every record carries exactly the schema of T.
func decodeRegistry[T Record](name string, data []byte) (*Registry[T], error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var entries []entry[T]
	if err := dec.Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("registry %s: no topics", name)
		}
		return nil, fmt.Errorf("registry %s: %w", name, err)
	}

	reg := &Registry[T]{
		name:    name,
		names:   make([]string, 0, len(entries)),
		records: make(map[string]T, len(entries)),
	}
	for _, e := range entries {
		if err := reg.add(e.Name, e.Record); err != nil {
			return nil, err
		}
	}
	if len(reg.names) == 0 {
		return nil, fmt.Errorf("registry %s: no topics", name)
	}
	return reg, nil
}

func (r *Registry[T]) add(topic string, rec T) error {
	if topic == "" {
		return fmt.Errorf("registry %s: topic with empty name", r.name)
	}
	if _, dup := r.records[topic]; dup {
		return fmt.Errorf("registry %s: duplicate topic %q", r.name, topic)
	}
	for _, f := range rec.Fields() {
		if f.empty() {
			return fmt.Errorf("registry %s: topic %q missing field %q", r.name, topic, f.Label)
		}
	}
	r.names = append(r.names, topic)
	r.records[topic] = rec
	return nil
}

// Name returns the registry identifier used by page selectors.
func (r *Registry[T]) Name() string {
	return r.name
}

// Get returns the record for topic.
func (r *Registry[T]) Get(topic string) (T, error) {
	rec, ok := r.records[topic]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q in registry %s", ErrNotFound, topic, r.name)
	}
	return rec, nil
}

// Names lists topic names in display order.
func (r *Registry[T]) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Len reports the number of topics.
func (r *Registry[T]) Len() int {
	return len(r.names)
}

// Schema lists the field labels shared by every record in the registry.
func (r *Registry[T]) Schema() []string {
	var zero T
	fields := zero.Fields()
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Label
	}
	return labels
}

// Fields returns the named fields of topic.
func (r *Registry[T]) Fields(topic string) ([]Field, error) {
	rec, err := r.Get(topic)
	if err != nil {
		return nil, err
	}
	return rec.Fields(), nil
}
