package list

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	_ yaml.Marshaler   = List{}
	_ yaml.Unmarshaler = (*List)(nil)
)

// MarshalYAML encodes the list as a sequence, front to back.
func (l List) MarshalYAML() (any, error) {
	return l.Values(), nil
}

// UnmarshalYAML fills an empty, unconsumed list with the decoded sequence.
func (l *List) UnmarshalYAML(value *yaml.Node) error {
	if l.consumed {
		return fmt.Errorf("Cannot perform UnmarshalYAML(): %w", ErrConsumed)
	}
	if !l.first("UnmarshalYAML").Empty() {
		return fmt.Errorf("Cannot perform UnmarshalYAML(): %w", ErrNotEmpty)
	}
	var vs []uint32
	if err := value.Decode(&vs); err != nil {
		return fmt.Errorf("list: decode sequence: %w", err)
	}
	l.head = FromValues(vs...).head
	return nil
}
