package list

import "encoding/json"

// MarshalJSON encodes the list as a JSON array.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	elements := l.elements()
	if elements == nil {
		elements = []T{}
	}

	return json.Marshal(elements)
}

// UnmarshalJSON replaces the content of the list's buffer with the decoded
// JSON array. Handles sharing the buffer see the new content.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var elements []T

	err := json.Unmarshal(data, &elements)
	if err != nil {
		return err
	}

	l.buffer().elements = elements

	return nil
}
