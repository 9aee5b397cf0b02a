package mlmodel

import "fmt"

// LabelEncoder maps class indices back to the string labels used at training
// time. Index order is fixed by the trainer and must not be reordered.
type LabelEncoder struct {
	Classes []string `json:"classes"`
}

// Label returns the class name for an encoded index.
func (e *LabelEncoder) Label(i int) (string, error) {
	if i < 0 || i >= len(e.Classes) {
		return "", fmt.Errorf("label index %d out of range [0,%d)", i, len(e.Classes))
	}
	return e.Classes[i], nil
}

// Len returns the number of encoded classes.
func (e *LabelEncoder) Len() int {
	return len(e.Classes)
}

func (e *LabelEncoder) validate() error {
	if len(e.Classes) == 0 {
		return fmt.Errorf("label encoder has no classes")
	}
	seen := map[string]bool{}
	for i, c := range e.Classes {
		if c == "" {
			return fmt.Errorf("label encoder class %d is empty", i)
		}
		if seen[c] {
			return fmt.Errorf("label encoder class %q repeated", c)
		}
		seen[c] = true
	}
	return nil
}
