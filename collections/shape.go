package collections

import (
	"fmt"
	"strings"
)

// Shape is one of the supported collection adapter kinds.
type Shape int

const (
	Array         Shape = iota // T[]
	List                       // List<T>
	Sequence                   // IEnumerable<T>
	IndexableList              // IList<T>
)

var shapeNames = [...]string{
	Array:         "Array",
	List:          "List",
	Sequence:      "Sequence",
	IndexableList: "IndexableList",
}

// String returns the shape name.
func (s Shape) String() string {
	if s.valid() {
		return shapeNames[s]
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

func (s Shape) valid() bool { return s >= Array && s <= IndexableList }

// ParseShape parses a shape name, ignoring case.
func ParseShape(name string) (Shape, error) {
	for i, n := range shapeNames {
		if strings.EqualFold(n, name) {
			return Shape(i), nil
		}
	}
	return 0, fmt.Errorf("collections: unknown shape %q", name)
}

// NumberHandling controls how numbers are read and written for a
// collection's elements. The zero value is Strict.
type NumberHandling int

const (
	Strict                          NumberHandling = 0
	AllowReadingFromString          NumberHandling = 1 << 0
	WriteAsString                   NumberHandling = 1 << 1
	AllowNamedFloatingPointLiterals NumberHandling = 1 << 2
)

// String returns the set flags joined with '|', or "Strict".
func (h NumberHandling) String() string {
	if h == Strict {
		return "Strict"
	}
	var parts []string
	if h&AllowReadingFromString != 0 {
		parts = append(parts, "AllowReadingFromString")
	}
	if h&WriteAsString != 0 {
		parts = append(parts, "WriteAsString")
	}
	if h&AllowNamedFloatingPointLiterals != 0 {
		parts = append(parts, "AllowNamedFloatingPointLiterals")
	}
	if rest := h &^ (AllowReadingFromString | WriteAsString | AllowNamedFloatingPointLiterals); rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", int(rest)))
	}
	return strings.Join(parts, "|")
}
