package ofxparser

import (
	"errors"
)

// OpenTag is an element whose start tag has been read but not its end tag.
type OpenTag struct {
	Name    string
	Line    int
	Column  int
	HasText bool // non-whitespace character data seen directly inside the element
}

// TagStack is a stack of open tags.
type TagStack interface {
	Push(*OpenTag)
	Pop() (*OpenTag, error)
	Peek() *OpenTag
	Index(name string) int
	IsEmpty() bool
	Size() int
	Dump() []string
}

// stack is a stack of open tag pointers.
type stack struct {
	items []*OpenTag
}

// NewStack returns an initialized empty stack.
func NewStack() TagStack {
	return &stack{
		items: make([]*OpenTag, 0),
	}
}

// Push adds the given tag to top of stack.
func (s *stack) Push(t *OpenTag) {
	s.items = append(s.items, t)
}

// Pop removes and returns the topmost tag of the stack.
func (s *stack) Pop() (*OpenTag, error) {
	l := len(s.items)
	if l == 0 {
		return nil, errors.New("error - popping from empty stack")
	}
	i := s.items[l-1]
	s.items = s.items[:l-1]
	return i, nil
}

// Peek returns the topmost tag without removing it, or nil when the stack is empty.
func (s *stack) Peek() *OpenTag {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Index returns the position of the innermost open tag with the given name, counted from the
// bottom of the stack, or -1.
func (s *stack) Index(name string) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i].Name == name {
			return i
		}
	}
	return -1
}

// IsEmpty returns true if the stack is empty, else false.
func (s *stack) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the current size of the stack.
func (s *stack) Size() int {
	return len(s.items)
}

// Dump returns the open tag names, outermost first, for debugging.
func (s *stack) Dump() []string {
	result := make([]string, 0, len(s.items))
	for _, item := range s.items {
		result = append(result, item.Name)
	}
	return result
}
