package kpath

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("kpath syntax error")

// KPath is one step of a path into a tag tree, linked to the step after it.
// Exactly one of Field or Index is set:
//   - "a.b" → Field "a", then Field "b" (compound keys)
//   - "a[0]" → Field "a", then Index 0 (list element)
//
// A nil *KPath is the empty path.
type KPath struct {
	Field *string // Compound key
	Index *int    // List index
	Next  *KPath  // Next step (nil for the last one)
}

// Field returns a single key step.
func Field(name string) *KPath {
	return &KPath{Field: &name}
}

// Index returns a single list index step.
func Index(i int) *KPath {
	return &KPath{Index: &i}
}

// New chains steps into one path. Each step is copied, so the arguments
// may be reused.
func New(steps ...*KPath) *KPath {
	var res *KPath
	for _, s := range steps {
		for x := s; x != nil; x = x.Next {
			res = res.Append(x)
		}
	}
	return res
}

// Append returns a copy of p with the first step of seg added at the end.
func (p *KPath) Append(seg *KPath) *KPath {
	if seg == nil {
		return p.copy()
	}
	last := seg.copySegment()
	if p == nil {
		return last
	}
	res := p.copy()
	x := res
	for x.Next != nil {
		x = x.Next
	}
	x.Next = last
	return res
}

func (p *KPath) copySegment() *KPath {
	res := &KPath{}
	if p.Field != nil {
		tmp := *p.Field
		res.Field = &tmp
	}
	if p.Index != nil {
		tmp := *p.Index
		res.Index = &tmp
	}
	return res
}

func (p *KPath) copy() *KPath {
	if p == nil {
		return nil
	}
	res := p.copySegment()
	res.Next = p.Next.copy()
	return res
}

// Len returns the number of steps in p.
func (p *KPath) Len() int {
	n := 0
	for x := p; x != nil; x = x.Next {
		n++
	}
	return n
}

// Split returns the path without its last step, and the last step.
// Both are nil for the empty path.
func (p *KPath) Split() (parent, last *KPath) {
	if p == nil {
		return nil, nil
	}
	if p.Next == nil {
		return nil, p.copySegment()
	}
	parent = p.copySegment()
	x := parent
	y := p.Next
	for y.Next != nil {
		x.Next = y.copySegment()
		x = x.Next
		y = y.Next
	}
	return parent, y.copySegment()
}

// String returns the kinded path string representation of this KPath.
// Example:
//
//	KPath{Field: &"a", Next: &KPath{Index: &0}} → "a[0]"
func (p *KPath) String() string {
	if p == nil {
		return ""
	}
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil; x = x.Next {
		if x.Field != nil {
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(quoteField(*x.Field))
			continue
		}
		if x.Index != nil {
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// SegmentString returns the representation of this step alone.
func (p *KPath) SegmentString() string {
	if p == nil {
		return ""
	}
	if p.Field != nil {
		return quoteField(*p.Field)
	}
	if p.Index != nil {
		return fmt.Sprintf("[%d]", *p.Index)
	}
	return ""
}

// Parse parses a kinded path string into a KPath structure.
//
// Examples:
//   - "a.b.c" → three compound keys
//   - "items[0].id" → key, list index, key
//   - "[2][0]" → nested list indexes
//   - "'a b'.c" → quoted key containing a space
//   - "" → the empty path (nil)
//
// Negative indexes parse; they address nothing when navigated.
func Parse(kpath string) (*KPath, error) {
	if kpath == "" {
		return nil, nil
	}
	root := &KPath{}
	if err := parseKFrag(kpath, root, true); err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrSyntax, kpath, err)
	}
	return root, nil
}

// MustParse is like Parse but panics on error.
func MustParse(kpath string) *KPath {
	p, err := Parse(kpath)
	if err != nil {
		panic(err)
	}
	return p
}

func parseKFrag(frag string, parent *KPath, top bool) error {
	switch frag[0] {
	case '.':
		if top {
			return fmt.Errorf("leading '.'")
		}
		field, rest, err := parseKField(frag[1:])
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseNext(rest, parent)
	case '[':
		i := strings.IndexByte(frag[1:], ']')
		if i == -1 {
			return fmt.Errorf("expected '[' <index> ']'")
		}
		index, err := strconv.Atoi(frag[1 : i+1])
		if err != nil {
			return fmt.Errorf("invalid list index %q", frag[1:i+1])
		}
		parent.Index = &index
		return parseNext(frag[i+2:], parent)
	default:
		if !top {
			return fmt.Errorf("expected '.' or '[', got %q", frag[0])
		}
		field, rest, err := parseKField(frag)
		if err != nil {
			return err
		}
		parent.Field = &field
		return parseNext(rest, parent)
	}
}

func parseNext(rest string, parent *KPath) error {
	if len(rest) == 0 {
		return nil
	}
	next := &KPath{}
	if err := parseKFrag(rest, next, false); err != nil {
		return err
	}
	parent.Next = next
	return nil
}

// parseKField parses a compound key from the start of frag.
// Unquoted keys stop at '.' or '['.
func parseKField(frag string) (field, rest string, err error) {
	if len(frag) == 0 {
		return "", "", fmt.Errorf("expected field at end of string")
	}
	switch frag[0] {
	case '"':
		n, err := quotedEnd(frag, '"')
		if err != nil {
			return "", "", err
		}
		field, err = strconv.Unquote(frag[:n])
		if err != nil {
			return "", "", fmt.Errorf("invalid quoted field: %w", err)
		}
		return field, frag[n:], nil
	case '\'':
		n, err := quotedEnd(frag, '\'')
		if err != nil {
			return "", "", err
		}
		field = strings.ReplaceAll(frag[1:n-1], `\'`, `'`)
		return field, frag[n:], nil
	}
	i := strings.IndexAny(frag, ".[")
	if i == 0 {
		return "", "", fmt.Errorf("empty field")
	}
	if i == -1 {
		return frag, "", nil
	}
	return frag[:i], frag[i:], nil
}

// quotedEnd returns the length of the quoted string at the start of s,
// including both quotes.
func quotedEnd(s string, q byte) (int, error) {
	escaped := false
	for i := 1; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == q:
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated quoted field")
}

func quoteField(f string) string {
	if f == "" || strings.ContainsAny(f, ".[]'\"\\ \t\n") {
		return strconv.Quote(f)
	}
	return f
}
