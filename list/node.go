package list

import (
	"fmt"
	"io"
	"strings"
)

// Node is one of *Cons or Nil.
type Node interface {
	fmt.Stringer
	// Write yourself into writer
	Print(io.Writer)
	Empty() bool
	Len() uint32
	isNode()
}

// Cons holds one value and the rest of the list.
type Cons struct {
	value uint32
	next  Node
}

var _ Node = (*Cons)(nil)

func (c *Cons) Value() uint32 {
	return c.value
}

// Next returns the tail. A zero Cons ends in Nil.
func (c *Cons) Next() Node {
	if c.next == nil {
		return Nil{}
	}
	return c.next
}

func (c *Cons) String() string {
	b := &strings.Builder{}
	c.Print(b)
	return b.String()
}

// "3, 2, 1, Nil"
func (c *Cons) Print(w io.Writer) {
	var n Node = c
	for {
		cons, ok := asCons(n)
		if !ok {
			break
		}
		fmt.Fprintf(w, "%d, ", cons.value)
		n = cons.next
	}
	io.WriteString(w, nilMarker)
}

// Empty is true only for a nil *Cons, which prints as Nil.
func (c *Cons) Empty() bool {
	return c == nil
}

func (c *Cons) Len() (n uint32) {
	for cons, ok := asCons(c); ok; cons, ok = asCons(cons.next) {
		n++
	}
	return
}

func (*Cons) isNode() {}

const nilMarker = "Nil"

// Nil terminates every list.
type Nil struct{}

var _ Node = Nil{}

func (Nil) String() string {
	return nilMarker
}

func (Nil) Print(w io.Writer) {
	io.WriteString(w, nilMarker)
}

func (Nil) Empty() bool {
	return true
}

func (Nil) Len() uint32 {
	return 0
}

func (Nil) isNode() {}

// asCons treats a nil Node as Nil.
func asCons(n Node) (*Cons, bool) {
	c, ok := n.(*Cons)
	if !ok || c == nil {
		return nil, false
	}
	return c, true
}
