// Package list implements an immutable singly linked list of uint32 values.
//
// A list is a chain of [*Cons] nodes terminated by [Nil]. Nodes are never
// modified after construction. The [List] handle owns its chain: [List.Prepend]
// moves the chain into a new handle and invalidates the receiver, so every
// later use of the old handle panics with [ErrConsumed].
package list

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

var (
	ErrEmpty    = errors.New("list is empty")
	ErrConsumed = errors.New("list has been consumed by Prepend()")
	ErrNotEmpty = errors.New("list is not empty")
)

// List is an owning handle over a chain of nodes. The zero List is empty.
type List struct {
	head     Node
	consumed bool
}

// New returns the empty list.
func New() *List {
	return &List{head: Nil{}}
}

// FromValues returns a list holding vs in front-to-back order.
func FromValues(vs ...uint32) *List {
	l := New()
	for i := len(vs) - 1; i >= 0; i-- {
		l = l.Prepend(vs[i])
	}
	return l
}

// Prepend consumes l and returns a new list with value at the front.
func (l *List) Prepend(value uint32) *List {
	next := &List{head: &Cons{value: value, next: l.first("Prepend")}}
	l.head = nil
	l.consumed = true
	return next
}

// Len returns the number of values in the list.
func (l *List) Len() uint32 {
	return l.first("Len").Len()
}

func (l *List) Empty() bool {
	return l.first("Empty").Empty()
}

func (l *List) Head() (uint32, error) {
	c, ok := asCons(l.first("Head"))
	if !ok {
		return 0, fmt.Errorf("Cannot perform Head(): %w", ErrEmpty)
	}
	return c.value, nil
}

// Node returns the first node of the chain.
func (l *List) Node() Node {
	return l.first("Node")
}

// String renders the list as "3, 2, 1, Nil".
func (l *List) String() string {
	b := &strings.Builder{}
	l.Print(b)
	return b.String()
}

func (l *List) Print(w io.Writer) {
	l.first("Print").Print(w)
}

// All iterates over the values from front to back.
func (l *List) All() iter.Seq[uint32] {
	head := l.first("All")
	return func(yield func(uint32) bool) {
		for c, ok := asCons(head); ok; c, ok = asCons(c.next) {
			if !yield(c.value) {
				return
			}
		}
	}
}

// Values returns the values from front to back. The result is never nil.
func (l *List) Values() []uint32 {
	res := make([]uint32, 0, l.Len())
	for v := range l.All() {
		res = append(res, v)
	}
	return res
}

// Equal reports whether a and b hold the same values in the same order.
func Equal(a, b *List) bool {
	ca, aok := asCons(a.first("Equal"))
	cb, bok := asCons(b.first("Equal"))
	for aok && bok {
		if ca == cb {
			return true
		}
		if ca.value != cb.value {
			return false
		}
		ca, aok = asCons(ca.next)
		cb, bok = asCons(cb.next)
	}
	return aok == bok
}

// first returns the head node, panicking if l has been consumed.
func (l *List) first(op string) Node {
	if l.consumed {
		panic(fmt.Errorf("Cannot perform %v(): %w", op, ErrConsumed))
	}
	if l.head == nil {
		return Nil{}
	}
	return l.head
}
