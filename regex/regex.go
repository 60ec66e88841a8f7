// Package regex implements a small regular-expression algebra evaluated
// incrementally with Brzozowski derivatives.
//
// Nodes are immutable and live in an Arena; they are addressed by Ref.
// Deriving a node by a rune never touches the node itself, it allocates the
// derivative in the arena the derivation runs on. A grammar builds its root
// rules in one arena, freezes it, and every scanner derives into its own
// Scratch arena, so the frozen grammar can be shared between goroutines.
package regex

import (
	"fmt"
	"strings"
	"unicode"
)

// Ref is a handle to a node in an Arena.
type Ref int32

// Dead is the derivative of a node that can no longer match.
const Dead Ref = -1

// NodeType is the variant of a node.
type NodeType uint8

const (
	NodeUnit         NodeType = iota // fixed literal
	NodeClass                        // one rune satisfying a predicate
	NodeUnion                        // any of the children
	NodeConcat                       // left then right
	NodeZeroOrOne                    // child or nothing
	NodeZeroOrMore                   // child repeated, possibly never
	NodeOneOrMore                    // child repeated at least once
	NodeIntersection                 // both left and right
	NodeNegation                     // anything the child does not match
	NodeEmpty                        // matches only the empty string
)

func (t NodeType) String() string {
	switch t {
	case NodeUnit:
		return "unit"
	case NodeClass:
		return "class"
	case NodeUnion:
		return "union"
	case NodeConcat:
		return "concat"
	case NodeZeroOrOne:
		return "zero-or-one"
	case NodeZeroOrMore:
		return "zero-or-more"
	case NodeOneOrMore:
		return "one-or-more"
	case NodeIntersection:
		return "intersection"
	case NodeNegation:
		return "negation"
	case NodeEmpty:
		return "empty"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

type class struct {
	name  string
	match func(rune) bool
}

type node struct {
	typ      NodeType
	priority int

	// NodeUnit: the folded literal and how much of it was consumed.
	lit []rune
	pos int

	// NodeClass
	class *class

	// NodeConcat and NodeIntersection use both, unary nodes use left.
	// NodeOneOrMore keeps the ZeroOrMore of its child in right.
	left, right Ref

	// NodeUnion
	children []Ref
}

// Arena owns regex nodes.
type Arena struct {
	parent *Arena
	base   int
	nodes  []node
	frozen bool

	// canonical nodes shared by every derivation on this arena family
	empty    Ref
	anything Ref
}

// NewArena returns an empty, writable arena.
func NewArena() *Arena {
	a := &Arena{}
	a.empty = a.add(node{typ: NodeEmpty, left: Dead, right: Dead})
	a.anything = a.add(node{typ: NodeNegation, left: Dead, right: Dead})
	return a
}

// Freeze makes the arena read-only. Builders panic on a frozen arena.
func (a *Arena) Freeze() {
	a.frozen = true
}

// Frozen reports whether Freeze was called.
func (a *Arena) Frozen() bool {
	return a.frozen
}

// Scratch returns a child arena for derivatives of nodes in a. The parent
// must be frozen: the child addresses the parent's nodes by position.
func (a *Arena) Scratch() *Arena {
	if !a.frozen {
		panic("regex: Scratch on an arena that is not frozen")
	}
	return &Arena{
		parent:   a,
		base:     a.base + len(a.nodes),
		empty:    a.empty,
		anything: a.anything,
	}
}

// Reset discards every node allocated in a scratch arena.
func (a *Arena) Reset() {
	if a.parent == nil {
		panic("regex: Reset on a base arena")
	}
	a.nodes = a.nodes[:0]
}

// Len is the number of nodes reachable through a, parents included.
func (a *Arena) Len() int {
	return a.base + len(a.nodes)
}

func (a *Arena) add(n node) Ref {
	if a.frozen {
		panic("regex: allocating on a frozen arena")
	}
	a.nodes = append(a.nodes, n)
	return Ref(a.base + len(a.nodes) - 1)
}

func (a *Arena) node(r Ref) node {
	for cur := a; cur != nil; cur = cur.parent {
		if int(r) >= cur.base {
			return cur.nodes[int(r)-cur.base]
		}
	}
	panic(fmt.Sprintf("regex: ref %d out of range", r))
}

// Unit matches lit exactly. Matching is case-insensitive because the literal
// is folded to lower case and callers fold their input the same way.
func (a *Arena) Unit(lit string, priority int) Ref {
	folded := []rune(strings.Map(unicode.ToLower, lit))
	return a.add(node{typ: NodeUnit, priority: priority, lit: folded, left: Dead, right: Dead})
}

// Class matches a single rune for which match returns true.
func (a *Arena) Class(name string, match func(rune) bool) Ref {
	return a.add(node{typ: NodeClass, class: &class{name: name, match: match}, left: Dead, right: Dead})
}

// Category matches a single rune of the given Unicode general category.
func (a *Arena) Category(name string) Ref {
	table, ok := unicode.Categories[name]
	if !ok {
		panic(fmt.Sprintf("regex: unknown unicode category %q", name))
	}
	return a.Class(name, func(r rune) bool { return unicode.Is(table, r) })
}

// Range matches a single rune in [lo, hi].
func (a *Arena) Range(lo, hi rune) Ref {
	return a.Class(fmt.Sprintf("%c-%c", lo, hi), func(r rune) bool { return r >= lo && r <= hi })
}

// AnyRune matches exactly one rune, whatever it is.
func (a *Arena) AnyRune() Ref {
	return a.Class("any", func(rune) bool { return true })
}

// Union matches whatever one of rs matches.
func (a *Arena) Union(rs ...Ref) Ref {
	if len(rs) == 0 {
		panic("regex: empty union")
	}
	children := make([]Ref, len(rs))
	copy(children, rs)
	return a.add(node{typ: NodeUnion, children: children, left: Dead, right: Dead})
}

// Concat matches rs in sequence. Longer sequences nest to the right.
func (a *Arena) Concat(rs ...Ref) Ref {
	switch len(rs) {
	case 0:
		panic("regex: empty concatenation")
	case 1:
		return rs[0]
	}
	right := rs[len(rs)-1]
	for i := len(rs) - 2; i >= 0; i-- {
		right = a.add(node{typ: NodeConcat, left: rs[i], right: right})
	}
	return right
}

func (a *Arena) ZeroOrOne(r Ref) Ref {
	return a.add(node{typ: NodeZeroOrOne, left: r, right: Dead})
}

func (a *Arena) ZeroOrMore(r Ref) Ref {
	return a.add(node{typ: NodeZeroOrMore, left: r, right: Dead})
}

func (a *Arena) OneOrMore(r Ref) Ref {
	star := a.ZeroOrMore(r)
	return a.add(node{typ: NodeOneOrMore, left: r, right: star})
}

// Intersection matches what both l and r match.
func (a *Arena) Intersection(l, r Ref) Ref {
	return a.add(node{typ: NodeIntersection, left: l, right: r})
}

// Negation matches every string r does not match, including every string
// that extends past the point where r died.
func (a *Arena) Negation(r Ref) Ref {
	return a.add(node{typ: NodeNegation, left: r, right: Dead})
}

// Type returns the variant of r.
func (a *Arena) Type(r Ref) NodeType {
	return a.node(r).typ
}

// Priority returns the priority r was built with. Derivatives carry the
// priority of the node they were derived from.
func (a *Arena) Priority(r Ref) int {
	if r == Dead {
		return 0
	}
	return a.node(r).priority
}

// String renders r for debugging. Consumed unit prefixes are shown before a
// '·'.
func (a *Arena) String(r Ref) string {
	var sb strings.Builder
	a.write(&sb, r)
	return sb.String()
}

func (a *Arena) write(sb *strings.Builder, r Ref) {
	if r == Dead {
		sb.WriteString("∅")
		return
	}
	n := a.node(r)
	switch n.typ {
	case NodeUnit:
		fmt.Fprintf(sb, "%q", string(n.lit[:n.pos])+"·"+string(n.lit[n.pos:]))
	case NodeClass:
		fmt.Fprintf(sb, "[%s]", n.class.name)
	case NodeEmpty:
		sb.WriteString("ε")
	case NodeUnion:
		sb.WriteByte('(')
		for i, c := range n.children {
			if i > 0 {
				sb.WriteString(" | ")
			}
			a.write(sb, c)
		}
		sb.WriteByte(')')
	case NodeConcat:
		sb.WriteByte('(')
		a.write(sb, n.left)
		sb.WriteByte(' ')
		a.write(sb, n.right)
		sb.WriteByte(')')
	case NodeIntersection:
		sb.WriteByte('(')
		a.write(sb, n.left)
		sb.WriteString(" & ")
		a.write(sb, n.right)
		sb.WriteByte(')')
	case NodeZeroOrOne:
		a.write(sb, n.left)
		sb.WriteByte('?')
	case NodeZeroOrMore:
		a.write(sb, n.left)
		sb.WriteByte('*')
	case NodeOneOrMore:
		a.write(sb, n.left)
		sb.WriteByte('+')
	case NodeNegation:
		if n.left == Dead {
			sb.WriteString("⊤")
			return
		}
		sb.WriteByte('!')
		a.write(sb, n.left)
	}
}
