package regex

// Derive returns the derivative of r by c, allocated in a, or Dead.
// r may live in a or in one of its parents.
func (a *Arena) Derive(r Ref, c rune) Ref {
	if r == Dead {
		return Dead
	}
	n := a.node(r)
	switch n.typ {
	case NodeUnit:
		if n.pos >= len(n.lit) || n.lit[n.pos] != c {
			return Dead
		}
		next := n
		next.pos++
		return a.add(next)

	case NodeClass:
		if !n.class.match(c) {
			return Dead
		}
		return a.emptyWith(n.priority)

	case NodeEmpty:
		return Dead

	case NodeUnion:
		var live []Ref
		for _, child := range n.children {
			if d := a.Derive(child, c); d != Dead {
				live = append(live, d)
			}
		}
		return a.union(live, n.priority)

	case NodeConcat:
		// Nullability of the left side is decided before advancing it.
		head := a.Derive(n.left, c)
		if head != Dead {
			head = a.add(node{typ: NodeConcat, priority: n.priority, left: head, right: n.right})
		}
		if !a.Nullable(n.left) {
			return head
		}
		tail := a.Derive(n.right, c)
		switch {
		case head == Dead:
			return a.withPriority(tail, n.priority)
		case tail == Dead:
			return head
		}
		return a.add(node{typ: NodeUnion, priority: n.priority, children: []Ref{head, tail}, left: Dead, right: Dead})

	case NodeZeroOrOne:
		return a.withPriority(a.Derive(n.left, c), n.priority)

	case NodeZeroOrMore:
		d := a.Derive(n.left, c)
		if d == Dead {
			return Dead
		}
		return a.add(node{typ: NodeConcat, priority: n.priority, left: d, right: r})

	case NodeOneOrMore:
		d := a.Derive(n.left, c)
		if d == Dead {
			return Dead
		}
		return a.add(node{typ: NodeConcat, priority: n.priority, left: d, right: n.right})

	case NodeIntersection:
		l := a.Derive(n.left, c)
		if l == Dead {
			return Dead
		}
		rr := a.Derive(n.right, c)
		if rr == Dead {
			return Dead
		}
		return a.add(node{typ: NodeIntersection, priority: n.priority, left: l, right: rr})

	case NodeNegation:
		if n.left == Dead {
			// Complement of nothing: stays alive forever.
			return r
		}
		d := a.Derive(n.left, c)
		if d == Dead {
			return a.anythingWith(n.priority)
		}
		return a.add(node{typ: NodeNegation, priority: n.priority, left: d, right: Dead})
	}
	panic("regex: unknown node type " + n.typ.String())
}

// Nullable reports whether r accepts the empty continuation, i.e. whether a
// match is complete at this point.
func (a *Arena) Nullable(r Ref) bool {
	if r == Dead {
		return false
	}
	n := a.node(r)
	switch n.typ {
	case NodeUnit:
		return n.pos == len(n.lit)
	case NodeClass:
		return false
	case NodeEmpty:
		return true
	case NodeUnion:
		for _, child := range n.children {
			if a.Nullable(child) {
				return true
			}
		}
		return false
	case NodeConcat, NodeIntersection:
		return a.Nullable(n.left) && a.Nullable(n.right)
	case NodeZeroOrOne, NodeZeroOrMore:
		return true
	case NodeOneOrMore:
		return a.Nullable(n.left)
	case NodeNegation:
		return n.left == Dead || !a.Nullable(n.left)
	}
	panic("regex: unknown node type " + n.typ.String())
}

// Match reports whether r matches the whole of s. Input is not folded.
func (a *Arena) Match(r Ref, s string) bool {
	for _, c := range s {
		if r = a.Derive(r, c); r == Dead {
			return false
		}
	}
	return a.Nullable(r)
}

func (a *Arena) union(live []Ref, priority int) Ref {
	switch len(live) {
	case 0:
		return Dead
	case 1:
		return a.withPriority(live[0], priority)
	}
	return a.add(node{typ: NodeUnion, priority: priority, children: live, left: Dead, right: Dead})
}

// withPriority returns r, or a copy of it carrying priority when they differ.
func (a *Arena) withPriority(r Ref, priority int) Ref {
	if r == Dead {
		return Dead
	}
	n := a.node(r)
	if n.priority == priority {
		return r
	}
	n.priority = priority
	return a.add(n)
}

func (a *Arena) emptyWith(priority int) Ref {
	if priority == 0 {
		return a.empty
	}
	return a.add(node{typ: NodeEmpty, priority: priority, left: Dead, right: Dead})
}

func (a *Arena) anythingWith(priority int) Ref {
	if priority == 0 {
		return a.anything
	}
	return a.add(node{typ: NodeNegation, priority: priority, left: Dead, right: Dead})
}
