package tpl

import (
	"fmt"
	"strings"

	"github.com/WilkinsonK/uri-routes/consts"
)

// node is a single radix tree node. A node can have static children, one
// argument child, and one wildcard child.
//
// Child lookup is O(1): indices maps a character (offset by startIndex) to a
// position in children, index 0 meaning no child.
//
// For templates /users, /users/:id, /users/:id/posts:
//
//	root (prefix: "")
//	 └── "users" (data 1)
//	      └── argument "id" (data 2)
//	           └── "/posts" (data 3)
type node[T any] struct {
	prefix     string     // common prefix stored at this node
	data       T          // stored data, zero when the node is purely structural
	children   []*node[T] // static children
	argument   *node[T]   // argument child (":name"), prefix holds the name
	wildcard   *node[T]   // wildcard child ("*name"), prefix holds the name
	indices    []uint8    // character offset -> children index
	startIndex uint8      // first character covered by indices
	endIndex   uint8      // one past the last character covered
	kind       byte       // ':', '*', or 0 for static
}

// split cuts the node's prefix at index and re-hangs the remainder as a
// child. When path is non-empty a second branch is appended for it;
// otherwise data lands on the shortened node itself.
func (n *node[T]) split(index int, path string, data T) {
	splitNode := n.clone(n.prefix[index:])

	n.reset(n.prefix[:index])

	if path == "" {
		n.data = data
		n.addChild(splitNode)
		return
	}

	n.addChild(splitNode)
	n.append(path, data)
}

// clone copies the node under a new prefix. The copy is shallow: children
// are shared, which is safe because inserts only ever add nodes.
func (n *node[T]) clone(prefix string) *node[T] {
	return &node[T]{
		prefix:     prefix,
		data:       n.data,
		indices:    n.indices,
		startIndex: n.startIndex,
		endIndex:   n.endIndex,
		children:   n.children,
		argument:   n.argument,
		wildcard:   n.wildcard,
		kind:       n.kind,
	}
}

// reset strips the node back to a purely structural static node keeping only
// the given prefix. Used by split to turn a leaf into an interior node.
func (n *node[T]) reset(prefix string) {
	var empty T
	n.prefix = prefix
	n.data = empty
	n.argument = nil
	n.wildcard = nil
	n.kind = 0
	n.startIndex = 0
	n.endIndex = 0
	n.indices = nil
	n.children = nil
}

// addChild registers a static child, growing the character index range as
// needed so the child is reachable in O(1) by its first character.
func (n *node[T]) addChild(child *node[T]) {
	// Index 0 is reserved to mean "no child here".
	if len(n.children) == 0 {
		n.children = append(n.children, nil)
	}

	firstChar := child.prefix[0]

	switch {
	case n.startIndex == 0:
		n.startIndex = firstChar
		n.indices = []uint8{0}
		n.endIndex = n.startIndex + uint8(len(n.indices))

	case firstChar < n.startIndex:
		diff := n.startIndex - firstChar
		newIndices := make([]uint8, diff+uint8(len(n.indices)))
		copy(newIndices[diff:], n.indices)
		n.startIndex = firstChar
		n.indices = newIndices
		n.endIndex = n.startIndex + uint8(len(n.indices))

	case firstChar >= n.endIndex:
		diff := firstChar - n.endIndex + 1
		newIndices := make([]uint8, diff+uint8(len(n.indices)))
		copy(newIndices, n.indices)
		n.indices = newIndices
		n.endIndex = n.startIndex + uint8(len(n.indices))
	}

	index := n.indices[firstChar-n.startIndex]

	if index == 0 {
		n.indices[firstChar-n.startIndex] = uint8(len(n.children))
		n.children = append(n.children, child)
		return
	}

	n.children[index] = child
}

// addTrailingSlash mirrors the node's data onto a "/" child so stored paths
// resolve with and without a trailing slash. Skipped when a slash child
// already exists or the node is a wildcard.
func (n *node[T]) addTrailingSlash(data T) {
	if strings.HasSuffix(n.prefix, consts.StrSlash) || n.kind == consts.RuneAsterisk ||
		(consts.RuneFwdSlash >= n.startIndex && consts.RuneFwdSlash < n.endIndex &&
			n.indices[consts.RuneFwdSlash-n.startIndex] != 0) {
		return
	}

	n.addChild(&node[T]{
		prefix: consts.StrSlash,
		data:   data,
	})
}

// append hangs the remaining path below the node, creating static, argument,
// and wildcard nodes as the path dictates.
func (n *node[T]) append(path string, data T) {
	for {
		if path == "" {
			n.data = data
			return
		}

		// Position of the next argument or wildcard marker.
		markerStart := strings.IndexByte(path, consts.RuneColon)

		if markerStart == -1 {
			markerStart = strings.IndexByte(path, consts.RuneAsterisk)
		}

		// Purely static remainder.
		if markerStart == -1 {
			if n.prefix == "" {
				n.prefix = path
				n.data = data
				n.addTrailingSlash(data)
				return
			}

			child := &node[T]{
				prefix: path,
				data:   data,
			}

			n.addChild(child)
			child.addTrailingSlash(data)
			return
		}

		// Marker at the current position.
		if markerStart == 0 {
			markerEnd := strings.IndexByte(path, consts.RuneFwdSlash)

			if markerEnd == -1 {
				markerEnd = len(path)
			}

			name := path[1:markerEnd]

			switch path[0] {
			case consts.RuneColon:
				// Argument nodes are shared positionally. Reuse an existing
				// one when the names agree, refuse when they don't.
				if n.argument != nil {
					if n.argument.prefix != name {
						panic(fmt.Sprintf(
							"conflicting parameter names %q and %q at the same position",
							n.argument.prefix, name))
					}

					n = n.argument
					path = path[markerEnd:]
					continue
				}

				child := &node[T]{prefix: name, kind: consts.RuneColon}
				child.addTrailingSlash(data)
				n.argument = child
				n = child
				path = path[markerEnd:]
				continue

			case consts.RuneAsterisk:
				child := &node[T]{prefix: name, kind: consts.RuneAsterisk}
				child.data = data
				n.wildcard = child
				return
			}
		}

		// Marker later in the path, hang the static part first.
		if n.prefix == "" {
			n.prefix = path[:markerStart]
			path = path[markerStart:]
			continue
		}

		child := &node[T]{
			prefix: path[:markerStart],
		}

		// "/" nodes inherit the parent's data so paths resolve with and
		// without the trailing slash.
		if child.prefix == consts.StrSlash {
			child.data = n.data
		}

		n.addChild(child)
		n = child
		path = path[markerStart:]
	}
}

// advance decides where insertion continues once the node's prefix has been
// fully consumed. Only called from Tree.Add.
// Returns the next node, the new offset, and a control directive.
func (n *node[T]) advance(path string, data T, i int, offset int) (*node[T], int, step) {
	char := path[i]

	if char >= n.startIndex && char < n.endIndex {
		index := n.indices[char-n.startIndex]

		if index != 0 {
			n = n.children[index]
			offset = i
			return n, offset, stepNext
		}
	}

	// Empty prefix means this is the root node.
	if n.prefix == "" {
		n.append(path[i:], data)
		return n, offset, stepStop
	}

	// Transition onto an existing argument node, checking that the incoming
	// template agrees on the argument's name.
	if n.argument != nil && path[i] == consts.RuneColon {
		name := path[i+1:]
		if slash := strings.IndexByte(name, consts.RuneFwdSlash); slash != -1 {
			name = name[:slash]
		}

		if n.argument.prefix != name {
			panic(fmt.Sprintf(
				"conflicting parameter names %q and %q at the same position",
				n.argument.prefix, name))
		}

		n = n.argument
		offset = i
		return n, offset, stepBegin
	}

	n.append(path[i:], data)
	return n, offset, stepStop
}

// walk calls fn exactly once for every node below and including this one.
func (n *node[T]) walk(fn func(*node[T])) {
	fn(n)

	for _, child := range n.children {
		if child == nil {
			continue
		}

		child.walk(fn)
	}

	if n.argument != nil {
		n.argument.walk(fn)
	}

	if n.wildcard != nil {
		n.wildcard.walk(fn)
	}
}
