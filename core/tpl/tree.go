package tpl

import (
	"github.com/WilkinsonK/uri-routes/consts"
)

// Tree is a radix tree (compressed trie) indexing concrete paths and
// template paths side by side. Common prefixes share nodes, so lookup cost
// tracks path length rather than the number of stored templates.
//
// Structure for /user, /users, /user/:id:
//
//	root
//	 └── "user"  (data for /user)
//	      ├── "s" (data for /users)
//	      └── ":" (argument node)
//	           └── "id" (data for /user/:id)
//
// The zero value is ready to use.
type Tree[T any] struct {
	root node[T]
}

// Add stores data under the given template path. Template paths use the
// tree form produced by Variants: ":name" argument segments and "*name"
// wildcards, no optional markers.
//
// Argument nodes are shared positionally, so two templates that diverge
// only at an argument segment must agree on its name; Add panics otherwise.
// Callers that need an error instead pre-check with Conflicts.
func (tree *Tree[T]) Add(path string, data T) {
	i := 0      // current position in path
	offset := 0 // start of the current node's prefix within path
	n := &tree.root

	for {
	begin:
		switch n.kind {
		case consts.RuneColon:
			// Re-adding the same argument-terminated path updates in place.
			if i == len(path) {
				n.data = data
				return
			}

			// Separator after an argument: descend to the next child.
			if path[i] == consts.RuneFwdSlash {
				n, offset, _ = n.advance(path, data, i, offset)
				goto next
			}

		default:
			if i == len(path) {
				// Exact match, path already present.
				if i-offset == len(n.prefix) {
					n.data = data
					return
				}

				// Path is a strict prefix of this node, split it.
				n.split(i-offset, "", data)
				return
			}

			// Node prefix fully consumed, move on to children.
			if i-offset == len(n.prefix) {
				var control step
				n, offset, control = n.advance(path, data, i, offset)

				switch control {
				case stepStop:
					return
				case stepBegin:
					goto begin
				case stepNext:
					goto next
				}
			}

			// Divergence inside the prefix, split at the conflict point.
			if path[i] != n.prefix[i-offset] {
				n.split(i-offset, path[i:], data)
				return
			}
		}

	next:
		i++
	}
}

// Lookup finds the data and captured arguments for a concrete path.
// The argument slice is only allocated when the matched template has
// argument segments.
func (tree *Tree[T]) Lookup(path string) (T, []Arg) {
	var args []Arg

	data := tree.LookupNoAlloc(path, func(key string, value string) {
		args = append(args, Arg{key, value})
	})

	return data, args
}

// LookupNoAlloc finds the data for a concrete path without allocating,
// reporting captured arguments through the callback. This is the hot path:
// character-range indexing for child lookup, wildcard fallback, and gotos
// instead of function calls.
func (tree *Tree[T]) LookupNoAlloc(path string, addArg func(key string, value string)) T {
	var (
		i            uint     // position in path, unsigned for cheap bounds checks
		wildcardPath string   // path suffix saved for wildcard fallback
		wildcard     *node[T] // wildcard node saved for fallback
		n            = &tree.root
	)

	// Nearly every stored path starts with '/', skip the first iteration
	// when the first characters already agree.
	if len(path) > 0 && len(n.prefix) > 0 && path[0] == n.prefix[0] {
		i = 1
	}

begin:
	for i < uint(len(path)) {
		// Node prefix fully matched, look at children.
		if i == uint(len(n.prefix)) {
			if n.wildcard != nil {
				wildcard = n.wildcard
				wildcardPath = path[i:]
			}

			char := path[i]

			if char >= n.startIndex && char < n.endIndex {
				index := n.indices[char-n.startIndex]

				if index != 0 {
					n = n.children[index]
					path = path[i:]
					i = 1
					continue
				}
			}

			// No static child, try the argument node.
			if n.argument != nil {
				n = n.argument
				path = path[i:]
				i = 1

				// Capture until the next separator or end of path.
				for i < uint(len(path)) {
					if path[i] == consts.RuneFwdSlash {
						addArg(n.prefix, path[:i])
						index := n.indices[consts.RuneFwdSlash-n.startIndex]
						n = n.children[index]
						path = path[i:]
						i = 1
						goto begin
					}

					i++
				}

				addArg(n.prefix, path[:i])
				return n.data
			}

			goto notFound
		}

		// Divergence inside the prefix.
		if path[i] != n.prefix[i] {
			goto notFound
		}

		i++
	}

	// Exact match.
	if i == uint(len(n.prefix)) {
		return n.data
	}

notFound:
	if wildcard != nil {
		addArg(wildcard.prefix, wildcardPath)
		return wildcard.data
	}

	var empty T
	return empty
}

// Map applies transform to the data of every node in the tree, in place.
func (tree *Tree[T]) Map(transform func(T) T) {
	tree.root.walk(func(n *node[T]) {
		n.data = transform(n.data)
	})
}
