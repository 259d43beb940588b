package tpl

// step tells the tree's main insertion loop what to do next. Using a small
// enum keeps Add as a single loop with gotos instead of deep recursion.
type step int

const (
	// stepStop ends traversal, the path is fully processed
	stepStop step = iota

	// stepBegin restarts the loop, used after switching onto an argument node
	stepBegin

	// stepNext continues with the next character
	stepNext
)
