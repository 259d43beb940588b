package tpl

// Arg is a named value captured from, or substituted into, a template
// argument segment.
//
// Example:
//   Template: /users/:id/posts/:postId
//   Path:     /users/123/posts/456
//   Result:   []Arg{{Key: "id", Value: "123"}, {Key: "postId", Value: "456"}}
//
// A slice of Arg is cheaper than a map for the handful of arguments a
// template carries, and it keeps them in template order.
type Arg struct {
	Key   string
	Value string
}

// ArgSpec describes one declared argument of a template: its name, whether
// a value must be supplied at build time, and whether it is a trailing
// wildcard capturing the remainder of the path.
type ArgSpec struct {
	Name     string
	Required bool
	Wildcard bool
}
