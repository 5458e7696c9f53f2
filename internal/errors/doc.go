// Package errors provides structured, coded errors for minivdom.
//
// Every error carries a code (e.g. "E210") that maps to a registered
// template with a category, a short message and a longer explanation.
// Errors can be enriched with the tree path or file location where the
// problem was found, a suggestion, and a wrapped cause.
//
// # Error Categories
//
//   - render: reconciliation failures (missing target, unmounted node)
//   - validation: malformed node trees
//   - config: configuration file problems
//   - cli: command-line and dev panel failures
//
// # Usage
//
//	err := errors.New("E211").
//	    WithPath("div>ul>li[2]").
//	    WithSuggestion("Drop nil entries before building the sequence")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E211: Nil node in children
//	//
//	//   at div>ul>li[2]
//	//
//	//   Hint: Drop nil entries before building the sequence
package errors
