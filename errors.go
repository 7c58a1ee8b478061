package peg

import "fmt"

var (
	errorNilBody = func(name string) error { return errorf("rule %q has no body: Define must be called before parsing", name) }

	errorCallstackOverflow = errorf("callstack overflow: recursion depth limit reached")
)

// pegError is the concrete error type this package returns. Parse failure
// itself is never an error (see Expr.Parse); these are reserved for
// construction-time misuse and evaluation limits.
type pegError struct {
	value string
}

func errorf(format string, v ...interface{}) error {
	return &pegError{fmt.Sprintf(format, v...)}
}

func (err *pegError) Error() string {
	return "peg: " + err.value
}
