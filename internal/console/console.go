// Package console holds the output plumbing shared by the examples.
package console

import (
	"fmt"
	"io"
	"os"
)

// Or returns w, or os.Stdout when w is nil.
func Or(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

// Println writes a line to w. Write errors are ignored: console output is
// best effort.
func Println(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(Or(w), a...)
}
