package congestion

import "fmt"

// invariantViolation panics, mirroring the teacher's own "BUG" idiom for
// conditions the host is never supposed to produce (stream.go, server.go,
// buffer_pool.go in the teacher all panic rather than return an error for
// these). Per spec.md §7 error kind 2, a third distinct path or a
// dominant-id outside {1,2} indicates host misuse and cannot be
// recovered from inside the controller.
func invariantViolation(format string, args ...interface{}) {
	panic(fmt.Sprintf("congestion: BUG: "+format, args...))
}
