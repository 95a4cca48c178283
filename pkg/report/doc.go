// Package report provides the error-reporting half of the process
// observability layer: error values that capture their call stack at
// construction, a process-wide rendering hook that filters which frames
// are shown, and four fixed textual renderings of an error chain.
//
// # Reports
//
// New and Wrap build a cause chain the way errors.New and fmt.Errorf do,
// except that the innermost constructor also captures the call stack:
//
//	err := report.New("connection refused")
//	err = report.Wrap(err, "fetching feed")
//	err = report.Wrap(err, "startup failed")
//
// Reports interoperate with the standard library: they implement Unwrap,
// so errors.Is and errors.As see through them.
//
// # The Hook
//
// Install is called once at process start with the origin-package prefix.
// Verbose renderings then keep only frames whose symbol name starts with
// the prefix; frames without a symbol name are always kept, and the empty
// prefix keeps everything:
//
//	report.MustInstall("github.com/myutil")
//
// Two optional report sections, both off by default, can be enabled at
// install time with WithLocationSection and WithEnvSection.
//
// # The Four Renderings
//
// Every error has exactly four renderings, selected by the
// (verbose, alternate) pair of Render or, on report values, by fmt flags:
//
//	fmt.Sprintf("%v", err)   // compact: "startup failed"
//	fmt.Sprintf("%#v", err)  // compact-alternate: "startup failed: fetching feed: connection refused"
//	fmt.Sprintf("%+v", err)  // verbose: message, cause list, filtered stack trace
//	fmt.Sprintf("%+#v", err) // verbose-alternate: the same, indented and numbered
//
// The cause chain is rendered outermost first in all four forms.
package report
