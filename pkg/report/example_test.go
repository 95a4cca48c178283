package report_test

import (
	"fmt"

	"github.com/myutil/diag/pkg/report"
)

func ExampleRender() {
	err := report.New("connection refused")
	err = report.Wrap(err, "fetching feed")

	fmt.Println(report.Render(err, false, false))
	fmt.Println(report.Render(err, false, true))
	// Output:
	// fetching feed
	// fetching feed: connection refused
}

func ExampleWrap() {
	var err error // from some failing call
	if wrapped := report.Wrap(err, "loading config"); wrapped != nil {
		fmt.Println(wrapped)
	}
	fmt.Println("wrapping nil stays nil")
	// Output:
	// wrapping nil stays nil
}
