// Reporter - Test Run Reporting Client
//
// Reporter reads test-run results files, enriches failures with source-code
// context extracted from their stack traces, and pushes the structured run
// to a remote reporting server.
package main

import (
	"os"

	"github.com/littlefrontender/reporter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
