// forward-report summarizes a sim-ln forwards CSV by outgoing channel:
// total volume, forward count, and average size per channel, sorted by
// descending total.
//
// Usage: forward-report <csv_file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/lnresearch/simtools/pkg/forwards"
	"github.com/lnresearch/simtools/pkg/logging"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("Usage: forward-report <csv_file>")
		os.Exit(1)
	}
	path := flag.Arg(0)

	logger := logging.NewDefaultLogger()
	logger.Debug("aggregating forwards", logging.Path(path))

	summary, err := forwards.Aggregate(path)
	if err != nil {
		// Errors are reported, not escalated: the report simply does
		// not get printed and the process exits cleanly.
		switch {
		case errors.Is(err, fs.ErrNotExist):
			fmt.Printf("Error: File '%s' not found\n", path)
		case errors.Is(err, forwards.ErrNoData):
			fmt.Println("No data found in file")
		default:
			fmt.Printf("Error reading file: %v\n", err)
		}
		logger.Debug("aggregation failed", logging.Path(path), logging.Err(err))
		return
	}

	summary.Render(os.Stdout)
}
