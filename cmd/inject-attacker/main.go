// inject-attacker adds a synthetic attacker node to a sim-ln network
// directory: it reads peacetime_network.json and target.txt, connects
// the attacker to the best-capacitated non-neighbors of the target plus
// the target itself, and writes attacktime_network.json and attacker.csv.
//
// Usage: inject-attacker <network_directory>
//
// An optional attack.yaml in the directory overrides the injection
// parameters (channel fraction, capacities, scids, attacker pubkey).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/lnresearch/simtools/pkg/attack"
	"github.com/lnresearch/simtools/pkg/logging"
	"github.com/lnresearch/simtools/pkg/simgraph"
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("Usage: inject-attacker <network_directory>")
		os.Exit(1)
	}
	dir := flag.Arg(0)

	logger := logging.NewDefaultLogger()

	cfg, err := attack.LoadConfig(dir)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	result, err := attack.Run(dir, cfg, logger)
	if err != nil {
		fmt.Println(diagnostic(err))
		os.Exit(1)
	}

	fmt.Printf("Added attacker %s to network. Wrote output to %s\n",
		result.AttackerAlias, result.OutputPath)
}

// diagnostic maps pipeline errors to the messages callers grep for.
func diagnostic(err error) string {
	var missing *attack.MissingFileError
	if errors.As(err, &missing) {
		return fmt.Sprintf("Missing: %s", missing.Path)
	}
	var notFound *attack.TargetNotFoundError
	if errors.As(err, &notFound) {
		return fmt.Sprintf("No node with alias '%s' found.", notFound.Alias)
	}
	if errors.Is(err, simgraph.ErrEmptyNetwork) {
		return "No channels found in peacetime_network.json"
	}
	return err.Error()
}
