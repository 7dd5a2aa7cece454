package flags

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

// Parse parses os.Args and env into opts.
// A --help request prints usage and exits 0.
func Parse(opts any) error {
	return ParseArgs(opts, os.Args[1:])
}

// ParseArgs parses the given args into opts.
func ParseArgs(opts any, args []string) error {
	if _, err := flags.ParseArgs(opts, args); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		return fmt.Errorf("parsing flags: %w", err)
	}
	return nil
}
