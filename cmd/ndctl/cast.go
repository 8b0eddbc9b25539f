package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dashflow-io/ndarray/internal/dtype"
)

// castCommand prints whether a cast from one dtype to another is
// allowed under a given casting mode.
func castCommand(args []string) error {
	fs := pflag.NewFlagSet("cast", pflag.ContinueOnError)
	fromFlag := fs.String("from", "", "Source dtype name")
	toFlag := fs.String("to", "", "Destination dtype name")
	modeFlag := fs.String("mode", "safe", "no, equiv, safe, same-kind, or unsafe")
	if err := fs.Parse(args); err != nil {
		return err
	}

	from, err := parseDtype(*fromFlag)
	if err != nil {
		return err
	}
	to, err := parseDtype(*toFlag)
	if err != nil {
		return err
	}
	mode, err := parseCastingMode(*modeFlag)
	if err != nil {
		return err
	}

	allowed := dtype.AllowedCast(from, to, mode)
	fmt.Fprintf(os.Stdout, "%s -> %s under %s: %t\n", *fromFlag, *toFlag, *modeFlag, allowed)
	fmt.Fprintf(os.Stdout, "  safe:      %t\n", dtype.SafeCast(from, to))
	fmt.Fprintf(os.Stdout, "  same-kind: %t\n", dtype.SameKindCast(from, to))
	return nil
}
