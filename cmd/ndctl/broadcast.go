package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dashflow-io/ndarray/internal/broadcast"
)

// broadcastCommand broadcasts N shapes supplied as repeated --shape
// flags and prints the resulting shape, or the incompatibility error.
func broadcastCommand(args []string) error {
	fs := pflag.NewFlagSet("broadcast", pflag.ContinueOnError)
	shapeFlags := fs.StringArray("shape", nil, "Comma-separated shape; repeat --shape once per input")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(*shapeFlags) == 0 {
		return fmt.Errorf("broadcast: at least one --shape is required")
	}

	shapes := make([][]int64, len(*shapeFlags))
	for i, s := range *shapeFlags {
		shape, err := parseShape(s)
		if err != nil {
			return err
		}
		shapes[i] = shape
	}

	result, err := broadcast.Shapes(shapes)
	if err != nil {
		fmt.Fprintf(os.Stdout, "incompatible: %v\n", err)
		return nil
	}
	fmt.Fprintf(os.Stdout, "result: %v\n", result)
	return nil
}
