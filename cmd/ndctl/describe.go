package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/dashflow-io/ndarray/internal/dtype"
	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/ndarray"
)

func describeCommand(args []string) error {
	fs := pflag.NewFlagSet("describe", pflag.ContinueOnError)
	shapeFlag := fs.String("shape", "", "Comma-separated extents, e.g. 2,3,4")
	stridesFlag := fs.String("strides", "", "Comma-separated byte strides; defaults to natural strides for --order")
	dtypeFlag := fs.String("dtype", "float64", "Element dtype name")
	orderFlag := fs.String("order", "", "row or column (default: tuning file, else row)")
	modeFlag := fs.String("mode", "", "error, clamp, or wrap (default: tuning file, else error)")
	configFlag := fs.String("config", "", "Optional YAML tuning file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadTuningConfig(*configFlag)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	d, err := parseDtype(*dtypeFlag)
	if err != nil {
		return err
	}
	shape, err := parseShape(*shapeFlag)
	if err != nil {
		return err
	}
	order, err := cfg.order(*orderFlag)
	if err != nil {
		return err
	}
	mode, err := cfg.mode(*modeFlag)
	if err != nil {
		return err
	}

	width := dtype.Width(d)
	if width == 0 {
		return fmt.Errorf("dtype %s has no fixed width; describe needs a concrete buffer size", *dtypeFlag)
	}

	var a *ndarray.Array
	if *stridesFlag == "" {
		n := int64(1)
		for _, s := range shape {
			n *= s
		}
		a, err = ndarray.FromShape(d, make([]byte, n*int64(width)), shape, order, mode,
			[]indexmode.Mode{mode})
	} else {
		strides, perr := parseShape(*stridesFlag)
		if perr != nil {
			return perr
		}
		min, max := minMaxReach(shape, strides)
		bufLen := (max-min)/int64(width) + 1
		a, err = ndarray.New(d, make([]byte, bufLen*int64(width)), shape, strides, 0, order, mode,
			[]indexmode.Mode{mode})
	}
	if err != nil {
		return err
	}

	min, max := a.MinMaxReach()
	fmt.Fprintf(os.Stdout, "dtype:          %s\n", *dtypeFlag)
	fmt.Fprintf(os.Stdout, "ndims:          %d\n", a.Ndims())
	fmt.Fprintf(os.Stdout, "shape:          %v\n", a.Shape())
	fmt.Fprintf(os.Stdout, "strides:        %v\n", a.Strides())
	fmt.Fprintf(os.Stdout, "offset:         %d\n", a.Offset())
	fmt.Fprintf(os.Stdout, "length:         %d\n", a.Length())
	fmt.Fprintf(os.Stdout, "byte_length:    %d\n", a.ByteLength())
	fmt.Fprintf(os.Stdout, "min/max reach:  %d / %d\n", min, max)
	fmt.Fprintf(os.Stdout, "single_segment: %t\n", a.IsSingleSegment())
	fmt.Fprintf(os.Stdout, "contiguous:     %t\n", a.IsContiguous())
	fmt.Fprintf(os.Stdout, "row_major_flag: %t\n", a.Flags()&ndarray.RowMajorContiguous != 0)
	fmt.Fprintf(os.Stdout, "col_major_flag: %t\n", a.Flags()&ndarray.ColMajorContiguous != 0)
	fmt.Fprintf(os.Stdout, "nonsingleton:   %d\n", a.NonsingletonDimensions())
	fmt.Fprintf(os.Stdout, "singleton:      %d\n", a.SingletonDimensions())
	return nil
}

// minMaxReach mirrors layout.MinMaxViewBufferIndex for a zero offset,
// used here only to size a buffer large enough for an explicit
// --strides descriptor before one exists to ask.
func minMaxReach(shape, strides []int64) (min, max int64) {
	for i, s := range strides {
		if shape[i] == 0 {
			return 0, 0
		}
		if s > 0 {
			max += s * (shape[i] - 1)
		} else if s < 0 {
			min += s * (shape[i] - 1)
		}
	}
	return min, max
}
