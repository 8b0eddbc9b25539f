package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unsafe"

	"github.com/spf13/pflag"

	"github.com/dashflow-io/ndarray/internal/dtype"
	"github.com/dashflow-io/ndarray/internal/indexmode"
	"github.com/dashflow-io/ndarray/internal/kernel"
	"github.com/dashflow-io/ndarray/internal/ndarray"
)

// builtinKernels are the element functions available to "ndctl apply".
// All of them operate on float64 elements only; apply always builds a
// float64 array and has no dtype flag.
var builtinKernels = map[string]kernel.Func{
	"identity": func(data [][]byte, ptrs []int64) {},
	"scale": func(data [][]byte, ptrs []int64) {
		v := *(*float64)(unsafe.Pointer(&data[0][ptrs[0]]))
		*(*float64)(unsafe.Pointer(&data[0][ptrs[0]])) = v * 2
	},
	"negate": func(data [][]byte, ptrs []int64) {
		v := *(*float64)(unsafe.Pointer(&data[0][ptrs[0]]))
		*(*float64)(unsafe.Pointer(&data[0][ptrs[0]])) = -v
	},
	"abs": func(data [][]byte, ptrs []int64) {
		v := *(*float64)(unsafe.Pointer(&data[0][ptrs[0]]))
		*(*float64)(unsafe.Pointer(&data[0][ptrs[0]])) = math.Abs(v)
	},
}

// applyCommand runs one of the builtin element kernels in place over a
// float64 array described by --shape/--order, printing the buffer
// before and after.
func applyCommand(args []string) error {
	fs := pflag.NewFlagSet("apply", pflag.ContinueOnError)
	shapeFlag := fs.String("shape", "", "Comma-separated extents, e.g. 2,3")
	orderFlag := fs.String("order", "row", "row or column")
	modeFlag := fs.String("mode", "error", "error, clamp, or wrap")
	kernelFlag := fs.String("kernel", "scale", "identity, scale, negate, or abs")
	valuesFlag := fs.String("values", "", "Comma-separated float64 seed values, in --order view order; defaults to 1..n")
	if err := fs.Parse(args); err != nil {
		return err
	}

	fn, ok := builtinKernels[*kernelFlag]
	if !ok {
		return fmt.Errorf("unknown kernel %q (want identity, scale, negate, or abs)", *kernelFlag)
	}
	shape, err := parseShape(*shapeFlag)
	if err != nil {
		return err
	}
	order, err := parseOrder(*orderFlag)
	if err != nil {
		return err
	}
	mode, err := parseMode(*modeFlag)
	if err != nil {
		return err
	}

	n := int64(1)
	for _, s := range shape {
		n *= s
	}
	seeds, err := seedValues(*valuesFlag, n)
	if err != nil {
		return err
	}

	a, err := ndarray.FromShape(dtype.Float64, make([]byte, n*8), shape, order, mode,
		[]indexmode.Mode{mode})
	if err != nil {
		return err
	}
	for i := int64(0); i < n; i++ {
		if err := ndarray.SetVind(a, i, seeds[i]); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "before: %v\n", seeds)

	d := kernel.New(fn)
	if err := d.Run([]kernel.View{kernel.ViewOf(a)}); err != nil {
		return err
	}

	after := make([]float64, n)
	for i := int64(0); i < n; i++ {
		v, err := ndarray.GetVind[float64](a, i)
		if err != nil {
			return err
		}
		after[i] = v
	}
	fmt.Fprintf(os.Stdout, "after:  %v\n", after)
	return nil
}

func seedValues(spec string, n int64) ([]float64, error) {
	if spec == "" {
		out := make([]float64, n)
		for i := range out {
			out[i] = float64(i + 1)
		}
		return out, nil
	}
	parts := strings.Split(spec, ",")
	if int64(len(parts)) != n {
		return nil, fmt.Errorf("--values has %d entries, shape needs %d", len(parts), n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}
