// Command magicgen prints the native-width magic constant table of
// internal/consts, recomputed from e and the golden ratio.
//
// Usage:
//
//	go run ./scripts/magicgen [width...]
//
// With no arguments it prints the widths 8, 16, 32 and 64 as Go source ready
// to paste into the Table literal. Extra widths are printed as plain hex.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/AeonDave/rc5/internal/consts"
)

var errUsage = errors.New("usage error")

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "magicgen: %v\n", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(w io.Writer, args []string) error {
	if len(args) > 0 {
		for _, arg := range args {
			width, err := strconv.Atoi(arg)
			if err != nil || width <= 0 || width%8 != 0 {
				return fmt.Errorf("%w: invalid width %q", errUsage, arg)
			}
			p, q := consts.Derive(width)
			fmt.Fprintf(w, "P%d %0*x\nQ%d %0*x\n", width, width/4, p, width, width/4, q)
		}
		return nil
	}
	for _, width := range []int{8, 16, 32, 64} {
		p, q := consts.Derive(width)
		fmt.Fprintf(w, "\t%d: {P: %#0*x, Q: %#0*x},\n", width, width/4+2, p, width/4+2, q)
	}
	return nil
}
