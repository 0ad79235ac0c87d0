package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/computor/internal/generate"
)

// Generate writes count random equations to out, one per line.
func Generate(out io.Writer, count int, seed uint64) error {
	g := generate.New(seed)
	for range count {
		if _, err := fmt.Fprintln(out, g.Equation()); err != nil {
			return err
		}
	}
	return nil
}
