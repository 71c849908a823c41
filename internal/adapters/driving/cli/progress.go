package cli

import (
	"fmt"
	"io"

	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driving"
)

// Ensure progressPrinter implements the interface.
var _ driving.Progress = (*progressPrinter)(nil)

// progressPrinter writes one line per completed sampling step.
type progressPrinter struct {
	w      io.Writer
	styled bool
	styles styles
}

func newProgressPrinter(w io.Writer) *progressPrinter {
	return &progressPrinter{
		w:      w,
		styled: colourEnabled(w),
		styles: newStyles(),
	}
}

// CandidatePoolCreated prints the pool line.
func (p *progressPrinter) CandidatePoolCreated(poolSize int) {
	p.line("Created candidate pool from the %s top servers.", poolSize)
}

// SampleCreated prints the sample line.
func (p *progressPrinter) SampleCreated(sampleSize int) {
	p.line("Created sample of %s random servers.", sampleSize)
}

func (p *progressPrinter) line(format string, n int) {
	count := fmt.Sprint(n)
	if !p.styled {
		fmt.Fprintf(p.w, format+"\n", count)
		return
	}
	fmt.Fprintf(p.w, "%s "+format+"\n", p.styles.Step.Render("✓"), p.styles.Count.Render(count))
}
