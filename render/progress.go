package render

import (
	"fmt"
	"io"
)

// Progress observes rendering. Report receives the completed fraction in
// [0,1]; successive values never decrease. A Renderer never calls Report
// concurrently, so implementations need no locking of their own.
type Progress interface {
	Report(fraction float64)
}

// NoProgress discards reports.
type NoProgress struct{}

func (NoProgress) Report(float64) {}

// TerminalProgress prints "task : NN.N%" lines, skipping reports that would
// print the same percentage again. It is not safe for concurrent use; it
// relies on the Renderer serializing reports.
type TerminalProgress struct {
	Out  io.Writer
	Task string

	last int
}

func NewTerminalProgress(out io.Writer, task string) *TerminalProgress {
	return &TerminalProgress{Out: out, Task: task, last: -1}
}

func (p *TerminalProgress) Report(fraction float64) {
	permille := int(fraction * 1000)
	if permille == p.last {
		return
	}
	p.last = permille
	fmt.Fprintf(p.Out, "%s : %.1f%%\n", p.Task, float64(permille)/10)
}
