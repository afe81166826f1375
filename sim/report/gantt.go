package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/inference-sim/dispatch-sim/sim"
)

// cellWidth is the minimum width of one Gantt box.
const cellWidth = 8

// Gantt writes a one-line box chart of tl followed by a ruler of segment
// boundaries:
//
//	|   P1   |  idle  |   P2   |
//	0        3        5        9
func Gantt(w io.Writer, tl *sim.Timeline) error {
	segs := tl.Segments()
	if len(segs) == 0 {
		_, err := fmt.Fprintln(w, "(empty timeline)")
		return err
	}

	var boxes, ruler strings.Builder
	boxes.WriteString("|")
	for _, seg := range segs {
		label := seg.Owner.String()
		width := max(cellWidth, len(label)+2)
		left := (width - len(label)) / 2
		boxes.WriteString(strings.Repeat(" ", left))
		boxes.WriteString(label)
		boxes.WriteString(strings.Repeat(" ", width-left-len(label)))
		boxes.WriteString("|")

		start := fmt.Sprint(seg.Start)
		ruler.WriteString(start)
		ruler.WriteString(strings.Repeat(" ", max(width+1-len(start), 1)))
	}
	_, end := tl.Span()
	ruler.WriteString(fmt.Sprint(end))

	_, err := fmt.Fprintf(w, "%s\n%s\n", boxes.String(), ruler.String())
	return err
}

// Ticks writes one line per tick naming the occupant: "t=0: P1".
func Ticks(w io.Writer, tl *sim.Timeline) error {
	for _, seg := range tl.Segments() {
		for t := seg.Start; t < seg.End; t++ {
			if _, err := fmt.Fprintf(w, "t=%d: %s\n", t, seg.Owner); err != nil {
				return err
			}
		}
	}
	return nil
}
