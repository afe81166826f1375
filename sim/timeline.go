package sim

import (
	"fmt"
	"strings"
)

// Owner identifies who occupies the CPU during a Segment: a process, or nobody.
// Owner is comparable; two idle owners are always equal.
type Owner struct {
	PID  int64
	Idle bool
}

// IdleOwner is the synthetic occupant of idle periods.
var IdleOwner = Owner{Idle: true}

// ProcessOwner returns the Owner for a process ID.
func ProcessOwner(id int64) Owner {
	return Owner{PID: id}
}

func (o Owner) String() string {
	if o.Idle {
		return "idle"
	}
	return fmt.Sprintf("P%d", o.PID)
}

// Segment is the half-open interval [Start, End) during which Owner holds the CPU.
// Start < End always holds for stored segments.
type Segment struct {
	Owner Owner
	Start int64
	End   int64
}

// Len returns the segment length in ticks.
func (s Segment) Len() int64 {
	return s.End - s.Start
}

func (s Segment) String() string {
	return fmt.Sprintf("[%d,%d)=%s", s.Start, s.End, s.Owner)
}

// Timeline is the ordered, non-overlapping execution record of one run.
type Timeline struct {
	segments []Segment
}

// NewTimeline returns an empty timeline with room for capacity segments.
func NewTimeline(capacity int) *Timeline {
	return &Timeline{segments: make([]Segment, 0, capacity)}
}

// Push appends a segment. Zero-length segments are dropped.
// Panics if seg starts before the previous segment ends.
func (tl *Timeline) Push(seg Segment) {
	if seg.End <= seg.Start {
		return
	}
	if n := len(tl.segments); n > 0 && seg.Start < tl.segments[n-1].End {
		panic(fmt.Sprintf("Timeline.Push: %v overlaps %v", seg, tl.segments[n-1]))
	}
	tl.segments = append(tl.segments, seg)
}

// Extend lengthens the last segment to end when it belongs to owner and ends
// exactly at start; otherwise it pushes a new segment.
func (tl *Timeline) Extend(owner Owner, start, end int64) {
	if end <= start {
		return
	}
	if n := len(tl.segments); n > 0 {
		last := &tl.segments[n-1]
		if last.Owner == owner && last.End == start {
			last.End = end
			return
		}
	}
	tl.Push(Segment{Owner: owner, Start: start, End: end})
}

// Coalesce merges adjacent segments with the same owner and touching
// boundaries in a single left-to-right pass. Idempotent.
func (tl *Timeline) Coalesce() {
	if len(tl.segments) < 2 {
		return
	}
	merged := tl.segments[:1]
	for _, seg := range tl.segments[1:] {
		last := &merged[len(merged)-1]
		if last.Owner == seg.Owner && last.End == seg.Start {
			last.End = seg.End
			continue
		}
		merged = append(merged, seg)
	}
	tl.segments = merged
}

// Len returns the number of segments.
func (tl *Timeline) Len() int {
	return len(tl.segments)
}

// Segments returns a copy of the segments in order.
func (tl *Timeline) Segments() []Segment {
	out := make([]Segment, len(tl.segments))
	copy(out, tl.segments)
	return out
}

// Span returns the first start and the last end. Both are 0 for an empty timeline.
func (tl *Timeline) Span() (start, end int64) {
	if len(tl.segments) == 0 {
		return 0, 0
	}
	return tl.segments[0].Start, tl.segments[len(tl.segments)-1].End
}

// BusyTime returns the total ticks owned by process id.
func (tl *Timeline) BusyTime(id int64) int64 {
	var total int64
	owner := ProcessOwner(id)
	for _, seg := range tl.segments {
		if seg.Owner == owner {
			total += seg.Len()
		}
	}
	return total
}

// SegmentCount returns how many segments process id owns.
func (tl *Timeline) SegmentCount(id int64) int {
	count := 0
	owner := ProcessOwner(id)
	for _, seg := range tl.segments {
		if seg.Owner == owner {
			count++
		}
	}
	return count
}

// IdleTime returns the total idle ticks.
func (tl *Timeline) IdleTime() int64 {
	var total int64
	for _, seg := range tl.segments {
		if seg.Owner.Idle {
			total += seg.Len()
		}
	}
	return total
}

// OccupantAt returns the owner of tick t, or false if t is outside the timeline.
func (tl *Timeline) OccupantAt(t int64) (Owner, bool) {
	for _, seg := range tl.segments {
		if t >= seg.Start && t < seg.End {
			return seg.Owner, true
		}
	}
	return Owner{}, false
}

// DispatchSequence returns busy owners in order, collapsing consecutive
// repeats and skipping idle periods. P1 idle P1 P2 yields [P1 P2].
func (tl *Timeline) DispatchSequence() []int64 {
	var seq []int64
	for _, seg := range tl.segments {
		if seg.Owner.Idle {
			continue
		}
		if n := len(seq); n > 0 && seq[n-1] == seg.Owner.PID {
			continue
		}
		seq = append(seq, seg.Owner.PID)
	}
	return seq
}

// Validate checks the finalized-timeline invariants: positive lengths,
// ordered starts, no overlaps, no gaps, and no uncoalesced neighbours.
func (tl *Timeline) Validate() error {
	for i, seg := range tl.segments {
		if seg.Start >= seg.End {
			return fmt.Errorf("segment %d %v: start must be < end", i, seg)
		}
		if i == 0 {
			continue
		}
		prev := tl.segments[i-1]
		switch {
		case seg.Start < prev.End:
			return fmt.Errorf("segment %d %v overlaps %v", i, seg, prev)
		case seg.Start > prev.End:
			return fmt.Errorf("gap [%d,%d) between segments %d and %d is not an idle segment", prev.End, seg.Start, i-1, i)
		case seg.Owner == prev.Owner:
			return fmt.Errorf("segments %d and %d share owner %s and touch; timeline is not coalesced", i-1, i, seg.Owner)
		}
	}
	return nil
}

func (tl *Timeline) String() string {
	var sb strings.Builder
	for i, seg := range tl.segments {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(seg.String())
	}
	return sb.String()
}
