package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeline_Push_ZeroLength_Dropped(t *testing.T) {
	// GIVEN an empty timeline
	tl := NewTimeline(4)

	// WHEN a zero-length segment is pushed
	tl.Push(Segment{Owner: ProcessOwner(1), Start: 3, End: 3})

	// THEN nothing is stored
	assert.Equal(t, 0, tl.Len())
}

func TestTimeline_Push_Overlap_Panics(t *testing.T) {
	tl := NewTimeline(4)
	tl.Push(Segment{Owner: ProcessOwner(1), Start: 0, End: 5})

	assert.Panics(t, func() {
		tl.Push(Segment{Owner: ProcessOwner(2), Start: 4, End: 6})
	})
}

func TestTimeline_Extend_SameOwnerTouching_Merges(t *testing.T) {
	// GIVEN P1 holding [0,2)
	tl := NewTimeline(4)
	tl.Extend(ProcessOwner(1), 0, 2)

	// WHEN P1 runs again from 2
	tl.Extend(ProcessOwner(1), 2, 4)

	// THEN a single [0,4) segment remains
	require.Equal(t, 1, tl.Len())
	assert.Equal(t, Segment{Owner: ProcessOwner(1), Start: 0, End: 4}, tl.Segments()[0])
}

func TestTimeline_Extend_DifferentOwner_Appends(t *testing.T) {
	tl := NewTimeline(4)
	tl.Extend(ProcessOwner(1), 0, 2)
	tl.Extend(ProcessOwner(2), 2, 3)
	tl.Extend(IdleOwner, 3, 5)
	tl.Extend(IdleOwner, 5, 6)

	assert.Equal(t, "[0,2)=P1,[2,3)=P2,[3,6)=idle", tl.String())
}

func TestTimeline_Coalesce_MergesAndIsIdempotent(t *testing.T) {
	// GIVEN pushed fragments that were never merged
	tl := NewTimeline(8)
	tl.Push(Segment{Owner: ProcessOwner(1), Start: 0, End: 1})
	tl.Push(Segment{Owner: ProcessOwner(1), Start: 1, End: 3})
	tl.Push(Segment{Owner: ProcessOwner(2), Start: 3, End: 4})
	tl.Push(Segment{Owner: ProcessOwner(1), Start: 4, End: 5})
	tl.Push(Segment{Owner: IdleOwner, Start: 5, End: 6})
	tl.Push(Segment{Owner: IdleOwner, Start: 6, End: 9})

	// WHEN coalesced twice
	tl.Coalesce()
	once := tl.Segments()
	tl.Coalesce()

	// THEN touching same-owner runs merge and a second pass changes nothing
	assert.Equal(t, "[0,3)=P1,[3,4)=P2,[4,5)=P1,[5,9)=idle", tl.String())
	assert.Equal(t, once, tl.Segments())
	assert.NoError(t, tl.Validate())
}

func TestTimeline_Coalesce_SameOwnerWithGap_NotMerged(t *testing.T) {
	tl := NewTimeline(2)
	tl.Push(Segment{Owner: ProcessOwner(1), Start: 0, End: 2})
	tl.Push(Segment{Owner: ProcessOwner(1), Start: 3, End: 4})

	tl.Coalesce()

	assert.Equal(t, 2, tl.Len())
}

func TestTimeline_Validate_DetectsViolations(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		wantErr  string
	}{
		{
			name: "gap",
			segments: []Segment{
				{Owner: ProcessOwner(1), Start: 0, End: 2},
				{Owner: ProcessOwner(2), Start: 3, End: 4},
			},
			wantErr: "gap",
		},
		{
			name: "uncoalesced",
			segments: []Segment{
				{Owner: ProcessOwner(1), Start: 0, End: 2},
				{Owner: ProcessOwner(1), Start: 2, End: 4},
			},
			wantErr: "not coalesced",
		},
		{
			name: "adjacent idle",
			segments: []Segment{
				{Owner: IdleOwner, Start: 0, End: 2},
				{Owner: IdleOwner, Start: 2, End: 4},
			},
			wantErr: "not coalesced",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Bypass Push/Extend so invalid shapes can be built.
			tl := &Timeline{segments: tt.segments}
			err := tl.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestTimeline_Queries(t *testing.T) {
	// GIVEN idle [0,2), P1 [2,5), P2 [5,6), P1 [6,8)
	tl := NewTimeline(4)
	tl.Extend(IdleOwner, 0, 2)
	tl.Extend(ProcessOwner(1), 2, 5)
	tl.Extend(ProcessOwner(2), 5, 6)
	tl.Extend(ProcessOwner(1), 6, 8)

	start, end := tl.Span()
	assert.Equal(t, int64(0), start)
	assert.Equal(t, int64(8), end)
	assert.Equal(t, int64(5), tl.BusyTime(1))
	assert.Equal(t, int64(1), tl.BusyTime(2))
	assert.Equal(t, int64(0), tl.BusyTime(3))
	assert.Equal(t, 2, tl.SegmentCount(1))
	assert.Equal(t, int64(2), tl.IdleTime())
	assert.Equal(t, []int64{1, 2, 1}, tl.DispatchSequence())

	owner, ok := tl.OccupantAt(5)
	assert.True(t, ok)
	assert.Equal(t, ProcessOwner(2), owner)
	owner, ok = tl.OccupantAt(0)
	assert.True(t, ok)
	assert.True(t, owner.Idle)
	_, ok = tl.OccupantAt(8)
	assert.False(t, ok, "end is exclusive")
}

func TestTimeline_DispatchSequence_IdleBetweenSameProcess_Collapses(t *testing.T) {
	tl := NewTimeline(3)
	tl.Extend(ProcessOwner(4), 0, 1)
	tl.Extend(IdleOwner, 1, 3)
	tl.Extend(ProcessOwner(4), 3, 5)

	assert.Equal(t, []int64{4}, tl.DispatchSequence())
}

func TestTimeline_Segments_ReturnsCopy(t *testing.T) {
	tl := NewTimeline(1)
	tl.Extend(ProcessOwner(1), 0, 3)

	segs := tl.Segments()
	segs[0].End = 100

	_, end := tl.Span()
	assert.Equal(t, int64(3), end)
}

func TestTimeline_Empty(t *testing.T) {
	tl := NewTimeline(0)
	start, end := tl.Span()
	assert.Zero(t, start)
	assert.Zero(t, end)
	assert.Empty(t, tl.DispatchSequence())
	assert.NoError(t, tl.Validate())
	assert.Equal(t, "", tl.String())
}
