package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScheduler_ValidNames_ReturnsCorrectType(t *testing.T) {
	tests := []struct {
		name Algorithm
		want Algorithm
	}{
		{"", FCFS},
		{FCFS, FCFS},
		{SJF, SJF},
		{SRTF, SRTF},
		{RR, RR},
	}
	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			s := NewScheduler(tt.name, 3)
			assert.Equal(t, tt.want, s.Name())
		})
	}
	rr, ok := NewScheduler(RR, 3).(*RoundRobinScheduler)
	require.True(t, ok)
	assert.Equal(t, int64(3), rr.Quantum)
}

func TestNewScheduler_UnknownName_Panics(t *testing.T) {
	assert.Panics(t, func() { NewScheduler("lottery", 0) })
}

func TestIsValidAlgorithm(t *testing.T) {
	for _, alg := range AllAlgorithms {
		assert.True(t, IsValidAlgorithm(string(alg)), alg)
	}
	assert.False(t, IsValidAlgorithm(""))
	assert.False(t, IsValidAlgorithm("FCFS"), "names are lower case")
}

func TestAlgorithm_TitleAndPreemptive(t *testing.T) {
	assert.Equal(t, "FCFS (FIFO)", FCFS.Title())
	assert.Equal(t, "Round Robin", RR.Title())
	assert.Equal(t, "custom", Algorithm("custom").Title())
	assert.False(t, FCFS.Preemptive())
	assert.False(t, SJF.Preemptive())
	assert.True(t, SRTF.Preemptive())
	assert.True(t, RR.Preemptive())
}

func TestParseAlgorithms(t *testing.T) {
	tests := []struct {
		in   string
		want []Algorithm
	}{
		{"", AllAlgorithms},
		{"all", AllAlgorithms},
		{"rr", []Algorithm{RR}},
		{" SRTF , fcfs", []Algorithm{SRTF, FCFS}},
		{"sjf,sjf,rr,sjf", []Algorithm{SJF, RR}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlgorithms(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithms_Unknown_ReturnsInvalidInput(t *testing.T) {
	_, err := ParseAlgorithms("fcfs,mlfq")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "mlfq")
}

func TestParseAlgorithms_All_ReturnsCopy(t *testing.T) {
	got, err := ParseAlgorithms("all")
	require.NoError(t, err)
	got[0] = RR
	assert.Equal(t, FCFS, AllAlgorithms[0])
}
