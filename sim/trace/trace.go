package trace

// TraceLevel controls the verbosity of dispatch tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures every admission and dispatch decision.
	TraceLevelDecisions TraceLevel = "decisions"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// DispatchTrace collects decision records during one policy run.
// A nil *DispatchTrace is valid and records nothing.
type DispatchTrace struct {
	Config     TraceConfig
	Admissions []AdmissionRecord
	Dispatches []DispatchRecord
}

// NewDispatchTrace creates a DispatchTrace ready for recording.
func NewDispatchTrace(config TraceConfig) *DispatchTrace {
	return &DispatchTrace{
		Config:     config,
		Admissions: make([]AdmissionRecord, 0),
		Dispatches: make([]DispatchRecord, 0),
	}
}

// Enabled reports whether records are kept.
func (dt *DispatchTrace) Enabled() bool {
	return dt != nil && dt.Config.Level == TraceLevelDecisions
}

// RecordAdmission appends an admission record.
func (dt *DispatchTrace) RecordAdmission(record AdmissionRecord) {
	if !dt.Enabled() {
		return
	}
	dt.Admissions = append(dt.Admissions, record)
}

// RecordDispatch appends a dispatch decision record.
func (dt *DispatchTrace) RecordDispatch(record DispatchRecord) {
	if !dt.Enabled() {
		return
	}
	dt.Dispatches = append(dt.Dispatches, record)
}
