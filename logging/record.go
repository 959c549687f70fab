package logging

// Record is one complete log message prior to rendering.
//
// Records are constructed at the call site, rendered immediately by Log or Fail,
// and discarded; they are never retained or shared between goroutines.
type Record struct {
	Level    Level
	Location Location
	Message  string
	Attrs    []Attr
}

// NewRecord creates a record with the given attributes.
func NewRecord(level Level, location Location, message string, attrs ...Attr) Record {
	return Record{Level: level, Location: location, Message: message, Attrs: attrs}
}

// CheckFailure creates the record reported for a failed invariant check.
func CheckFailure(location Location, condition string, attrs ...Attr) Record {
	all := make([]Attr, 0, len(attrs)+1)
	all = append(all, String("condition", condition))
	all = append(all, attrs...)
	return Record{Level: LevelError, Location: location, Message: "Check failed.", Attrs: all}
}

// Add appends an attribute to the record.
func (r *Record) Add(name string, value Value) {
	r.Attrs = append(r.Attrs, Attr{Name: name, Value: value})
}

// Log writes this record to the log. If logging is unavailable the record is
// silently dropped.
func (r *Record) Log() {
	if writer == nil {
		return
	}
	if r.Level == LevelDebug && debugFilter != nil && !debugFilter.Match(r.Location.File) {
		return
	}
	recordsTotal.WithLabelValues(r.Level.String()).Inc()
	writer.Log(r)
}

// Fail displays this record as a fatal error and exits the program. It never
// returns, even when logging is unavailable.
func (r *Record) Fail() {
	if writer != nil {
		writer.Fail(r)
	}
	exitFunc(1)
}
