package log

import "sync"

// Entry is a single message captured by MemoryLogger.
type Entry struct {
	Level  string
	Msg    string
	Fields []Field
}

// Field returns the value of the named field and whether it was present.
func (e Entry) Field(key string) (any, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MemoryLogger implements Logger by keeping every entry in memory.
// It is meant for tests that assert on diagnostics.
type MemoryLogger struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryLogger creates an empty MemoryLogger.
func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (m *MemoryLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, fields) }
func (m *MemoryLogger) Info(msg string, fields ...Field)  { m.record("info", msg, fields) }
func (m *MemoryLogger) Warn(msg string, fields ...Field)  { m.record("warn", msg, fields) }
func (m *MemoryLogger) Error(msg string, fields ...Field) { m.record("error", msg, fields) }

// Entries returns a copy of the captured entries in log order.
func (m *MemoryLogger) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Level returns the captured entries with the given level.
func (m *MemoryLogger) Level(level string) []Entry {
	var out []Entry
	for _, e := range m.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (m *MemoryLogger) record(level, msg string, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{Level: level, Msg: msg, Fields: append([]Field(nil), fields...)})
}
