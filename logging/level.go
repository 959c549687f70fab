package logging

// Level is the severity of a log message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

type levelInfo struct {
	color string
	name  string
	emoji string
}

// These names all have the same width so log messages line up.
var levels = [...]levelInfo{
	{"\x1b[36m", "DEBUG", "\U0001f4d8"},
	{"", "INFO ", "\U0001f4c4"},
	{"\x1b[33m", "WARN ", "⚠️"},
	{"\x1b[31m", "ERROR", "\U0001f6d1"},
}

const colorReset = "\x1b[0m"

func (level Level) info() *levelInfo {
	if level < LevelDebug || level > LevelError {
		return &levels[LevelError]
	}
	return &levels[level]
}

// Name returns the fixed-width level name used in line output.
func (level Level) Name() string { return level.info().name }

// String returns the lowercase level name, e.g. for metric labels.
func (level Level) String() string {
	switch level {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "error"
	}
}
