package vars

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/c2h5oh/datasize"
	"github.com/glitchworks/gldemo/logging"
	"github.com/stretchr/testify/assert"
)

type failure struct {
	message string
	attrs   []logging.Attr
}

// captureFailures replaces the fatal path with a panic so tests can observe it.
func captureFailures(t *testing.T) *[]failure {
	var failures []failure
	oldFail := fail
	fail = func(message string, attrs ...logging.Attr) {
		failures = append(failures, failure{message, attrs})
		panic(&failures)
	}
	t.Cleanup(func() {
		fail = oldFail
		resetAll()
	})
	return &failures
}

func resetAll() {
	DebugContext = false
	AllocConsole = false
	ProjectPath = ""
	LogBufferSize = 256 * datasize.B
	LogDebugFilter = ""
}

func expectFailure(t *testing.T, failures *[]failure, message string, run func()) {
	before := len(*failures)
	assert.PanicsWithValue(t, failures, run)
	if assert.Len(t, *failures, before+1) {
		assert.Equal(t, message, (*failures)[before].message)
	}
}

func TestParseBool(t *testing.T) {
	for _, text := range []string{"0", "n", "no", "off", "false"} {
		parsed, ok := ParseBool(text)
		assert.True(t, ok, text)
		assert.False(t, parsed, text)
	}
	for _, text := range []string{"1", "y", "yes", "on", "true"} {
		parsed, ok := ParseBool(text)
		assert.True(t, ok, text)
		assert.True(t, parsed, text)
	}
	for _, text := range []string{"", "2", "True", "YES", " on", "maybe"} {
		_, ok := ParseBool(text)
		assert.False(t, ok, text)
	}
}

func TestParseArguments(t *testing.T) {
	captureFailures(t)
	ParseArguments([]string{
		"DebugContext=yes",
		"ProjectPath=/data/project",
		"LogBufferSize=4KB",
		"LogDebugFilter=*/scene/*",
		"AllocConsole=0",
	})
	assert.True(t, DebugContext)
	assert.False(t, AllocConsole)
	assert.Equal(t, "/data/project", ProjectPath)
	assert.Equal(t, 4*datasize.KB, LogBufferSize)
	assert.Equal(t, "*/scene/*", LogDebugFilter)
}

func TestParseArgumentsValueWithEquals(t *testing.T) {
	captureFailures(t)
	ParseArguments([]string{"ProjectPath=/a=b"})
	assert.Equal(t, "/a=b", ProjectPath)
}

func TestParseArgumentsFailures(t *testing.T) {
	failures := captureFailures(t)
	expectFailure(t, failures, "Invalid command-line argument syntax.", func() {
		ParseArguments([]string{"no-equals-sign"})
	})
	expectFailure(t, failures, "Command-line contains a value for an unknown variable.", func() {
		ParseArguments([]string{"Bogus=1"})
	})
	expectFailure(t, failures, "Invalid boolean.", func() {
		ParseArguments([]string{"DebugContext=maybe"})
	})
	expectFailure(t, failures, "Invalid size.", func() {
		ParseArguments([]string{"LogBufferSize=very big"})
	})
}

func TestLoadFile(t *testing.T) {
	captureFailures(t)
	path := filepath.Join(t.TempDir(), "vars.yml")
	assert.NoError(t, os.WriteFile(path, []byte(
		"DebugContext: on\nProjectPath: /from/file\nLogBufferSize: 1KB\n"), 0o644))

	LoadFile(path)
	assert.True(t, DebugContext)
	assert.Equal(t, "/from/file", ProjectPath)
	assert.Equal(t, datasize.KB, LogBufferSize)
}

func TestLoadFileFailures(t *testing.T) {
	failures := captureFailures(t)
	dir := t.TempDir()

	expectFailure(t, failures, "Failed to read variable file.", func() {
		LoadFile(filepath.Join(dir, "absent.yml"))
	})

	badSyntax := filepath.Join(dir, "bad.yml")
	assert.NoError(t, os.WriteFile(badSyntax, []byte("{\n"), 0o644))
	expectFailure(t, failures, "Failed to parse variable file.", func() {
		LoadFile(badSyntax)
	})

	unknown := filepath.Join(dir, "unknown.yml")
	assert.NoError(t, os.WriteFile(unknown, []byte("Bogus: 1\n"), 0o644))
	expectFailure(t, failures, "Variable file contains a value for an unknown variable.", func() {
		LoadFile(unknown)
	})

	nonScalar := filepath.Join(dir, "nonscalar.yml")
	assert.NoError(t, os.WriteFile(nonScalar, []byte("ProjectPath: [a, b]\n"), 0o644))
	expectFailure(t, failures, "Variable value must be a scalar.", func() {
		LoadFile(nonScalar)
	})
}

func TestLoadFileIfExists(t *testing.T) {
	captureFailures(t)
	LoadFileIfExists(filepath.Join(t.TempDir(), "absent.yml")) // no failure

	path := filepath.Join(t.TempDir(), "vars.yml")
	assert.NoError(t, os.WriteFile(path, []byte("AllocConsole: true\n"), 0o644))
	LoadFileIfExists(path)
	assert.True(t, AllocConsole)
}
