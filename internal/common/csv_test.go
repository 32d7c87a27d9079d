package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRow struct {
	Message   string `csv:"message"`
	Timestamp string `csv:"timestamp"`
}

func TestReadCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	content := "message,timestamp\nhello,2025-06-10T12:00:00Z\nworld,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	rows, err := ReadCSVFile[testRow](path)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "hello", rows[0].Message)
	assert.Equal(t, "2025-06-10T12:00:00Z", rows[0].Timestamp)
	assert.Equal(t, "world", rows[1].Message)
	assert.Empty(t, rows[1].Timestamp)
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile[testRow](filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "output.csv")
	rows := []testRow{
		{Message: "first", Timestamp: "2025-06-10T12:00:00Z"},
		{Message: "second"},
	}

	require.NoError(t, WriteCSVFile(rows, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "message,timestamp", lines[0])
	assert.Equal(t, "first,2025-06-10T12:00:00Z", lines[1])
}

func TestWriteCSVFileNilRows(t *testing.T) {
	err := WriteCSVFile[testRow](nil, filepath.Join(t.TempDir(), "out.csv"))
	assert.Error(t, err)
}
