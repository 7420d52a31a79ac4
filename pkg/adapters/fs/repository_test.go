package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k5aq/adifcount/pkg/core"
)

const sampleLog = `ADIF Export from WSJT-X
<adif_ver:5>3.1.0
<programid:6>WSJT-X
<EOH>
<call:5>W1ABC <gridsquare:4>FN42 <mode:3>FT8 <qso_date:8>20240115 <time_on:6>010203 <eor>
<call:5>w1xyz <gridsquare:4>FN31 <mode:3>FT8 <qso_date:8>20240115 <time_on:6>020304 <eor>
<call:4>K5AQ <gridsquare:4>EM10 <mode:3>FT4 <qso_date:8>20240116 <time_on:6>030405 <eor>
`

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLogFile_Records(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "wsjtx_log.adi", sampleLog)

	log := NewLogFile(Config{Path: path})
	records, err := log.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "W1ABC", records[0].Call())
	assert.Equal(t, "20240116", records[2].Date())
	assert.Equal(t, "FN31", records[1]["GRIDSQUARE"])

	state := log.State().(LogFileState)
	assert.Equal(t, path, state.Resolved)
	assert.Equal(t, 3, state.LastRecords)
	assert.NotNil(t, state.LastRead)
	assert.False(t, state.WatcherActive)
}

func TestLogFile_RecordsBracketedName(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "log[1].adi", sampleLog)

	log := NewLogFile(Config{Path: path})
	records, err := log.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, path, log.Location())
}

func TestLogFile_HomeDir(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "wsjtx_log.adi", sampleLog)

	log := NewLogFile(Config{Path: "wsjtx_log.adi", HomeDir: dir})
	records, err := log.Records(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, filepath.Join(dir, "wsjtx_log.adi"), log.Location())
}

func TestLogFile_NotFound(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		log := NewLogFile(Config{Path: filepath.Join(dir, "nope.adi")})
		_, err := log.Records(context.Background())
		assert.ErrorIs(t, err, core.ErrFileNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		log := NewLogFile(Config{Path: dir})
		_, err := log.Records(context.Background())
		assert.ErrorIs(t, err, core.ErrFileNotFound)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		log := NewLogFile(Config{Path: filepath.Join(dir, "nope.adi")})
		_, err := log.Records(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLogFile_ServiceIntegration(t *testing.T) {
	dir := t.TempDir()
	path := writeLog(t, dir, "wsjtx_log.adi", sampleLog)

	service := core.NewService(NewLogFile(Config{Path: path}), nil)
	summary, err := service.Summarize(context.Background(), "20240115")
	require.NoError(t, err)

	assert.Equal(t, path, summary.Path)
	assert.Equal(t, []string{"W1ABC", "W1XYZ"}, summary.Calls.Sorted())

	state := service.State().(core.ServiceState)
	assert.Equal(t, "logfile", state.SourceType)
}
