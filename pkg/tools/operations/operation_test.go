package operations_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/baize-ai/skills/pkg/tools/operations"
	"github.com/baize-ai/skills/skill"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, params map[string]any) skill.Envelope {
	t.Helper()
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	return operations.Handle(context.Background(), raw)
}

func TestWriteCreatesParentsAndReadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dirs", "out.txt")
	content := "hello 世界\n"

	env := handle(t, map[string]any{"action": "write", "path": path, "content": content})
	require.True(t, env.Success, "error: %s", env.Error)

	data, ok := env.Data.(operations.WriteData)
	require.True(t, ok, "data should be WriteData, got %T", env.Data)
	assert.Equal(t, path, data.Path)
	assert.Equal(t, len([]byte(content)), data.Size)
	assert.Contains(t, env.Message, path)

	readEnv := handle(t, map[string]any{"action": "read", "path": path})
	require.True(t, readEnv.Success, "error: %s", readEnv.Error)

	readData, ok := readEnv.Data.(operations.ReadData)
	require.True(t, ok)
	assert.Equal(t, content, readData.Content)
	assert.Equal(t, path, readData.Path)
	assert.Equal(t, int64(len([]byte(content))), readData.Size)
	assert.Equal(t, content, readEnv.Message)
}

func TestReadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.txt")

	env := handle(t, map[string]any{"action": "read", "path": path})
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, path)
}

func TestDeleteFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "victim.txt")

	// Deleting a missing file is a failure result.
	env := handle(t, map[string]any{"action": "delete", "path": path})
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, path)

	require.True(t, handle(t, map[string]any{"action": "write", "path": path, "content": "x"}).Success)

	env = handle(t, map[string]any{"action": "delete", "path": path})
	require.True(t, env.Success, "error: %s", env.Error)
	assert.Contains(t, env.Message, path)

	existsEnv := handle(t, map[string]any{"action": "exists", "path": path})
	require.True(t, existsEnv.Success)
	assert.Equal(t, operations.ExistsData{Exists: false}, existsEnv.Data)
}

func TestExistsNeverFailsOnAbsence(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(present, []byte("here"), 0o644))

	env := handle(t, map[string]any{"action": "exists", "path": present})
	require.True(t, env.Success)
	assert.Equal(t, operations.ExistsData{Exists: true}, env.Data)

	env = handle(t, map[string]any{"action": "exists", "path": filepath.Join(dir, "absent.txt")})
	require.True(t, env.Success)
	assert.Equal(t, operations.ExistsData{Exists: false}, env.Data)
}

func TestUnknownAction(t *testing.T) {
	env := handle(t, map[string]any{"action": "frobnicate", "path": "/tmp/whatever"})
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "frobnicate")
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name     string
		params   map[string]any
		contains string
	}{
		{name: "missing action", params: map[string]any{"path": "/tmp/x"}, contains: "action"},
		{name: "missing path", params: map[string]any{"action": "read"}, contains: "path"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := handle(t, tc.params)
			assert.False(t, env.Success)
			assert.Contains(t, env.Error, tc.contains)
		})
	}
}

func TestCreateOverwritesLikeWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "same.txt")

	require.True(t, handle(t, map[string]any{"action": "write", "path": path, "content": "old"}).Success)

	env := handle(t, map[string]any{"action": "create", "path": path, "content": "new"})
	require.True(t, env.Success, "create must not fail on an existing file")
	assert.Contains(t, env.Message, "created")

	readEnv := handle(t, map[string]any{"action": "read", "path": path})
	require.True(t, readEnv.Success)
	assert.Equal(t, "new", readEnv.Data.(operations.ReadData).Content)
}

func TestEncodingRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	content := "café"

	env := handle(t, map[string]any{"action": "write", "path": path, "content": content, "encoding": "iso-8859-1"})
	require.True(t, env.Success, "error: %s", env.Error)
	assert.Equal(t, 4, env.Data.(operations.WriteData).Size, "latin-1 encodes é as one byte")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, raw, 4)

	readEnv := handle(t, map[string]any{"action": "read", "path": path, "encoding": "iso-8859-1"})
	require.True(t, readEnv.Success, "error: %s", readEnv.Error)
	assert.Equal(t, content, readEnv.Data.(operations.ReadData).Content)
}

func TestUnsupportedEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.txt")

	env := handle(t, map[string]any{"action": "write", "path": path, "content": "x", "encoding": "no-such-charset"})
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "no-such-charset")
}
