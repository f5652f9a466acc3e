package shell

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireProgram(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s not available: %v", name, err)
	}
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0755))
	return path
}

func TestParentDir(t *testing.T) {
	tests := []struct {
		path   string
		dir    string
		hasDir bool
	}{
		{path: "notes.txt", dir: "", hasDir: false},
		{path: "docs/notes.txt", dir: "docs", hasDir: true},
		{path: "a/b/c.txt", dir: "a/b", hasDir: true},
		{path: "/notes.txt", dir: "/", hasDir: true},
		{path: "docs/", dir: "docs", hasDir: true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			dir, ok := parentDir(tt.path)
			assert.Equal(t, tt.hasDir, ok)
			assert.Equal(t, tt.dir, dir)
		})
	}
}

func TestNano_Usage(t *testing.T) {
	sess, _ := runInTempDir(t, "nano\n", []string{"touch"})

	assert.Contains(t, sess.err.String(), "usage: nano <file>")
	assert.NotContains(t, sess.out.String(), "opening editor")
}

func TestNano_MissingParent(t *testing.T) {
	requireProgram(t, "touch")

	sess, dir := runInTempDir(t, "nano nope/file.txt\n", []string{"touch"})

	assert.Contains(t, sess.err.String(), "parent directory missing: nope")
	assert.NotContains(t, sess.out.String(), "opening editor")
	assert.NoFileExists(t, filepath.Join(dir, "nope", "file.txt"))
}

func TestNano_CreateDirectoryThenEdit(t *testing.T) {
	requireProgram(t, "touch")

	sess, dir := runInTempDir(t, "mkdir newdir\nnano newdir/file.txt\n", []string{"touch"})

	assert.NotContains(t, sess.err.String(), "parent directory missing")
	assert.FileExists(t, filepath.Join(dir, "newdir", "file.txt"))
	assert.Contains(t, sess.out.String(), "opening editor: newdir/file.txt")
	assert.Contains(t, sess.out.String(), "editing finished. size: 0 B (0 bytes)")
	assert.Equal(t, 0, sess.shell.LastStatus())
}

func TestNano_FallsBackToNextEditor(t *testing.T) {
	requireProgram(t, "true")

	sess, _ := runInTempDir(t, "nano notes.txt\n", []string{"rush-missing-editor", "true"})

	assert.Contains(t, sess.err.String(), "rush-missing-editor not found, trying true...")
	assert.Contains(t, sess.err.String(), "file not created/modified")
	assert.NotContains(t, sess.err.String(), "no text editor found")
}

func TestNano_FallsBackWhenEditorCannotStart(t *testing.T) {
	requireProgram(t, "true")

	bad := writeScript(t, t.TempDir(), "badeditor", "#!/nonexistent/interp\n")

	sess, _ := runInTempDir(t, "nano notes.txt\n", []string{bad, "true"})

	errs := sess.err.String()
	assert.Contains(t, errs, bad+" not found, trying true...")
	assert.NotContains(t, errs, "nano:")
	assert.NotContains(t, errs, "no text editor found")
	assert.Contains(t, sess.out.String(), "editing finished. ")
	assert.Contains(t, errs, "file not created/modified")
	assert.Equal(t, 0, sess.shell.LastStatus())
}

func TestNano_NoCandidateCanStart(t *testing.T) {
	bin := t.TempDir()
	first := writeScript(t, bin, "first", "#!/nonexistent/interp\n")
	second := writeScript(t, bin, "second", "#!/nonexistent/interp\n")

	sess, _ := runInTempDir(t, "nano notes.txt\n", []string{first, second})

	errs := sess.err.String()
	assert.Contains(t, errs, first+" not found, trying "+second+"...")
	assert.Contains(t, errs, "no text editor found")
	assert.Contains(t, errs, "file not created/modified")
}

func TestNano_NoEditorAvailable(t *testing.T) {
	sess, _ := runInTempDir(t, "nano notes.txt\n", []string{"rush-missing-a", "rush-missing-b"})

	errs := sess.err.String()
	assert.Contains(t, errs, "rush-missing-a not found, trying rush-missing-b...")
	assert.Contains(t, errs, "no text editor found (install rush-missing-a or rush-missing-b)")
	assert.Contains(t, errs, "file not created/modified")
}

func TestNano_ReportsExistingFileSize(t *testing.T) {
	requireProgram(t, "true")

	dir := t.TempDir()
	chdirForTest(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "big.txt"), make([]byte, 2048), 0644))

	sess := newSession("nano big.txt\n", []string{"true"})
	require.NoError(t, sess.shell.Run(context.Background()))

	assert.Contains(t, sess.out.String(), "size: 2.0 kB (2048 bytes)")
}

func TestNano_SignaledEditorSkipsReport(t *testing.T) {
	requireProgram(t, "sh")

	scripts := t.TempDir()
	killer := filepath.Join(scripts, "killer")
	require.NoError(t, os.WriteFile(killer, []byte("#!/bin/sh\nkill -9 $$\n"), 0755))

	sess, _ := runInTempDir(t, "nano notes.txt\n", []string{killer})

	assert.Contains(t, sess.out.String(), "opening editor: notes.txt")
	assert.NotContains(t, sess.out.String(), "editing finished")
	assert.NotContains(t, sess.err.String(), "file not created")
	assert.Equal(t, 137, sess.shell.LastStatus())
}
