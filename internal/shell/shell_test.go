package shell

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minsh/internal/launcher"
)

func testSession(l *launcher.Launcher, out, errOut io.Writer) *Session {
	return &Session{
		launcher: l,
		stdout:   out,
		stderr:   errOut,
	}
}

func TestClipTruncatesLongLines(t *testing.T) {
	var errOut bytes.Buffer
	s := &Session{maxLineLen: 8, stderr: &errOut}

	got := s.clip("0123456789")

	assert.Equal(t, "01234567", got)
	assert.Contains(t, errOut.String(), "truncated")
}

func TestClipLeavesShortLines(t *testing.T) {
	var errOut bytes.Buffer
	s := &Session{maxLineLen: 64, stderr: &errOut}

	got := s.clip("wc -l")

	assert.Equal(t, "wc -l", got)
	assert.Empty(t, errOut.String())
}

func TestDispatchEmptyTokensIsNoOp(t *testing.T) {
	var out, errOut bytes.Buffer
	l := &launcher.Launcher{
		Fs:      afero.NewMemMapFs(),
		Getenv:  func(string) string { return "" },
		PathVar: "PATH",
		Stderr:  &errOut,
	}
	s := testSession(l, &out, &errOut)

	s.dispatch(nil)

	assert.Empty(t, out.String())
	assert.Empty(t, errOut.String())
}

func TestDispatchBuiltinShortCircuitsResolution(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/bin/pwd", []byte("#!"), 0o755))

	resolved := false
	l := &launcher.Launcher{
		Fs: fsys,
		Getenv: func(string) string {
			resolved = true
			return "/bin"
		},
		PathVar: "PATH",
		Stderr:  io.Discard,
	}

	var out bytes.Buffer
	s := testSession(l, &out, io.Discard)

	s.dispatch([]string{"pwd"})

	assert.False(t, resolved, "builtin must not consult the search path")
	assert.NotEmpty(t, out.String())
}

func TestDispatchExternalNotFound(t *testing.T) {
	var errOut bytes.Buffer
	l := &launcher.Launcher{
		Fs:      afero.NewMemMapFs(),
		Getenv:  func(string) string { return "/a:/b" },
		PathVar: "PATH",
		Stderr:  &errOut,
	}
	s := testSession(l, io.Discard, &errOut)

	s.dispatch([]string{"nosuch", "-x"})

	assert.Equal(t, "nosuch: command not found\n", errOut.String())
}
