package argv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildWithoutRedirection(t *testing.T) {
	args, redirect := Build([]string{"wc", "-l", "notes.txt"})

	assert.Equal(t, []string{"wc", "-l", "notes.txt"}, args)
	assert.Nil(t, redirect)
}

func TestBuildStopsAtOutputOperator(t *testing.T) {
	args, redirect := Build([]string{"cat", "file.txt", ">", "out.txt"})

	assert.Equal(t, []string{"cat", "file.txt"}, args)
	require.NotNil(t, redirect)
	assert.Equal(t, ">", redirect.Operator)
	assert.Equal(t, "out.txt", redirect.Target)
}

func TestBuildStopsAtInputOperator(t *testing.T) {
	args, redirect := Build([]string{"wc", "-l", "<", "in.txt", "ignored"})

	assert.Equal(t, []string{"wc", "-l"}, args)
	require.NotNil(t, redirect)
	assert.Equal(t, "<", redirect.Operator)
	assert.Equal(t, "in.txt", redirect.Target)
}

func TestBuildOperatorWithoutTarget(t *testing.T) {
	args, redirect := Build([]string{"cat", ">"})

	assert.Equal(t, []string{"cat"}, args)
	require.NotNil(t, redirect)
	assert.Equal(t, ">", redirect.Operator)
	assert.Empty(t, redirect.Target)
}

func TestBuildOperatorInsideTokenIsNotRedirection(t *testing.T) {
	args, redirect := Build([]string{"grep", "a>b"})

	assert.Equal(t, []string{"grep", "a>b"}, args)
	assert.Nil(t, redirect)
}

func TestBuildEmptyTokens(t *testing.T) {
	args, redirect := Build(nil)

	assert.Empty(t, args)
	assert.Nil(t, redirect)
}

func TestBuildDoesNotAliasInput(t *testing.T) {
	tokens := []string{"wc", "-l"}
	args, _ := Build(tokens)
	args[0] = "changed"

	assert.Equal(t, "wc", tokens[0])
}

func TestBasename(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/usr/bin/wc", want: "wc"},
		{path: "bin/tool", want: "tool"},
		{path: "wc", want: "wc"},
		{path: "/usr/bin/", want: "/usr/bin/"},
		{path: "/", want: "/"},
		{path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Basename(tt.path))
		})
	}
}
