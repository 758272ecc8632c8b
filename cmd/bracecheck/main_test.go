package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Main.kt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{"balanced", "fun main() {\n}\n", "Braces are balanced.\n", false},
		{"unclosed", "class A {\n", "Final balance: 1\n", true},
		{"negative", "}\n{\n", "Error: Negative balance at line 1\nFinal balance: -1\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout bytes.Buffer
			err := run([]string{writeFile(t, tc.content)}, &stdout)
			if tc.wantErr {
				require.ErrorIs(t, err, errUnbalanced)
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tc.want, stdout.String())
		})
	}
}

func TestRunErrors(t *testing.T) {
	var stdout bytes.Buffer
	require.Error(t, run(nil, &stdout))
	require.Error(t, run([]string{filepath.Join(t.TempDir(), "missing.kt")}, &stdout))
	require.Empty(t, stdout.String())
}
