package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	failed := map[string]bool{}
	for _, r := range verify(checks(), 0) {
		require.NoError(t, r.err, r.name)
		if !r.ok() {
			failed[r.name] = true
		}
	}
	// 头文件中的 AWG 矩阵与由原色推导的结果不一致
	require.Equal(t, map[string]bool{"M_ProPhoto_D50_to_AWG_D65": true}, failed)
}

func TestVerifyToleranceOverride(t *testing.T) {
	for _, r := range verify(checks(), 1e-12) {
		require.Equal(t, 1e-12, r.tol)
		require.False(t, r.ok(), r.name)
	}
}

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, &stdout, &stderr)
	require.ErrorIs(t, err, errMismatch)

	out := stdout.String()
	require.Contains(t, out, "✓ Bradford D50 -> D65")
	require.Contains(t, out, "✓ M_ProPhoto_D50_to_Rec709_D65")
	require.Contains(t, out, "✗ M_ProPhoto_D50_to_AWG_D65")
	require.Contains(t, out, "1 项不一致\n")
}

func TestRunLooseTolerance(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-tol", "0.5", "-v"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "全部一致\n")
	require.Contains(t, stdout.String(), "  推导值:\n")
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run([]string{"-tol", "x"}, &stdout, &stderr))
}
