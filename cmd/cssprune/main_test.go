package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssprune/internal/sass"
)

// runCLI calls run with fresh config and flag state and captures both streams.
func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	resetKoanf()
	resetFlags(t)
	rootCmd.SilenceUsage = false
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_SuccessExitsZero(t *testing.T) {
	dir := chdirTemp(t)
	markupDir, stylesheet := writeProject(t, dir)

	code, stdout, stderr := runCLI(t, markupDir, stylesheet)
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Unused classes: 1\n")
	assert.Empty(t, stderr)
}

func TestRun_MissingSassPrintsRemediation(t *testing.T) {
	dir := chdirTemp(t)
	markupDir, _ := writeProject(t, dir)
	scss := filepath.Join(dir, "app.scss")
	require.NoError(t, os.WriteFile(scss, []byte(".card{padding:0}"), 0o644))

	code, _, stderr := runCLI(t, markupDir, scss, "--sass-binary", filepath.Join(dir, "no-such-sass"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error: ")
	assert.Contains(t, stderr, sass.Remediation)
}

func TestRun_MissingStylesheetExitsOne(t *testing.T) {
	dir := chdirTemp(t)
	markupDir, stylesheet := writeProject(t, dir)

	code, _, stderr := runCLI(t, markupDir, stylesheet, filepath.Join(dir, "typo.css"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "typo.css")
	assert.NotContains(t, stderr, sass.Remediation)
}

func TestRun_UsageErrorExitsOne(t *testing.T) {
	code, stdout, stderr := runCLI(t, "src")
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout+stderr, "Usage:")
	assert.Contains(t, stderr, "Error: requires at least 2 arg(s)")
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	dir := chdirTemp(t)
	markupDir, stylesheet := writeProject(t, dir)

	code, _, stderr := runCLI(t, markupDir, stylesheet, "--verbose")
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr, "level=DEBUG")
}
