package cssprune

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yacobolo/cssprune/internal/sass"
)

// fakeSassBinary writes a script that prints a fixed stylesheet.
func fakeSassBinary(t *testing.T, output string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake sass binary is a shell script")
	}
	path := filepath.Join(t.TempDir(), "sass")
	script := "#!/bin/sh\ncat <<'EOF'\n" + output + "\nEOF\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestLoadPlainFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.css": ".a{}",
		"b.css": ".b{}",
	})

	// A compiler that does not exist must not matter for plain CSS.
	loader := NewStylesheetLoader(sass.NewCompiler(filepath.Join(dir, "no-sass")), nil)
	text, err := loader.Load(context.Background(), []string{
		filepath.Join(dir, "b.css"),
		filepath.Join(dir, "a.css"),
	})
	require.NoError(t, err)
	assert.Equal(t, ".b{}\n.a{}", text)
}

func TestLoadCompilesScss(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"plain.css": ".plain{}",
		"app.scss":  ".app { .nested { color: red } }",
	})
	bin := fakeSassBinary(t, ".app .nested{color:red}")

	loader := NewStylesheetLoader(sass.NewCompiler(bin), nil)
	text, err := loader.Load(context.Background(), []string{
		filepath.Join(dir, "plain.css"),
		filepath.Join(dir, "app.scss"),
	})
	require.NoError(t, err)
	assert.Equal(t, ".plain{}\n.app .nested{color:red}\n", text)
}

func TestLoadMissingPreprocessor(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"app.scss": ".app{}"})

	loader := NewStylesheetLoader(sass.NewCompiler(filepath.Join(dir, "no-sass")), nil)
	_, err := loader.Load(context.Background(), []string{filepath.Join(dir, "app.scss")})
	require.ErrorIs(t, err, ErrPreprocessorMissing)
}

func TestLoadMissingFile(t *testing.T) {
	loader := NewStylesheetLoader(sass.NewCompiler(""), nil)
	_, err := loader.Load(context.Background(), []string{filepath.Join(t.TempDir(), "gone.css")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
