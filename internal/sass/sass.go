// Package sass compiles SCSS and indented Sass sources by shelling out to the
// dart-sass command line tool.
package sass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// DefaultBinary is the executable looked up when no binary is configured.
const DefaultBinary = "sass"

// ErrNotInstalled is returned when the compiler binary cannot be found.
var ErrNotInstalled = errors.New("sass compiler not found")

// Remediation is printed alongside ErrNotInstalled.
const Remediation = `SCSS/Sass sources need the dart-sass compiler.
Install it with one of:
  npm install -g sass
  brew install sass/sass/sass
or point sass.binary (--sass-binary, CSSPRUNE_SASS_BINARY) at an existing executable.`

// IsSource reports whether path has a preprocessor extension.
func IsSource(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".scss", ".sass":
		return true
	}
	return false
}

// Compiler runs the sass binary. The binary is resolved on the first call to
// Compile, so runs that only see plain CSS never need it installed.
type Compiler struct {
	binary   string
	resolved string
	lookErr  error
	looked   bool
}

// NewCompiler returns a compiler for binary, or DefaultBinary when empty.
func NewCompiler(binary string) *Compiler {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Compiler{binary: binary}
}

// Binary returns the configured executable name.
func (c *Compiler) Binary() string {
	return c.binary
}

// Available resolves the binary and reports ErrNotInstalled if it is missing.
func (c *Compiler) Available() error {
	if !c.looked {
		c.looked = true
		path, err := exec.LookPath(c.binary)
		if err != nil {
			c.lookErr = fmt.Errorf("%w: %q: %v", ErrNotInstalled, c.binary, err)
		} else {
			c.resolved = path
		}
	}
	return c.lookErr
}

// Compile returns the plain CSS produced for the file at path.
func (c *Compiler) Compile(ctx context.Context, path string) (string, error) {
	if err := c.Available(); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, c.resolved, "--no-source-map", path)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("compile %s: %w", path, err)
		}
		return "", fmt.Errorf("compile %s: %w: %s", path, err, msg)
	}

	return stdout.String(), nil
}
