package transform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/reflectc/ast"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"never", ModeNever, true},
		{"default", ModeDefault, true},
		{"always", ModeAlways, true},
		{"true", ModeDefault, true},
		{"false", ModeNever, true},
		{"", ModeDefault, true},
		{"sometimes", ModeNever, false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseMode(%q)", tt.in)
		if ok {
			assert.Equal(t, tt.want, got, "ParseMode(%q)", tt.in)
		}
	}
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}

func TestModeForDocTagWalksParents(t *testing.T) {
	member := propDecl("x", strT())
	class := &ast.ClassDecl{Name: ast.NewIdent("C"), Members: []ast.ClassMember{member}}
	class.AddTag(TagName, "always")
	file := sourceFile("/src/c.lum", class)
	ast.SetParents(file)

	o := NewOracle()
	assert.Equal(t, ModeAlways, o.ModeFor(member, file))
}

func TestModeForTagBeatsSessionAndConfig(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"reflection": "default"}`)

	class := &ast.ClassDecl{Name: ast.NewIdent("C")}
	class.AddTag(TagName, "never")
	file := sourceFile(filepath.Join(root, "c.lum"), class)
	ast.SetParents(file)

	o := NewOracle()
	o.SetSession(ModeAlways)
	assert.Equal(t, ModeNever, o.ModeFor(class, file))
}

func TestModeForSessionOverride(t *testing.T) {
	class := &ast.ClassDecl{Name: ast.NewIdent("C")}
	file := sourceFile(filepath.Join(t.TempDir(), "c.lum"), class)
	ast.SetParents(file)

	o := NewOracle()
	o.SetSession(ModeDefault)
	assert.Equal(t, ModeDefault, o.ModeFor(class, file))

	o.ClearSession()
	assert.Equal(t, ModeNever, o.ModeFor(class, file))
}

func TestModeForConfigTwoDirectoriesUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{
		// enable reflection for the whole tree
		"reflection": true,
	}`)

	class := &ast.ClassDecl{Name: ast.NewIdent("C")}
	deep := filepath.Join(root, "src", "models")
	require.NoError(t, os.MkdirAll(deep, 0o755))
	file := sourceFile(filepath.Join(deep, "c.lum"), class)
	ast.SetParents(file)

	o := NewOracle()
	assert.Equal(t, ModeDefault, o.ModeFor(class, file))
}

func TestModeForNearestAncestorWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"reflection": "always"}`)
	inner := filepath.Join(root, "vendor")
	writeConfig(t, inner, `{"reflection": false}`)

	o := NewOracle()
	mode, ok := o.DirectoryMode(inner)
	require.True(t, ok)
	assert.Equal(t, ModeNever, mode)

	mode, ok = o.DirectoryMode(root)
	require.True(t, ok)
	assert.Equal(t, ModeAlways, mode)
}

func TestModeForConfigWithoutFieldKeepsWalking(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"reflection": "default"}`)
	inner := filepath.Join(root, "pkg")
	writeConfig(t, inner, `{"name": "pkg"}`)

	o := NewOracle()
	mode, ok := o.DirectoryMode(inner)
	require.True(t, ok)
	assert.Equal(t, ModeDefault, mode)
}

func TestModeForUnparseableConfigFallsThrough(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"reflection": "default"}`)
	inner := filepath.Join(root, "broken")
	writeConfig(t, inner, `{"reflection": `)

	o := NewOracle()
	mode, ok := o.DirectoryMode(inner)
	require.True(t, ok)
	assert.Equal(t, ModeDefault, mode)
}

func TestModeForNoConfigIsNever(t *testing.T) {
	o := NewOracle()
	_, ok := o.DirectoryMode(t.TempDir())
	assert.False(t, ok)
}

func TestDirectoryModeCachesLookups(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, `{"reflection": "always"}`)

	o := NewOracle()
	mode, ok := o.DirectoryMode(root)
	require.True(t, ok)
	require.Equal(t, ModeAlways, mode)

	// The probe is memoized per path: later rewrites are not observed.
	writeConfig(t, root, `{"reflection": "never"}`)
	mode, ok = o.DirectoryMode(root)
	require.True(t, ok)
	assert.Equal(t, ModeAlways, mode)
}
