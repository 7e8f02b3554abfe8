package transform

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/lumen-lang/reflectc/ast"
	"github.com/lumen-lang/reflectc/errors"
	"github.com/lumen-lang/reflectc/logger"
)

// Mode is the per-node reflection policy. Only ModeNever suppresses
// extraction; ModeDefault and ModeAlways gate identically today and are kept
// distinct for configuration round-tripping.
type Mode int

const (
	ModeNever Mode = iota
	ModeDefault
	ModeAlways
)

func (m Mode) String() string {
	switch m {
	case ModeNever:
		return "never"
	case ModeDefault:
		return "default"
	case ModeAlways:
		return "always"
	default:
		return "unknown"
	}
}

// ParseMode recognizes the configuration surface's mode strings. Boolean-like
// values map onto the tri-state: true and the bare tag mean default, false
// means never.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "never", "false":
		return ModeNever, true
	case "default", "true", "":
		return ModeDefault, true
	case "always":
		return ModeAlways, true
	default:
		return ModeNever, false
	}
}

// ConfigFileName is the hierarchical configuration file the oracle probes
// for. The file is JSON with comments permitted.
const ConfigFileName = "lumen.json"

// TagName is the declaration-local doc tag controlling reflection.
const TagName = "reflection"

// Oracle decides the effective reflection mode for a node. Resolution order,
// first match wins: doc tags up the parent chain, the session override, the
// nearest ancestor directory whose config file carries a reflection field,
// then never.
type Oracle struct {
	session    Mode
	hasSession bool
	dirCache   map[string]dirResult
}

type dirResult struct {
	mode Mode
	ok   bool
}

// NewOracle creates an oracle with no session override and an empty cache.
func NewOracle() *Oracle {
	return &Oracle{dirCache: make(map[string]dirResult)}
}

// SetSession installs the host application's override.
func (o *Oracle) SetSession(m Mode) {
	o.session = m
	o.hasSession = true
}

// ClearSession removes the session override.
func (o *Oracle) ClearSession() {
	o.hasSession = false
}

// ModeFor resolves the effective reflection mode for n, declared in file.
func (o *Oracle) ModeFor(n ast.Node, file *ast.SourceFile) Mode {
	for cur := n; cur != nil; cur = cur.Parent() {
		for _, tag := range cur.Tags() {
			if tag.Name != TagName {
				continue
			}
			if m, ok := ParseMode(tag.Comment); ok {
				return m
			}
		}
	}
	if o.hasSession {
		return o.session
	}
	if m, ok := o.configMode(filepath.Dir(file.Path)); ok {
		return m
	}
	return ModeNever
}

// DirectoryMode resolves the configuration-file layer alone for a directory:
// the nearest ancestor (dir included) whose config file carries a reflection
// field. Tooling uses this; ModeFor is the full resolution.
func (o *Oracle) DirectoryMode(dir string) (Mode, bool) {
	return o.configMode(dir)
}

// configMode walks dir and its ancestors for the nearest config file with a
// reflection field. Results are cached per directory, negative lookups
// included, so each unique path is read at most once per pass.
func (o *Oracle) configMode(dir string) (Mode, bool) {
	if cached, ok := o.dirCache[dir]; ok {
		return cached.mode, cached.ok
	}
	mode, ok := o.readDir(dir)
	if !ok {
		if parent := filepath.Dir(dir); parent != dir {
			mode, ok = o.configMode(parent)
		}
	}
	o.dirCache[dir] = dirResult{mode: mode, ok: ok}
	return mode, ok
}

// readDir reads dir's config file, if any, and extracts the reflection
// field. A present-but-unparseable file is warned about and treated as
// absent so the walk continues outward.
func (o *Oracle) readDir(dir string) (Mode, bool) {
	path := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return ModeNever, false
	}

	std, err := hujson.Standardize(data)
	if err == nil {
		var cfg struct {
			Reflection any `json:"reflection"`
		}
		if jerr := json.Unmarshal(std, &cfg); jerr != nil {
			err = jerr
		} else {
			return reflectionField(cfg.Reflection)
		}
	}

	logger.Logger.Warnw("skipping unparseable reflection config",
		logger.FieldPath, path,
		logger.FieldError, errors.Wrap(errors.ErrBadConfig, err.Error()))
	return ModeNever, false
}

func reflectionField(v any) (Mode, bool) {
	switch field := v.(type) {
	case string:
		if m, ok := ParseMode(field); ok {
			return m, true
		}
	case bool:
		if field {
			return ModeDefault, true
		}
		return ModeNever, true
	}
	return ModeNever, false
}
