// Copyright (C) 2012 Anaconda, Inc
// SPDX-License-Identifier: BSD-3-Clause

package shellutil

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/SatyamVyas00/conda/pathutil"
)

// Override-file errors.
var (
	// ErrUnknownBase indicates an override entry naming a base
	// template other than "posix" or "msys2".
	ErrUnknownBase = errors.New("unknown base template")
	// ErrUnknownConverter indicates an override entry naming an
	// unregistered path converter.
	ErrUnknownConverter = errors.New("unknown path converter")
)

// converters maps the names usable in override files to path
// converters.
var converters = map[string]pathutil.Converter{
	"identity":      pathutil.Identity,
	"posix-to-win":  msysToWin,
	"win-to-posix":  winToMsys,
	"cygwin-to-win": pathutil.CygwinToWin,
	"win-to-cygwin": pathutil.WinToCygwin,
}

// overrideFile is the shape of a dialect override document.
type overrideFile struct {
	Shells map[string]overrideSpec `yaml:"shells"`
}

// overrideSpec is one shell entry: a base template name plus the
// fields that differ from the base. Absent fields keep the base value.
type overrideSpec struct {
	Base            string   `yaml:"base"`
	Exe             *string  `yaml:"exe"`
	BinPath         *string  `yaml:"binpath"`
	Sep             *string  `yaml:"sep"`
	PathSep         *string  `yaml:"pathsep"`
	SourceSetup     *string  `yaml:"source"`
	VarFormat       *string  `yaml:"var-format"`
	Echo            *string  `yaml:"echo"`
	PromptVar       *string  `yaml:"prompt-var"`
	PrintPath       *string  `yaml:"print-path"`
	PrintDefaultEnv *string  `yaml:"print-default-env"`
	PrintPS1        *string  `yaml:"print-ps1"`
	SetVar          *string  `yaml:"set-var"`
	ShellSuffix     *string  `yaml:"shell-suffix"`
	EnvScriptSuffix *string  `yaml:"env-script-suffix"`
	Nul             *string  `yaml:"nul"`
	ShellArgs       []string `yaml:"shell-args"`
	PathFrom        *string  `yaml:"path-from"`
	PathTo          *string  `yaml:"path-to"`
}

// LoadOverrides reads a YAML dialect override document and registers
// every shell it defines, deriving each from the named base template.
// Existing entries with the same name are replaced. The document
// format:
//
//	shells:
//	  xonsh:
//	    base: posix
//	    exe: xonsh
//	    source: "."
//
// Path converters are referenced by name: identity, posix-to-win,
// win-to-posix, cygwin-to-win, win-to-cygwin.
func (r *Registry) LoadOverrides(reader io.Reader) error {
	var doc overrideFile
	if err := yaml.NewDecoder(reader).Decode(&doc); err != nil {
		return fmt.Errorf("failed to parse dialect overrides: %w", err)
	}

	for name, spec := range doc.Shells {
		d, err := spec.derive()
		if err != nil {
			return fmt.Errorf("shell %q: %w", name, err)
		}
		r.register(name, d)
	}
	return nil
}

// derive builds a full dialect record from the spec's base template
// plus its overrides. This is a pure merge: the base is copied fresh,
// so derived dialects never share state.
func (s overrideSpec) derive() (Dialect, error) {
	var d Dialect
	switch s.Base {
	case "", "posix":
		d = posixBase()
	case "msys2":
		d = msys2Base()
	case "cmd":
		d = cmdExeDialect()
	default:
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownBase, s.Base)
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&d.Exe, s.Exe)
	setString(&d.BinPath, s.BinPath)
	setString(&d.Sep, s.Sep)
	setString(&d.PathSep, s.PathSep)
	setString(&d.SourceSetup, s.SourceSetup)
	setString(&d.VarFormat, s.VarFormat)
	setString(&d.Echo, s.Echo)
	setString(&d.PromptVar, s.PromptVar)
	setString(&d.PrintPath, s.PrintPath)
	setString(&d.PrintDefaultEnv, s.PrintDefaultEnv)
	setString(&d.PrintPS1, s.PrintPS1)
	setString(&d.SetVar, s.SetVar)
	setString(&d.ShellSuffix, s.ShellSuffix)
	setString(&d.EnvScriptSuffix, s.EnvScriptSuffix)
	setString(&d.Nul, s.Nul)
	if s.ShellArgs != nil {
		d.ShellArgs = append([]string(nil), s.ShellArgs...)
	}

	if s.PathFrom != nil {
		c, ok := converters[*s.PathFrom]
		if !ok {
			return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownConverter, *s.PathFrom)
		}
		d.PathFrom = c
	}
	if s.PathTo != nil {
		c, ok := converters[*s.PathTo]
		if !ok {
			return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownConverter, *s.PathTo)
		}
		d.PathTo = c
	}

	return d, nil
}
