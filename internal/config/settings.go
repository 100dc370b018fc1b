// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apex/log"
	"github.com/joho/godotenv"
	"golang.org/x/mod/modfile"

	"github.com/staranto/christmastree/internal/fault"
)

// Defaults. The year and URL match the calendar the workspace was started
// for; both are overridable.
const (
	DefaultYear         = 2023
	DefaultBaseURL      = "https://adventofcode.com"
	DefaultSessionEnv   = "AOC_SESSION_TOKEN"
	DefaultEnvFile      = ".env"
	DefaultCacheDirName = ".cache"
	DefaultModule       = "example.com/advent"
	DefaultParserModule = "github.com/alecthomas/participle/v2"
	DefaultVectorModule = "github.com/go-gl/mathgl"
)

// LibraryModule is the module path of the shared library every generated
// day requires.
const LibraryModule = "github.com/staranto/christmastree"

// Environment overrides.
const (
	CacheDirEnv = "CHRISTMASTREE_CACHE_DIR"
	YearEnv     = "CHRISTMASTREE_YEAR"
)

// Settings is the typed, fully defaulted configuration.
type Settings struct {
	// Source is the config file in use, empty when running on defaults.
	Source     string
	Workspace  string
	Year       int
	BaseURL    string
	SessionEnv string
	EnvFile    string
	CacheDir   string
	Module     string
	Scaffold   ScaffoldSettings
}

// ScaffoldSettings holds defaults for the scaffold tool flags.
type ScaffoldSettings struct {
	Parser       bool
	Vector       bool
	Deps         []string
	ParserModule string
	VectorModule string
}

// Resolve loads the config file, if there is one, and layers defaults
// underneath and environment overrides on top.
func Resolve() (Settings, error) {
	cfg, err := Load()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return Settings{}, err
	}
	if errors.Is(err, ErrNotFound) {
		log.Debug("no config file, using defaults")
	}
	return FromType(cfg)
}

// FromType builds Settings from an already loaded config.
func FromType(cfg Type) (Settings, error) {
	s := Settings{Source: cfg.Source}

	ws, err := workspace(cfg)
	if err != nil {
		return Settings{}, err
	}
	s.Workspace = ws

	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	s.Year, err = cfg.GetInt("year", DefaultYear)
	collect(err)
	s.BaseURL, err = cfg.GetString("url", DefaultBaseURL)
	collect(err)
	s.SessionEnv, err = cfg.GetString("session_env", DefaultSessionEnv)
	collect(err)
	s.EnvFile, err = cfg.GetString("env_file", DefaultEnvFile)
	collect(err)
	s.CacheDir, err = cfg.GetString("cache.dir", filepath.Join(ws, DefaultCacheDirName))
	collect(err)
	s.Module, err = cfg.GetString("module", DefaultModule)
	collect(err)
	s.Scaffold.Parser, err = cfg.GetBool("scaffold.parser", true)
	collect(err)
	s.Scaffold.Vector, err = cfg.GetBool("scaffold.vector", false)
	collect(err)
	s.Scaffold.ParserModule, err = cfg.GetString("scaffold.parser_module", DefaultParserModule)
	collect(err)
	s.Scaffold.VectorModule, err = cfg.GetString("scaffold.vector_module", DefaultVectorModule)
	collect(err)
	s.Scaffold.Deps, err = cfg.GetStringSlice("scaffold.deps", nil)
	collect(err)

	if len(errs) > 0 {
		return Settings{}, fault.Configuration("config", errors.Join(errs...))
	}

	if v := os.Getenv(CacheDirEnv); v != "" {
		s.CacheDir = v
	}
	if v := os.Getenv(YearEnv); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return Settings{}, fault.Configuration("config", fmt.Errorf("%s: %w", YearEnv, err))
		}
		s.Year = year
	}

	s.EnvFile = s.resolve(s.EnvFile)
	s.CacheDir = s.resolve(s.CacheDir)

	return s, nil
}

// Session merges the env file into the process environment, without
// overriding anything already set, and returns the session credential. A
// missing env file is fine; a missing or empty variable is not.
func (s Settings) Session() (string, error) {
	if err := godotenv.Load(s.EnvFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return "", fault.Configuration("load env file", fmt.Errorf("%s: %w", s.EnvFile, err))
		}
		log.Debugf("no env file at %s", s.EnvFile)
	}

	token := os.Getenv(s.SessionEnv)
	if token == "" {
		return "", fault.Configuration("session", fmt.Errorf("%s is not set", s.SessionEnv))
	}
	return token, nil
}

func (s Settings) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.Workspace, p)
}

// workspace is, in order: the configured workspace key, the directory of a
// config file found in the working tree, the nearest directory holding a
// go.work, the library checkout, and finally the working directory.
func workspace(cfg Type) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fault.Configuration("workspace", err)
	}

	if ws, _ := cfg.GetString("workspace", ""); ws != "" {
		if !filepath.IsAbs(ws) && cfg.Source != "" {
			ws = filepath.Join(filepath.Dir(cfg.Source), ws)
		}
		return filepath.Clean(ws), nil
	}

	if dir, ok := findUp(wd, FileName); ok {
		return dir, nil
	}
	if dir, ok := findUp(wd, "go.work"); ok {
		return dir, nil
	}
	if dir, ok := findLibrary(wd); ok {
		return dir, nil
	}
	return wd, nil
}

// findLibrary walks up from start to the library checkout. A go.mod that
// declares LibraryModule is the checkout itself; a day's go.mod that
// replaces LibraryModule with a local directory points at it.
func findLibrary(start string) (string, bool) {
	dir := start
	for {
		file := filepath.Join(dir, "go.mod")
		if data, err := os.ReadFile(file); err == nil {
			if lib, ok := libraryFrom(file, data); ok {
				return lib, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func libraryFrom(file string, data []byte) (string, bool) {
	mf, err := modfile.Parse(file, data, nil)
	if err != nil || mf.Module == nil {
		log.Debugf("skipping %s: %v", file, err)
		return "", false
	}

	dir := filepath.Dir(file)
	if mf.Module.Mod.Path == LibraryModule {
		return dir, true
	}
	for _, r := range mf.Replace {
		if r.Old.Path != LibraryModule || r.New.Version != "" || !modfile.IsDirectoryPath(r.New.Path) {
			continue
		}
		p := filepath.FromSlash(r.New.Path)
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		return filepath.Clean(p), true
	}
	return "", false
}
