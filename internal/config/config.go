// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"

	"github.com/staranto/christmastree/internal/fault"
)

// FileName is the config file looked up in the workspace and the standard
// config locations.
const FileName = "christmastree.yaml"

// PathEnv, if set, names the config file explicitly.
const PathEnv = "CHRISTMASTREE_CONFIG"

// ErrNotFound is returned by Load when no config file exists anywhere.
var ErrNotFound = errors.New("config file not found")

// Type is the raw, untyped view of the config file.
type Type struct {
	Source string
	Data   map[string]interface{}
}

// Load reads the config file. With no argument the file is located by
// getConfigPath.
func Load(cfgFilePath ...string) (Type, error) {
	var path string
	if len(cfgFilePath) > 0 && cfgFilePath[0] != "" {
		path = cfgFilePath[0]
	} else {
		p, err := getConfigPath()
		if err != nil {
			return Type{}, err
		}
		path = p
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Type{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Type{}, fault.Configuration("read config", err)
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fault.Configuration("parse config", fmt.Errorf("%s: %w", path, err))
	}

	return Type{Source: path, Data: data}, nil
}

// get traverses the map using a dotted key path
func (cfg Type) get(kspec string) (any, error) {
	var current interface{} = cfg.Data
	for _, key := range strings.Split(kspec, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value at %q", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value at %q", kspec)
		}
	}
	return current, nil
}

// GetString returns the string at key, or defaultValue when the key is
// absent.
func (cfg Type) GetString(key string, defaultValue ...string) (string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string", key)
	}

	return s, nil
}

// GetInt returns the integer at key, or defaultValue when the key is absent.
func (cfg Type) GetInt(key string, defaultValue ...int) (int, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("value at %q is not an int", key)
	}
}

// GetBool returns the bool at key, or defaultValue when the key is absent.
func (cfg Type) GetBool(key string, defaultValue ...bool) (bool, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return false, err
	}

	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("value at %q is not a bool", key)
	}
	return b, nil
}

// GetStringSlice accepts either a YAML sequence or a comma-delimited string.
// With a defaultValue, an absent key yields the default instead of an error.
func (cfg Type) GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	switch v := val.(type) {
	case string:
		var out []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("value at %q contains a non-string", key)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("value at %q is not a list", key)
	}
}

// getConfigPath looks for the config file, in order: $CHRISTMASTREE_CONFIG,
// the working directory and its parents, then the usual per-user config
// locations.
func getConfigPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}

	if wd, err := os.Getwd(); err == nil {
		if dir, ok := findUp(wd, FileName); ok {
			file := filepath.Join(dir, FileName)
			log.Debugf("using config file: %s", file)
			return file, nil
		}
	}

	candidates := []string{
		os.Getenv("XDG_CONFIG_HOME"),
		os.Getenv("APPDATA"),
		os.Getenv("HOME"),
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		file := filepath.Join(c, FileName)
		if fileInfo, err := os.Stat(file); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file: %s", file)
				return file, nil
			}
		}
	}
	return "", ErrNotFound
}

// findUp walks from start towards the root and returns the first directory
// containing a regular file called name.
func findUp(start, name string) (string, bool) {
	dir := start
	for {
		if fi, err := os.Stat(filepath.Join(dir, name)); err == nil && !fi.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
