package vfile

import (
	"fmt"
	"io/fs"

	"github.com/mitchellh/mapstructure"
)

// fileMap is the loosely typed shape accepted by NewFromMap.
type fileMap struct {
	Cwd      any            `mapstructure:"cwd"`
	Base     any            `mapstructure:"base"`
	Path     any            `mapstructure:"path"`
	History  []string       `mapstructure:"history"`
	Stat     any            `mapstructure:"stat"`
	Contents any            `mapstructure:"contents"`
	Symlink  any            `mapstructure:"symlink"`
	Custom   map[string]any `mapstructure:",remain"`
}

// derivedSetters are applied, in order, after the path is set.
var derivedSetters = []struct {
	key string
	set func(*File, string) error
}{
	{"dirname", (*File).SetDirname},
	{"basename", (*File).SetBasename},
	{"stem", (*File).SetStem},
	{"extname", (*File).SetExtname},
}

// NewFromMap creates a File from a loosely typed map, as decoded from JSON or
// YAML. Recognized keys are cwd, base, path, history, stat, contents and
// symlink. dirname, basename, stem and extname are applied through their
// setters once path is set, relative is rejected, and every other key becomes
// custom metadata.
func NewFromMap(m map[string]any) (*File, error) {
	var raw fileMap
	if err := mapstructure.Decode(m, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValueType, err)
	}

	cfg := Config{
		History:  raw.History,
		Contents: raw.Contents,
	}

	var err error
	if cfg.Cwd, err = optionalString("cwd", raw.Cwd, ErrConfig); err != nil {
		return nil, err
	}
	if raw.Cwd != nil && cfg.Cwd == "" {
		return nil, fmt.Errorf("%w: cwd must be a non-empty string", ErrConfig)
	}
	if cfg.Base, err = optionalString("base", raw.Base, ErrConfig); err != nil {
		return nil, err
	}
	if cfg.Path, err = optionalString("path", raw.Path, ErrValueType); err != nil {
		return nil, err
	}
	if cfg.Symlink, err = optionalString("symlink", raw.Symlink, ErrValueType); err != nil {
		return nil, err
	}

	if raw.Stat != nil {
		info, ok := raw.Stat.(fs.FileInfo)
		if !ok {
			return nil, fmt.Errorf("%w: stat must be an fs.FileInfo, got %T", ErrValueType, raw.Stat)
		}
		cfg.Stat = info
	}

	if _, ok := raw.Custom["relative"]; ok {
		return nil, fmt.Errorf("%w: relative is generated from the base and path, modify those instead", ErrPathState)
	}

	derived := make(map[string]string)
	for _, d := range derivedSetters {
		v, ok := raw.Custom[d.key]
		if !ok {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s must be a string, got %T", ErrValueType, d.key, v)
		}
		derived[d.key] = s
		delete(raw.Custom, d.key)
	}
	cfg.Custom = raw.Custom

	f, err := New(cfg)
	if err != nil {
		return nil, err
	}

	for _, d := range derivedSetters {
		if s, ok := derived[d.key]; ok {
			if err := d.set(f, s); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

func optionalString(field string, v any, kind error) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", kind, field, v)
	}
	return s, nil
}
