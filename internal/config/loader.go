package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/facette/natsort"
)

var (
	ErrUnknownParameter = errors.New("config: unknown parameter")
	ErrUnknownModel     = errors.New("config: unknown parameter set")
	ErrUnknownUnit      = errors.New("config: unknown unit")
	ErrUnitConflict     = errors.New("config: conflicting units")
)

// Config is a file of named parameter sets:
//
//	InputUnits = ["nm"]
//
//	[Models.pgnp_a]
//	radius = 6.0
//	poly_sig = 0.5
//
// Values given in a set are read in InputUnits; missing ones take the
// schema defaults. Without InputUnits the values are taken in the schema
// units as written.
type Config struct {
	InputUnits []string
	Models     map[string]toml.Primitive

	meta     toml.MetaData
	explicit bool
}

func LoadConfig(path string) (*Config, error) {
	var c Config
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return c.init(meta)
}

func DecodeConfig(text string) (*Config, error) {
	var c Config
	meta, err := toml.Decode(text, &c)
	if err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return c.init(meta)
}

func (c *Config) init(meta toml.MetaData) (*Config, error) {
	c.meta = meta
	c.explicit = len(c.InputUnits) > 0
	units, unknown, conflicts := checkUnits(c.InputUnits)
	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnknownUnit, unknown)
	}
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrUnitConflict, conflicts)
	}
	c.InputUnits = units
	return c, nil
}

func (c *Config) ModelNames() []string {
	names := make([]string, 0, len(c.Models))
	for name := range c.Models {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return natsort.Compare(names[i], names[j])
	})
	return names
}

// Decode fills target with the schema defaults, overlays the values of the
// named set and, when the file names InputUnits, converts those into the
// schema units.
func (c *Config) Decode(name string, schema Schema, target any) error {
	primitive, some := c.Models[name]
	if !some {
		return fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	if err := schema.SetDefaults(target); err != nil {
		return err
	}
	if err := c.meta.PrimitiveDecode(primitive, target); err != nil {
		return fmt.Errorf("parameter set %q: %w", name, err)
	}

	var unknown []string
	for _, key := range c.meta.Keys() {
		if len(key) == 3 && key[0] == "Models" && key[1] == name {
			if _, known := schema.Lookup(key[2]); !known {
				unknown = append(unknown, key[2])
			}
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w in set %q: %s", ErrUnknownParameter, name, strings.Join(unknown, ", "))
	}

	if !c.explicit {
		return nil
	}
	fields, err := taggedFields(target)
	if err != nil {
		return err
	}
	for _, p := range schema {
		if c.meta.IsDefined("Models", name, p.Name) {
			field := fields[p.Name]
			field.SetFloat(Canonical(field.Float(), parameterUnits[p.Units], c.InputUnits, true))
		}
	}
	return nil
}
