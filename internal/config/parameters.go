package config

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/facette/natsort"
)

type Role string

const (
	RoleNone   Role = ""
	RoleSLD    Role = "sld"
	RoleVolume Role = "volume"
)

// Parameter describes one tunable value of a model. Lower and Upper are
// advisory: nothing clamps to them.
type Parameter struct {
	Name        string
	Units       string
	Default     float64
	Lower       float64
	Upper       float64
	Role        Role
	Description string
}

func (p Parameter) InBounds(v float64) bool {
	return p.Lower <= v && v <= p.Upper
}

// Schema is the ordered parameter table of a model. Model values expose the
// parameters as float64 fields tagged `toml:"<name>"`.
type Schema []Parameter

func (s Schema) Lookup(name string) (Parameter, bool) {
	for _, p := range s {
		if p.Name == name {
			return p, true
		}
	}
	return Parameter{}, false
}

func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].Name
	}
	return names
}

func taggedFields(target any) (map[string]reflect.Value, error) {
	v := reflect.ValueOf(target)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("parameter target must be a struct, got %s", v.Kind())
	}
	fields := make(map[string]reflect.Value, v.NumField())
	t := v.Type()
	for i := range v.NumField() {
		if tag := t.Field(i).Tag.Get("toml"); tag != "" && tag != "-" && v.Field(i).CanFloat() {
			fields[tag] = v.Field(i)
		}
	}
	return fields, nil
}

// SetDefaults writes every schema default into the matching field of target,
// which must be a pointer to a struct carrying all schema parameters.
func (s Schema) SetDefaults(target any) error {
	fields, err := taggedFields(target)
	if err != nil {
		return err
	}
	for _, p := range s {
		field, some := fields[p.Name]
		if !some || !field.CanSet() {
			return fmt.Errorf("%w: %q has no settable field", ErrUnknownParameter, p.Name)
		}
		field.SetFloat(p.Default)
	}
	return nil
}

// Values reads the schema parameters out of a model value.
func (s Schema) Values(source any) (map[string]float64, error) {
	fields, err := taggedFields(source)
	if err != nil {
		return nil, err
	}
	values := make(map[string]float64, len(s))
	for _, p := range s {
		field, some := fields[p.Name]
		if !some {
			return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, p.Name)
		}
		values[p.Name] = field.Float()
	}
	return values, nil
}

// OutOfBounds lists, in natural order, the parameters of source lying
// outside their advisory bounds.
func (s Schema) OutOfBounds(source any) ([]string, error) {
	values, err := s.Values(source)
	if err != nil {
		return nil, err
	}
	var outside []string
	for _, p := range s {
		if !p.InBounds(values[p.Name]) {
			outside = append(outside, p.Name)
		}
	}
	sort.Slice(outside, func(i, j int) bool {
		return natsort.Compare(outside[i], outside[j])
	})
	return outside, nil
}
