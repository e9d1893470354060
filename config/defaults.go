package config

import (
	"reflect"
)

// overrides reports whether a value read from the config file should replace the default.
// Scalars always replace (configs must use omitempty), lists only when non-empty,
// and maps are merged key by key instead.
func overrides(v interface{}) bool {
	if v == nil {
		return false
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Map:
		return false
	case reflect.Array, reflect.Slice:
		return value.Len() > 0
	case reflect.Int, reflect.Bool, reflect.String:
		return true
	}
	return !value.IsZero()
}

func merge(defaults map[string]interface{}, values map[string]interface{}) {
	for key, val := range values {
		existing, ok := defaults[key]
		if !ok {
			defaults[key] = val
			continue
		}
		existingMap, existingIsMap := existing.(map[string]interface{})
		valMap, valIsMap := val.(map[string]interface{})
		if existingIsMap && valIsMap {
			merge(existingMap, valMap)
		} else if overrides(val) {
			defaults[key] = val
		}
	}
}

func toMap(cfg interface{}) (map[string]interface{}, error) {
	out := map[string]interface{}{}
	if err := copyYaml(cfg, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyDefaults writes defaultCfg overlaid with overrideCfg into newCfg
func ApplyDefaults(defaultCfg interface{}, overrideCfg interface{}, newCfg interface{}) error {
	defaults, err := toMap(defaultCfg)
	if err != nil {
		return err
	}
	values, err := toMap(overrideCfg)
	if err != nil {
		return err
	}
	merge(defaults, values)
	return copyYaml(defaults, newCfg)
}
