// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package conf

import (
	"os"
	"reflect"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up in the working directory when no
// --config-file flag is given.
const DefaultPath = ".rowmerge.yaml"

type ptrTransformer struct{}

func (t *ptrTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ.Kind() == reflect.Ptr && typ.Elem().Kind() != reflect.Struct {
		return func(dst, src reflect.Value) error {
			if dst.CanSet() && !src.IsNil() {
				dst.Set(src)
			}
			return nil
		}
	}
	return nil
}

func readConfig(path string) (*Config, error) {
	c := &Config{}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Aggregate layers the config file at path over the defaults. An empty path
// means DefaultPath; a missing file contributes nothing.
func Aggregate(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	fileConfig, err := readConfig(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := mergo.Merge(c, fileConfig, mergo.WithOverride, mergo.WithTransformers(&ptrTransformer{})); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes c to path as yaml.
func Save(path string, c *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	e := yaml.NewEncoder(f)
	if err := e.Encode(c); err != nil {
		return err
	}
	return e.Close()
}
