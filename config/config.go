// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexregion/lattice"
	"github.com/katalvlaran/hexregion/region"
)

// Params are the four construction inputs of a region generator.
type Params struct {
	Seed    int64 `yaml:"seed"`
	Variety int   `yaml:"variety"`
	Size    int   `yaml:"size"`
	Steps   int   `yaml:"steps"`
}

// Default returns the reference parameters: seed 8, 4 categories, a 9×9
// coarse grid refined 9 times.
func Default() Params {
	return Params{Seed: 8, Variety: 4, Size: 9, Steps: 9}
}

// Validate checks the same preconditions as lattice.Build without
// allocating. The error wraps lattice.ErrInvalidParameter.
func (p Params) Validate() error {
	switch {
	case p.Variety < 1:
		return fmt.Errorf("%w: variety=%d, want ≥ 1", lattice.ErrInvalidParameter, p.Variety)
	case p.Size < 1:
		return fmt.Errorf("%w: size=%d, want ≥ 1", lattice.ErrInvalidParameter, p.Size)
	case p.Steps < 0:
		return fmt.Errorf("%w: steps=%d, want ≥ 0", lattice.ErrInvalidParameter, p.Steps)
	}
	return nil
}

// Generator validates p and builds the generator it describes.
func (p Params) Generator(opts ...lattice.Option) (*region.Generator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return region.New(p.Seed, p.Variety, p.Size, p.Steps, opts...)
}

// Parse decodes YAML over Default and validates the result.
// An empty document yields Default.
func Parse(raw []byte) (Params, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Params{}, fmt.Errorf("config: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Load reads and parses a YAML parameter file.
func Load(path string) (Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, err
	}
	p, err := Parse(raw)
	if err != nil {
		return Params{}, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Marshal encodes p as YAML, the inverse of Parse.
func (p Params) Marshal() ([]byte, error) {
	return yaml.Marshal(p)
}
