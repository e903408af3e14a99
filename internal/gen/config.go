// Package gen generates Base wiring code for concrete container types.
//
// The dictionary encoding makes authoring a Base mechanical: every field is
// an instantiation of a primitive the container package already exports
// (Pure, FlatMap, OrElse, FoldLeft). gen reads a funalg.yaml describing the
// containers and emits one *_algebra.gen.go file per container, with a
// ready-made constructor function for every requested instance.
package gen

import (
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/funvibe/funalg/internal/config"
)

// Config represents the top-level funalg.yaml configuration.
type Config struct {
	// Package is the Go package name for the generated files.
	Package string `yaml:"package"`

	// Types lists the container types to generate wiring for.
	Types []TypeSpec `yaml:"types"`
}

// TypeSpec describes one container type.
//
// The container's package must follow the primitive naming convention:
// Pure (return), FlatMap (bind), OrElse and FoldLeft, each generic over the
// element types with the fixed parameter, if any, last.
type TypeSpec struct {
	// Name is the exported container type name (e.g. "Option").
	Name string `yaml:"name"`

	// Import is the Go import path of the package defining the container
	// and its primitives.
	Import string `yaml:"import"`

	// Arity is the number of type parameters (1 or 2).
	Arity int `yaml:"arity"`

	// Fixed is the fixed second type parameter for arity-2 containers
	// (e.g. "string" for Result<A, string>). Required iff Arity is 2.
	Fixed string `yaml:"fixed,omitempty"`

	// Interfaces lists the instances to generate: monad, alternative,
	// foldable. Alternative is arity-1 only.
	Interfaces []string `yaml:"interfaces"`

	// Elems lists the element type pairs to instantiate at. Monad wiring
	// uses both a and b; alternative and foldable use a only. An omitted b
	// defaults to a.
	Elems []ElemPair `yaml:"elems"`

	// Acc is the accumulator type for foldable wiring. Defaults to the
	// first element type.
	Acc string `yaml:"acc,omitempty"`
}

// ElemPair is one (A, B) element type instantiation.
type ElemPair struct {
	A string `yaml:"a"`
	B string `yaml:"b,omitempty"`
}

// Interface names accepted in TypeSpec.Interfaces.
const (
	ifaceMonad       = "monad"
	ifaceAlternative = "alternative"
	ifaceFoldable    = "foldable"
)

// ParseConfig parses and validates funalg.yaml content. Defaults (b, acc)
// are applied before validation.
func ParseConfig(data []byte, filename string) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Types {
		t := &c.Types[i]
		for j := range t.Elems {
			if t.Elems[j].B == "" {
				t.Elems[j].B = t.Elems[j].A
			}
		}
		if t.Acc == "" && len(t.Elems) > 0 {
			t.Acc = t.Elems[0].A
		}
	}
}

// Validate checks the configuration for structural problems.
func (c *Config) Validate() error {
	if !isIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go package name", c.Package)
	}
	if len(c.Types) == 0 {
		return fmt.Errorf("no types configured")
	}
	seen := make(map[string]bool)
	for i := range c.Types {
		t := &c.Types[i]
		if err := t.validate(); err != nil {
			return fmt.Errorf("types[%d] (%s): %w", i, t.Name, err)
		}
		if seen[t.Name] {
			return fmt.Errorf("types[%d]: duplicate type %q", i, t.Name)
		}
		seen[t.Name] = true
	}
	return nil
}

func (t *TypeSpec) validate() error {
	if t.Name == "" {
		return fmt.Errorf("missing name")
	}
	if !isIdentifier(t.Name) || !unicode.IsUpper(rune(t.Name[0])) {
		return fmt.Errorf("name %q is not an exported Go identifier", t.Name)
	}
	if t.Import == "" {
		return fmt.Errorf("missing import path")
	}
	if t.Arity != 1 && t.Arity != 2 {
		return fmt.Errorf("arity must be 1 or 2, got %d", t.Arity)
	}
	if t.Arity == 2 && t.Fixed == "" {
		return fmt.Errorf("arity-2 container needs a fixed second type parameter")
	}
	if t.Arity == 1 && t.Fixed != "" {
		return fmt.Errorf("fixed is only meaningful at arity 2")
	}
	if len(t.Interfaces) == 0 {
		return fmt.Errorf("no interfaces requested")
	}
	seen := make(map[string]bool)
	for _, iface := range t.Interfaces {
		switch iface {
		case ifaceMonad, ifaceAlternative, ifaceFoldable:
		default:
			return fmt.Errorf("unknown interface %q (want monad, alternative or foldable)", iface)
		}
		if seen[iface] {
			return fmt.Errorf("duplicate interface %q", iface)
		}
		seen[iface] = true
		if iface == ifaceAlternative && t.Arity == 2 {
			return fmt.Errorf("alternative is arity-1 only")
		}
	}
	if len(t.Elems) == 0 {
		return fmt.Errorf("no element types configured")
	}
	for j, e := range t.Elems {
		if e.A == "" {
			return fmt.Errorf("elems[%d]: missing element type a", j)
		}
	}
	return nil
}

// isIdentifier reports whether s is a plausible Go identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// DefaultConfigName returns the conventional configuration filename.
func DefaultConfigName() string {
	return config.ConfigFileName
}

// hasInterface reports whether t requests iface.
func (t *TypeSpec) hasInterface(iface string) bool {
	for _, i := range t.Interfaces {
		if i == iface {
			return true
		}
	}
	return false
}

// pkgQualifier derives the package qualifier from the import path's last
// segment, assuming the conventional package name.
func (t *TypeSpec) pkgQualifier() string {
	idx := strings.LastIndex(t.Import, "/")
	if idx < 0 {
		return t.Import
	}
	return t.Import[idx+1:]
}
