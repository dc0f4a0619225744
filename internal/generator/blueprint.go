package generator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/deicod/scaffolder/internal/entity"
	"github.com/deicod/scaffolder/internal/suggest"
)

// ErrUnknownBlueprint is returned when the configured blueprint is not registered.
var ErrUnknownBlueprint = errors.New("unknown blueprint")

// Blueprint replaces built-in sub-generators. SubGenerator returns false for
// names the blueprint leaves to the built-in implementation.
type Blueprint interface {
	Name() string
	SubGenerator(name string, ctx *entity.Context, deps Deps) (Generator, bool)
}

// BlueprintRegistry holds the blueprints a project may select by name.
type BlueprintRegistry struct {
	blueprints map[string]Blueprint
}

// NewBlueprintRegistry registers bps, panicking on duplicate names.
func NewBlueprintRegistry(bps ...Blueprint) *BlueprintRegistry {
	r := &BlueprintRegistry{blueprints: make(map[string]Blueprint, len(bps))}
	for _, bp := range bps {
		if err := r.Register(bp); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds bp. Names must be unique.
func (r *BlueprintRegistry) Register(bp Blueprint) error {
	if r.blueprints == nil {
		r.blueprints = make(map[string]Blueprint)
	}
	name := bp.Name()
	if name == "" {
		return errors.New("blueprint name is required")
	}
	if _, exists := r.blueprints[name]; exists {
		return fmt.Errorf("blueprint %q already registered", name)
	}
	r.blueprints[name] = bp
	return nil
}

// Lookup returns the blueprint registered as name.
func (r *BlueprintRegistry) Lookup(name string) (Blueprint, error) {
	if r != nil {
		if bp, ok := r.blueprints[name]; ok {
			return bp, nil
		}
	}
	err := fmt.Errorf("%w %q", ErrUnknownBlueprint, name)
	if hint := suggest.Phrase(suggest.Closest(name, r.Names(), 3)); hint != "" {
		err = fmt.Errorf("%w; %s", err, hint)
	}
	return nil, err
}

// Names lists registered blueprints, sorted.
func (r *BlueprintRegistry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.blueprints))
	for name := range r.blueprints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
