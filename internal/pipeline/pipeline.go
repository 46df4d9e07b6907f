// Package pipeline drives the seven-phase state machine of spec.md §4.8:
// check_model, flatten_model, validate_model (model-side, run once per
// loaded model) followed by check_instance, expand_instance,
// flatten_instance, resolve_instance (instance-side, run once per
// configuration document against that model). A failure in any phase
// snapshots the diagnostics gathered so far and stops; later phases are
// skipped, matching ytypes/validate.go's short-circuiting phase dispatch.
package pipeline

import (
	"fmt"

	log "github.com/golang/glog"

	"github.com/openconfig/aceconf/internal/diagnostic"
	"github.com/openconfig/aceconf/internal/model"
	"github.com/openconfig/aceconf/internal/registry"
	"github.com/openconfig/aceconf/internal/tree"
	"github.com/openconfig/aceconf/internal/util"
)

// Phase names the state machine's seven stops, in run order.
type Phase int

const (
	CheckModel Phase = iota
	FlattenModel
	ValidateModel
	CheckInstance
	ExpandInstance
	FlattenInstance
	ResolveInstance
)

func (p Phase) String() string {
	switch p {
	case CheckModel:
		return "check_model"
	case FlattenModel:
		return "flatten_model"
	case ValidateModel:
		return "validate_model"
	case CheckInstance:
		return "check_instance"
	case ExpandInstance:
		return "expand_instance"
	case FlattenInstance:
		return "flatten_instance"
	case ResolveInstance:
		return "resolve_instance"
	default:
		return "unknown"
	}
}

// instance pairs a loaded model's body with the configuration document
// being driven through it and the last phase it successfully reached,
// the value-object original_source's Instance.h wraps to avoid
// re-threading the same four parameters through every phase function.
type instance struct {
	m        *model.Model
	tree     *tree.Value
	reached  Phase
	diag     *diagnostic.Set
}

// Result is what a pipeline run returns: the furthest phase reached, the
// final (possibly mutated by expand/flatten) instance tree, and every
// diagnostic recorded along the way. Strict-mode unexpected keys and
// every other phase failure arrive as a non-nil Err; the diagnostics
// recorded up to that point are still present on Result so a caller can
// report what it found before failing.
type Result struct {
	Reached Phase
	Tree    *tree.Value
	Diag    []diagnostic.Diagnostic
	Err     error
}

// Pipeline drives models and instances loaded from a Registry through
// the seven phases. One Pipeline can run many model/instance pairs; each
// Run call gets its own diagnostic Set.
type Pipeline struct {
	Registry *registry.Registry
	Strict   bool
}

// New returns a Pipeline bound to reg.
func New(reg *registry.Registry) *Pipeline {
	return &Pipeline{Registry: reg}
}

// CheckAndLoadModel runs S0-S2 (check_model, flatten_model, validate_model)
// against the named model, loading it (and its transitive includes) from
// the Registry first. Intended to be called once per model before any
// instance is driven through it; Run calls it internally when a caller
// only has a model path.
func (p *Pipeline) CheckAndLoadModel(modelPath string) (*model.Model, Phase, error) {
	m, err := p.Registry.LoadModel(modelPath)
	if err != nil {
		return nil, CheckModel, err
	}
	util.DbgPrint("pipeline: %s check_model", modelPath)
	if err := m.CheckModel(); err != nil {
		log.Warningf("aceconf: %s failed check_model: %v", modelPath, err)
		return m, CheckModel, err
	}
	util.DbgPrint("pipeline: %s flatten_model", modelPath)
	if err := m.FlattenModel(); err != nil {
		log.Warningf("aceconf: %s failed flatten_model: %v", modelPath, err)
		return m, FlattenModel, err
	}
	util.DbgPrint("pipeline: %s validate_model", modelPath)
	if err := m.ValidateModel(); err != nil {
		log.Warningf("aceconf: %s failed validate_model: %v", modelPath, err)
		return m, ValidateModel, err
	}
	return m, ValidateModel, nil
}

// Run drives doc (a parsed configuration document) through the named
// model's full seven phases: the three model-side phases first (a
// model that fails check_model/flatten_model/validate_model never gets
// to see an instance), then the four instance-side phases in order,
// stopping at the first failure.
func (p *Pipeline) Run(modelPath string, doc *tree.Value) *Result {
	m, reached, err := p.CheckAndLoadModel(modelPath)
	if err != nil {
		return &Result{Reached: reached, Tree: doc, Err: err}
	}

	inst := &instance{m: m, tree: doc, reached: ValidateModel, diag: diagnostic.NewSet()}

	steps := []struct {
		phase Phase
		run   func() error
	}{
		{CheckInstance, func() error { return m.Body.CheckInstance(inst.tree, inst.diag, p.Strict) }},
		{ExpandInstance, func() error { return m.Body.ExpandInstance(inst.tree) }},
		{FlattenInstance, func() error { return m.Body.FlattenInstance(inst.tree, inst.diag) }},
		{ResolveInstance, func() error { return m.Body.ResolveInstance(inst.tree) }},
	}
	for _, st := range steps {
		util.DbgPrint("pipeline: %s %s", modelPath, st.phase)
		if err := st.run(); err != nil {
			log.Warningf("aceconf: %s failed %s: %v", modelPath, st.phase, err)
			return &Result{Reached: inst.reached, Tree: inst.tree, Diag: inst.diag.All(), Err: err}
		}
		inst.reached = st.phase
	}
	return &Result{Reached: inst.reached, Tree: inst.tree, Diag: inst.diag.All()}
}

// Succeeded reports whether the run reached resolve_instance without
// error.
func (r *Result) Succeeded() bool {
	return r.Err == nil && r.Reached == ResolveInstance
}

// String renders a short operator-facing summary of the run, in the
// glog-adjacent terse style the rest of the core uses for trace output.
func (r *Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("pipeline stopped at %s: %v", r.Reached, r.Err)
	}
	return fmt.Sprintf("pipeline reached %s (%d diagnostics)", r.Reached, len(r.Diag))
}
