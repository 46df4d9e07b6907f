// Package registry implements the Master/ModelDirs role of spec.md §5: it
// resolves a model path to its compiled Body, dispatches Plugin triggers
// to the matching registered body, scans configured directories for
// model/instance files using the format registered under each scanner's
// name and extension, and guards against circular includes while a
// package is being loaded.
package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/derekparker/trie"

	"github.com/openconfig/aceconf/internal/basictype"
	"github.com/openconfig/aceconf/internal/diagnostic"
	"github.com/openconfig/aceconf/internal/errs"
	"github.com/openconfig/aceconf/internal/model"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/scanner"
	"github.com/openconfig/aceconf/internal/scanner/json"
	"github.com/openconfig/aceconf/internal/scanner/toml"
	"github.com/openconfig/aceconf/internal/scanner/yaml"
	"github.com/openconfig/aceconf/internal/section"
)

// BuilderFunc constructs a plugin body on demand for a given trigger
// match, mirroring original_source's engine/Master.cpp plugin factory
// table.
type BuilderFunc func(trigger path.Path) (basictype.InstanceValidator, error)

type pluginEntry struct {
	trigger path.Path
	body    basictype.InstanceValidator
}

// Registry is the load-time and run-time home for everything a pipeline
// run needs beyond a single model: directory search paths, inlined model
// sources (for tests and embedded configs), the compiled model cache,
// plugin dispatch, scanner lookup by name or file extension, and a
// diagnostic set. Pipeline runs do not write to Diag; each run records
// into its own set.
type Registry struct {
	ModelDirs     []string
	InlinedModels map[string]string // model path -> source text, bypasses ModelDirs

	builders map[string]BuilderFunc // trigger pattern string -> builder
	plugins  []pluginEntry          // realized plugin bodies, checked before builders

	models     map[string]*model.Model
	bodies     map[string]*section.Body
	childrenOf map[string]map[string]bool

	loading map[string]bool // currently-loading package paths, cycle guard

	scannersByName map[string]scanner.Scanner
	extTrie        *trie.Trie

	Diag *diagnostic.Set
}

// New returns a Registry pre-populated with the three built-in scanners.
func New() *Registry {
	r := &Registry{
		InlinedModels:  map[string]string{},
		builders:       map[string]BuilderFunc{},
		models:         map[string]*model.Model{},
		bodies:         map[string]*section.Body{},
		childrenOf:     map[string]map[string]bool{},
		loading:        map[string]bool{},
		scannersByName: map[string]scanner.Scanner{},
		extTrie:        trie.New(),
		Diag:           diagnostic.NewSet(),
	}
	r.RegisterScanner(json.New())
	r.RegisterScanner(yaml.New())
	r.RegisterScanner(toml.New())
	return r
}

// reset clears per-run state: the compiled model cache, the loading
// stack, and diagnostics. ModelDirs, InlinedModels, scanners and plugin
// builders survive a reset since they describe the environment, not a
// single pipeline run.
func (r *Registry) reset() {
	r.models = map[string]*model.Model{}
	r.bodies = map[string]*section.Body{}
	r.childrenOf = map[string]map[string]bool{}
	r.loading = map[string]bool{}
	r.Diag = diagnostic.NewSet()
}

// RegisterScanner makes s available by both its format name and its file
// extension. The extension index is a trie, the same structure the
// teacher uses for prefix-style lookups over path strings, repurposed
// here to key on file extensions instead.
func (r *Registry) RegisterScanner(s scanner.Scanner) {
	r.scannersByName[s.Name()] = s
	r.extTrie.Add(s.Extension(), s)
}

// ScannerByName returns the scanner registered under the given format
// name ("json", "yaml", "toml").
func (r *Registry) ScannerByName(name string) (scanner.Scanner, bool) {
	s, ok := r.scannersByName[name]
	return s, ok
}

// ScannerForFile picks the scanner matching p's extension.
func (r *Registry) ScannerForFile(p string) (scanner.Scanner, bool) {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if ext == "" {
		return nil, false
	}
	node, ok := r.extTrie.Find(ext)
	if !ok {
		return nil, false
	}
	s, ok := node.Meta().(scanner.Scanner)
	return s, ok
}

// RegisterBuilder associates a plugin trigger pattern (spec.md §3.4's
// Plugin kind) with a factory that builds the nested body on first use.
func (r *Registry) RegisterBuilder(triggerPattern string, b BuilderFunc) error {
	p, err := path.Parse(triggerPattern)
	if err != nil {
		return err
	}
	if !p.Global() {
		return errs.New(errs.InvalidPath, triggerPattern, "plugin trigger must be globally rooted")
	}
	r.builders[p.String()] = b
	return nil
}

// enter pushes modelPath onto the currently-loading stack, failing with
// CircularInclude if it is already there — the same condition spec.md's
// model-loading prose calls both "duplicate loading context" and
// "circular include"; both map onto this one Kind.
func (r *Registry) enter(modelPath string) error {
	if r.loading[modelPath] {
		return errs.New(errs.CircularInclude, modelPath, "model is already being loaded")
	}
	r.loading[modelPath] = true
	return nil
}

func (r *Registry) exit(modelPath string) {
	delete(r.loading, modelPath)
}

// findSource resolves modelPath to its raw source text, preferring an
// inlined model (tests, embedded configs) over a directory search.
func (r *Registry) findSource(modelPath string) (string, scanner.Scanner, error) {
	if src, ok := r.InlinedModels[modelPath]; ok {
		s, ok := r.ScannerByName("json")
		if !ok {
			return "", nil, errs.New(errs.UnsupportedFormat, modelPath, "no json scanner registered")
		}
		return src, s, nil
	}
	for _, dir := range r.ModelDirs {
		for _, s := range r.scannersByName {
			cand := filepath.Join(dir, modelPath+"."+s.Extension())
			if data, ok := readFile(cand); ok {
				return data, s, nil
			}
		}
	}
	return "", nil, errs.New(errs.UnsupportedFormat, modelPath, "model not found in any configured directory")
}

func readFile(p string) (string, bool) {
	data, err := os.ReadFile(p)
	if err != nil {
		return "", false
	}
	return string(data), true
}

// LoadModel parses and fully composes the model at modelPath, resolving
// its Includes transitively and guarding against cycles, then caches the
// compiled Body for ResolveModel. Safe to call repeatedly: a cached
// model is returned without re-parsing.
func (r *Registry) LoadModel(modelPath string) (*model.Model, error) {
	if m, ok := r.models[modelPath]; ok {
		return m, nil
	}
	if err := r.enter(modelPath); err != nil {
		return nil, err
	}
	defer r.exit(modelPath)

	src, s, err := r.findSource(modelPath)
	if err != nil {
		return nil, err
	}
	doc, err := s.Parse(modelPath, src)
	if err != nil {
		return nil, err
	}
	m, err := model.FromTree(doc)
	if err != nil {
		return nil, err
	}

	children := map[string]bool{}
	var includes []*model.Model
	for _, inc := range m.Header.Includes {
		children[inc] = true
		incModel, err := r.LoadModel(inc)
		if err != nil {
			return nil, err
		}
		includes = append(includes, incModel)
	}
	if len(includes) > 0 {
		if err := m.Compose(includes); err != nil {
			return nil, err
		}
	}

	m.Body.Resolver = r
	r.models[modelPath] = m
	r.bodies[modelPath] = m.Body
	r.childrenOf[modelPath] = children
	return m, nil
}

// ChildrenOf returns the set of model paths directly included by
// modelPath, already loaded. Empty if modelPath has no includes or
// hasn't been loaded yet.
func (r *Registry) ChildrenOf(modelPath string) map[string]bool {
	return r.childrenOf[modelPath]
}

// ResolveModel implements basictype.Resolver for the Class kind: load
// (or fetch from cache) the named model and return its Body.
func (r *Registry) ResolveModel(modelPath string) (basictype.InstanceValidator, error) {
	if b, ok := r.bodies[modelPath]; ok {
		return b, nil
	}
	if _, err := r.LoadModel(modelPath); err != nil {
		return nil, err
	}
	return r.bodies[modelPath], nil
}

// RegisterPlugin makes an already-built body available for a trigger
// pattern directly, bypassing the BuilderFunc table — used by tests and
// by callers that construct plugin bodies themselves.
func (r *Registry) RegisterPlugin(triggerPattern string, body basictype.InstanceValidator) error {
	p, err := path.Parse(triggerPattern)
	if err != nil {
		return err
	}
	r.plugins = append(r.plugins, pluginEntry{trigger: p, body: body})
	return nil
}

// ResolvePlugin implements basictype.Resolver for the Plugin kind.
// Realized plugins are tried first, in registration order, and the first
// whose trigger pattern matches at wins. Builders are tried after them in
// map iteration order, so when several builder patterns match at, which
// one builds the body is not defined.
func (r *Registry) ResolvePlugin(at path.Path) (basictype.InstanceValidator, bool) {
	for _, e := range r.plugins {
		if path.Match(e.trigger, at) {
			return e.body, true
		}
	}
	for pattern, b := range r.builders {
		p, err := path.Parse(pattern)
		if err != nil {
			continue
		}
		if path.Match(p, at) {
			body, err := b(at)
			if err != nil {
				continue
			}
			r.plugins = append(r.plugins, pluginEntry{trigger: p, body: body})
			return body, true
		}
	}
	return nil, false
}
