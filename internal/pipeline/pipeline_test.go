package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openconfig/aceconf/internal/registry"
	"github.com/openconfig/aceconf/internal/scanner/json"
)

const modelSrc = `{
  "header": {"author": "a", "doc": "d", "version": "1"},
  "body": {
    "a": {"kind": "boolean", "arity": "?", "doc": "d", "deps": [{"require": ["b"]}]},
    "b": {"kind": "integer", "arity": "?", "doc": "d"}
  }
}`

func newTestRegistry() *registry.Registry {
	r := registry.New()
	r.InlinedModels["base"] = modelSrc
	return r
}

func TestRunSucceedsWhenDependencySatisfied(t *testing.T) {
	r := newTestRegistry()
	s := json.New()
	doc, err := s.Parse("doc", `{"a": true, "b": 1}`)
	require.NoError(t, err)

	p := New(r)
	res := p.Run("base", doc)
	require.NoError(t, res.Err)
	require.True(t, res.Succeeded())
	require.Equal(t, ResolveInstance, res.Reached)
}

func TestRunFailsOnUnresolvedDependency(t *testing.T) {
	r := newTestRegistry()
	s := json.New()
	doc, err := s.Parse("doc", `{"a": true}`)
	require.NoError(t, err)

	p := New(r)
	res := p.Run("base", doc)
	require.Error(t, res.Err)
	require.False(t, res.Succeeded())
}

func TestRunFailsFastOnBadModel(t *testing.T) {
	r := registry.New()
	r.InlinedModels["bad"] = `{
  "header": {"author": "a", "doc": "d", "version": "1"},
  "body": {"x": {"kind": "integer", "arity": "bogus", "doc": "d"}}
}`
	s := json.New()
	doc, err := s.Parse("doc", `{}`)
	require.NoError(t, err)

	p := New(r)
	res := p.Run("bad", doc)
	require.Error(t, res.Err)
	require.Equal(t, CheckModel, res.Reached)
}
