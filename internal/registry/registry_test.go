package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openconfig/aceconf/internal/basictype"
	"github.com/openconfig/aceconf/internal/diagnostic"
	"github.com/openconfig/aceconf/internal/path"
	"github.com/openconfig/aceconf/internal/tree"
)

// fakeBody is a minimal basictype.InstanceValidator stand-in for plugin
// dispatch tests, independent of a real model/body.
type fakeBody struct{}

func (fakeBody) CheckInstance(*tree.Value, *diagnostic.Set, bool) error { return nil }
func (fakeBody) ExpandInstance(*tree.Value) error                      { return nil }
func (fakeBody) FlattenInstance(*tree.Value, *diagnostic.Set) error     { return nil }
func (fakeBody) ResolveInstance(*tree.Value) error                     { return nil }

func simpleModelSrc(author string, includes []string, optName string) string {
	inc := ""
	for i, n := range includes {
		if i > 0 {
			inc += ","
		}
		inc += `"` + n + `"`
	}
	return `{
  "header": {"author": "` + author + `", "doc": "d", "version": "1", "include": [` + inc + `]},
  "body": {"` + optName + `": {"kind": "boolean", "arity": "0:1", "doc": "d"}}
}`
}

func TestLoadModelResolvesIncludes(t *testing.T) {
	r := New()
	r.InlinedModels["base"] = simpleModelSrc("a", nil, "x")
	r.InlinedModels["child"] = simpleModelSrc("b", []string{"base"}, "y")

	m, err := r.LoadModel("child")
	require.NoError(t, err)
	require.NotNil(t, m.Body)

	_, ok := m.Body.Get("x")
	require.True(t, ok, "included option x should survive composition")
	_, ok = m.Body.Get("y")
	require.True(t, ok, "own option y should be present")
}

func TestLoadModelDetectsCircularInclude(t *testing.T) {
	r := New()
	r.InlinedModels["a"] = simpleModelSrc("a", []string{"b"}, "x")
	r.InlinedModels["b"] = simpleModelSrc("b", []string{"a"}, "y")

	_, err := r.LoadModel("a")
	require.Error(t, err)
}

func TestResolveModelCachesBody(t *testing.T) {
	r := New()
	r.InlinedModels["base"] = simpleModelSrc("a", nil, "x")

	b1, err := r.ResolveModel("base")
	require.NoError(t, err)
	b2, err := r.ResolveModel("base")
	require.NoError(t, err)
	require.Same(t, b1, b2)
}

func TestScannerForFileByExtension(t *testing.T) {
	r := New()
	s, ok := r.ScannerForFile("models/thing.yaml")
	require.True(t, ok)
	require.Equal(t, "yaml", s.Name())

	_, ok = r.ScannerForFile("models/thing.xyz")
	require.False(t, ok)
}

func TestResolvePluginMatchesTrigger(t *testing.T) {
	r := New()
	called := false
	err := r.RegisterBuilder("$.plugins.*", func(at path.Path) (basictype.InstanceValidator, error) {
		called = true
		return fakeBody{}, nil
	})
	require.NoError(t, err)

	at, err := path.Parse("$.plugins.foo")
	require.NoError(t, err)

	body, ok := r.ResolvePlugin(at)
	require.True(t, ok)
	require.NotNil(t, body)
	require.True(t, called)
}

func TestResolvePluginNoMatch(t *testing.T) {
	r := New()
	at, err := path.Parse("$.other")
	require.NoError(t, err)
	_, ok := r.ResolvePlugin(at)
	require.False(t, ok)
}
