package json

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openconfig/aceconf/internal/scanner"
)

func TestParseAndDumpRoundTrip(t *testing.T) {
	s := New()
	v, err := s.Parse("doc", `{"a":1,"b":["x","y"],"c":true}`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Dump(v, scanner.Compact, &buf))

	v2, err := s.Parse("doc2", buf.String())
	require.NoError(t, err)

	a, ok := v2.Get1(named("a"))
	require.True(t, ok)
	n, err := a.Int()
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestParseAllMultiDocument(t *testing.T) {
	s := New()
	docs, err := s.ParseAll("stream", `{"a":1}{"a":2}`)
	require.NoError(t, err)
	require.Len(t, docs, 2)
}

func TestNameAndExtension(t *testing.T) {
	s := New()
	require.Equal(t, "json", s.Name())
	require.Equal(t, "json", s.Extension())
}
