package cssc_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/titpetric/cssc"
)

// TestGoldenFixtures compiles every source/expected-output pair under
// testdata/ and checks the result matches byte for byte. A fixture named
// "name" is made of "name.in.css" (source) and "name.out.css" (expected
// output), plus an optional "name.style" file naming the style to compile
// with (one of nested/expanded/compact/compressed/debug); fixtures with no
// .style file compile with the nested style.
func TestGoldenFixtures(t *testing.T) {
	entries, err := os.ReadDir("testdata")
	require.NoError(t, err, "failed to read testdata directory")

	type fixture struct {
		in, out string
		haveIn  bool
		haveOut bool
		style   cssc.Style
	}
	fixtures := make(map[string]*fixture)

	get := func(name string) *fixture {
		f, ok := fixtures[name]
		if !ok {
			f = &fixture{style: cssc.Nested}
			fixtures[name] = f
		}
		return f
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join("testdata", name)

		switch {
		case strings.HasSuffix(name, ".in.css"):
			content, err := os.ReadFile(path)
			require.NoError(t, err, "failed to read %s", name)
			f := get(strings.TrimSuffix(name, ".in.css"))
			f.in, f.haveIn = string(content), true
		case strings.HasSuffix(name, ".out.css"):
			content, err := os.ReadFile(path)
			require.NoError(t, err, "failed to read %s", name)
			f := get(strings.TrimSuffix(name, ".out.css"))
			f.out, f.haveOut = string(content), true
		case strings.HasSuffix(name, ".style"):
			content, err := os.ReadFile(path)
			require.NoError(t, err, "failed to read %s", name)
			f := get(strings.TrimSuffix(name, ".style"))
			f.style = cssc.Style(strings.TrimSpace(string(content)))
		}
	}

	require.NotEmpty(t, fixtures, "testdata must contain at least one fixture")

	for name, f := range fixtures {
		t.Run(name, func(t *testing.T) {
			require.True(t, f.haveIn, "missing %s.in.css", name)
			require.True(t, f.haveOut, "missing %s.out.css", name)

			var buf strings.Builder
			err := cssc.Compile(f.in, f.style, &buf)
			require.NoError(t, err, "compiling fixture %s", name)
			require.Equal(t, f.out, buf.String(), "compiled output does not match fixture %s", name)
		})
	}
}
