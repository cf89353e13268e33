package batch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexiscope/lexiscope/semantic/batch"
)

func TestFromSourceJavaScript(t *testing.T) {
	src := []byte(`
function f() {
  var a = 1;
  return a;
}
`)
	g, err := batch.FromSource("widget.js", src)
	require.NoError(t, err)
	assert.Equal(t, "widget.js", g.Path)
	assert.NotEmpty(t, g.Scopes, "a function body opens at least one scope")
}

func TestFromSourceTypeScript(t *testing.T) {
	src := []byte(`
export class Widget {
  name: string;
}
`)
	g, err := batch.FromSource("widget.ts", src)
	require.NoError(t, err)
	assert.NotEmpty(t, g.Symbols)
}
