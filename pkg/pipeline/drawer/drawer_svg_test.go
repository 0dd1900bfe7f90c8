package drawer_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-compose/pkg/pipeline/drawer"
	"github.com/askiada/go-compose/pkg/pipeline/measure"
)

func TestSVGDrawerDraw(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "chain.svg")
	d := drawer.NewSVGDrawer(fileName)

	require.NoError(t, d.AddStep("start"))
	require.NoError(t, d.AddStep("parse"))
	require.NoError(t, d.AddStep("render"))
	require.NoError(t, d.AddLink("start", "parse"))
	require.NoError(t, d.AddLink("parse", "render"))
	require.NoError(t, d.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "digraph")
	assert.Contains(t, string(content), `"parse" -> "render"`)
}

func TestSVGDrawerDuplicateStep(t *testing.T) {
	t.Parallel()

	d := drawer.NewSVGDrawer(filepath.Join(t.TempDir(), "chain.svg"))

	require.NoError(t, d.AddStep("step"))
	assert.NoError(t, d.AddStep("step"))

	require.NoError(t, d.AddStep("next"))
	require.NoError(t, d.AddLink("step", "next"))
	assert.NoError(t, d.AddLink("step", "next"))
}

func TestSVGDrawerSetLabel(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "chain.svg")
	d := drawer.NewSVGDrawer(fileName)

	require.NoError(t, d.AddStep("step"))
	require.NoError(t, d.SetLabel("step", "1s"))
	assert.Error(t, d.SetLabel("unknown", "1s"))

	require.NoError(t, d.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "1s")
}

func TestSVGDrawerAddMeasure(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "chain.svg")
	d := drawer.NewSVGDrawer(fileName)

	require.NoError(t, d.AddStep("slow"))
	require.NoError(t, d.AddStep("fast"))
	require.NoError(t, d.AddLink("slow", "fast"))

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("slow").AddDuration(time.Second)
	msr.AddMetric("fast").AddDuration(time.Millisecond)
	msr.AddMetric("idle")

	require.NoError(t, d.AddMeasure(msr))
	require.NoError(t, d.Draw())

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), "1s")
	assert.Contains(t, string(content), "color")
}
