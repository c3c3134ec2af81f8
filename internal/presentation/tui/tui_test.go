package tui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Hakkology/MuginCAD-sub000/internal/presentation/tui"
	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/Hakkology/MuginCAD-sub000/pkg/geom"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	m := domain.NewModel()
	m.Add(domain.NewLine(geom.Vec(0, 0), geom.Vec(10, 0)))
	m.AddEntity(m.NewGroup("Block", m.NewEntity(domain.NewCircle(geom.Vec(0, 0), 1, false))))
	m.Axes.AddHorizontal(5)
	m.Definitions.SeedDefaults()

	out := tui.Report("plan", m)
	assert.True(t, strings.HasPrefix(out, "# plan\n"))
	assert.Contains(t, out, "3 entities")
	assert.Contains(t, out, "| Circle | 1 |")
	assert.Contains(t, out, "- `#1` **Line** (Default)")
	assert.Contains(t, out, "  - `#2` **Circle** (Default)")
	assert.Contains(t, out, "- 0: Default *(active)*")
	assert.Contains(t, out, "- 1: horizontal at 5.00")
	assert.Contains(t, out, "- Column S40x40: 40x40")
	assert.Contains(t, out, "- Beam K25x50: 25x50")
}

func TestReport_Empty(t *testing.T) {
	out := tui.Report("empty", domain.NewModel())
	assert.Contains(t, out, "0 entities, bounds (0.00, 0.00) - (100.00, 100.00)")
	assert.NotContains(t, out, "## Entities")
}

func TestStatusStyler_Ascii(t *testing.T) {
	style := tui.StatusStyler(termenv.Ascii)
	out, err := style("Invalid input \"x\".")
	require.NoError(t, err)
	assert.Equal(t, "Invalid input \"x\".", out, "ascii profile adds no escape codes")
}

func TestPrintBanner(t *testing.T) {
	buf := &bytes.Buffer{}
	tui.PrintBanner(buf)
	assert.Contains(t, buf.String(), "|___/")
}

func TestNewRenderer(t *testing.T) {
	render := tui.NewRenderer()
	out, err := render("# Title")
	require.NoError(t, err)
	assert.Contains(t, out, "Title")
}
