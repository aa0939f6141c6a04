package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath/builder"
	"github.com/katalvlaran/lvlath/frontier"
)

func resetFlags() {
	fl = flags{}
}

func TestSelectSpecRejectsZeroFlags(t *testing.T) {
	resetFlags()
	defer resetFlags()

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	_, err = selectSpec(g, sched)
	require.ErrorIs(t, err, ErrUsage)
}

func TestSelectSpecRejectsMultipleFlags(t *testing.T) {
	resetFlags()
	defer resetFlags()

	fl.cycle = true
	fl.tree = true

	g, err := builder.BuildGraph(nil, builder.Path(3))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	_, err = selectSpec(g, sched)
	require.ErrorIs(t, err, ErrUsage)
}

func TestSelectSpecCycleOnTriangle(t *testing.T) {
	resetFlags()
	defer resetFlags()

	fl.cycle = true

	g, err := builder.BuildGraph(nil, builder.Cycle(3))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	spec, err := selectSpec(g, sched)
	require.NoError(t, err)
	require.NotNil(t, spec)
}

func TestLetterIPresetRejectsWrongVertexCount(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	_, err = letterIPreset(g, sched)
	require.ErrorIs(t, err, ErrUsage)
}

func TestLetterPPresetAcceptsFourVertices(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)
	sched, err := frontier.Build(g)
	require.NoError(t, err)

	spec, err := letterPPreset(g, sched)
	require.NoError(t, err)
	require.NotNil(t, spec)
}
