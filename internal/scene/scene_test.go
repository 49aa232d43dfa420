package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Faultbox/polyspin/internal/config"
	"github.com/Faultbox/polyspin/internal/solid"
	"github.com/Faultbox/polyspin/pkg/math"
)

func TestBuildDefaultScene(t *testing.T) {
	cfg := config.Default()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	solids, err := Build(cfg.Scene, cfg.Animation, now)
	require.NoError(t, err)
	require.Len(t, solids, 3)

	require.Equal(t, solid.Pyramid, solids[0].Kind)
	require.Equal(t, solid.Scutoid, solids[1].Kind)
	require.Equal(t, solid.Octahedron, solids[2].Kind)

	require.Equal(t, math.Vec3{X: -2, Z: -8}, solids[0].Transform.TranslationPart())
	require.Equal(t, math.Vec3{Z: -8}, solids[1].Transform.TranslationPart())
	require.Equal(t, math.Vec3{X: 2, Z: -8}, solids[2].Transform.TranslationPart())

	for _, s := range solids {
		require.Equal(t, now, s.LastUpdate)
		require.Equal(t, 5*time.Second, s.Period)
	}
	require.NotNil(t, solids[2].Oscillator)
	require.Equal(t, 0.1, solids[2].Oscillator.Step)
	require.Equal(t, 3.0, solids[2].Oscillator.Limit)
}

func TestBuildAppliesAnimationSettings(t *testing.T) {
	sc := config.SceneConfig{Solids: []config.SolidConfig{
		{Kind: "octahedron", Translation: [3]float32{0, 0, -5}, Axis: [3]float32{1, 0, 0}},
	}}
	anim := config.AnimationConfig{Period: time.Second, OscillationStep: 0.25, OscillationLimit: 1}

	solids, err := Build(sc, anim, time.Now())
	require.NoError(t, err)
	require.Len(t, solids, 1)

	o := solids[0]
	require.Equal(t, time.Second, o.Period)
	require.Equal(t, math.Vec3{X: 1}, o.Axis)
	require.Equal(t, 0.25, o.Oscillator.Step)
	require.Equal(t, 1.0, o.Oscillator.Limit)
}

func TestBuildErrors(t *testing.T) {
	anim := config.Default().Animation

	_, err := Build(config.SceneConfig{}, anim, time.Now())
	require.Error(t, err)

	_, err = Build(config.SceneConfig{Solids: []config.SolidConfig{
		{Kind: "pyramid"},
		{Kind: "dodecahedron"},
	}}, anim, time.Now())
	require.ErrorContains(t, err, "solid 1")
	require.ErrorContains(t, err, "dodecahedron")
}
