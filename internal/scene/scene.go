// Package scene builds the solid list described by the configuration.
package scene

import (
	"fmt"
	"time"

	"github.com/Faultbox/polyspin/internal/config"
	"github.com/Faultbox/polyspin/internal/solid"
	"github.com/Faultbox/polyspin/pkg/math"
)

// Build constructs every configured solid, in config order, with its
// animation clock starting at now.
func Build(sc config.SceneConfig, anim config.AnimationConfig, now time.Time) ([]*solid.Solid, error) {
	if len(sc.Solids) == 0 {
		return nil, fmt.Errorf("scene has no solids")
	}

	opts := solid.Options{
		Period: anim.Period,
		Oscillator: solid.OscillatorConfig{
			Step:  anim.OscillationStep,
			Limit: anim.OscillationLimit,
		},
		Now: now,
	}

	solids := make([]*solid.Solid, 0, len(sc.Solids))
	for i, sd := range sc.Solids {
		kind, err := solid.ParseKind(sd.Kind)
		if err != nil {
			return nil, fmt.Errorf("solid %d: %w", i, err)
		}
		s, err := solid.New(kind, math.Vec3From(sd.Translation), math.Vec3From(sd.Axis), opts)
		if err != nil {
			return nil, fmt.Errorf("solid %d: %w", i, err)
		}
		solids = append(solids, s)
	}
	return solids, nil
}
