package scroll

import "time"

// velocityWindow is how far back samples count toward the release velocity.
const velocityWindow = 100 * time.Millisecond

type sample struct {
	travel float64
	at     time.Time
}

// tracker estimates the content velocity of a drag from recent samples.
// travel accumulates every offset change, including the parts the panel
// consumed, so the estimate follows the finger rather than the content.
type tracker struct {
	travel  float64
	samples []sample
}

func (t *tracker) reset(at time.Time) {
	t.travel = 0
	t.samples = append(t.samples[:0], sample{at: at})
}

func (t *tracker) add(delta float64, at time.Time) {
	t.travel += delta
	t.samples = append(t.samples, sample{travel: t.travel, at: at})
	cutoff := at.Add(-velocityWindow)
	i := 0
	for i < len(t.samples)-1 && t.samples[i].at.Before(cutoff) {
		i++
	}
	t.samples = t.samples[i:]
}

// velocity returns offset units per second at time at. A finger that
// stopped longer than the window ago has zero velocity.
func (t *tracker) velocity(at time.Time) float64 {
	if len(t.samples) < 2 {
		return 0
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	if at.Sub(last.at) > velocityWindow {
		return 0
	}
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.travel - first.travel) / dt
}
