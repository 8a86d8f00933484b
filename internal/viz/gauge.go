package viz

import "github.com/charmbracelet/harmonica"

// gauges smooths one fill fraction per structure with a critically damped
// spring so the panel bars glide instead of jumping on every commit.
type gauges struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
}

func newGauges(fps int, n int) gauges {
	return gauges{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		pos:    make([]float64, n),
		vel:    make([]float64, n),
	}
}

func (g *gauges) step(i int, target float64) float64 {
	p, v := g.spring.Update(g.pos[i], g.vel[i], target)
	g.pos[i] = p
	g.vel[i] = v
	return p
}

func (g *gauges) value(i int) float64 { return g.pos[i] }
