package dual

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestStandard(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		d := Standard[float64](rng, 3)
		assert.GreaterOrEqual(t, d.Val(), 0.0)
		assert.Less(t, d.Val(), 1.0)
		assert.Equal(t, []float64{0, 0, 0}, d.E())

		f := Standard[float32](rng, 0)
		assert.GreaterOrEqual(t, f.Val(), float32(0))
		assert.Less(t, f.Val(), float32(1))
	}
}

// TestDistribution samples a wrapped normal distribution and checks that
// the samples are constants with the expected mean.
func TestDistribution(t *testing.T) {
	normal := distuv.Normal{Mu: 3, Sigma: 0.5, Src: rand.NewPCG(7, 11)}
	dist := NewDistribution[float64](normal, 4)

	samples := dist.SampleN(5000)
	vals := make([]float64, len(samples))
	for i, s := range samples {
		assert.Equal(t, []float64{0, 0, 0, 0}, s.E())
		vals[i] = s.Val()
	}
	assert.InDelta(t, 3.0, floats.Sum(vals)/float64(len(vals)), 0.05)
}

func TestDistributionFloat32(t *testing.T) {
	uniform := distuv.Uniform{Min: -1, Max: 1, Src: rand.NewPCG(3, 4)}
	dist := NewDistribution[float32](uniform, 0)
	for range 50 {
		v := dist.Sample().Val()
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.LessOrEqual(t, v, float32(1))
	}
}
