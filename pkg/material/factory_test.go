package material

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/df07/go-scene-generator/pkg/core"
)

// fixedRandom replays scripted IntN results and returns constant channels
type fixedRandom struct {
	ints    []int
	channel int
}

func (f *fixedRandom) IntN(n int) int {
	v := f.ints[0]
	f.ints = f.ints[1:]
	return v
}
func (f *fixedRandom) IntRange(lo, hi int) int           { return f.channel }
func (f *fixedRandom) FloatRange(lo, hi float64) float64 { return lo }
func (f *fixedRandom) Read(p []byte) (int, error)        { return len(p), nil }

func TestFactory_KindSelection(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
		want  Material
	}{
		{"first draw 1 is lambertian", []int{1}, NewLambertian(core.NewColor(7, 7, 7))},
		{"first draw 2 is lambertian", []int{2}, NewLambertian(core.NewColor(7, 7, 7))},
		{"first 0 then 1 is metal", []int{0, 1}, NewMetal(core.White, MetalFuzz)},
		{"first 0 then 0 is dielectric", []int{0, 0}, NewDielectric(core.White, GlassRefractionIndex)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory := NewFactory(&fixedRandom{ints: tt.draws, channel: 7}, NewSequentialIDSource("m"))
			id, m := factory.Generate()
			assert.Equal(t, "m1", id)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestFactory_FixedAttributes(t *testing.T) {
	factory := NewFactory(core.NewRandom(3), NewSequentialIDSource("m"))

	for i := 0; i < 5000; i++ {
		_, m := factory.Generate()
		switch v := m.(type) {
		case *Lambertian:
			require.Equal(t, DiffuseFuzz, v.Fuzz)
		case *Metal:
			require.Equal(t, core.White, v.Color)
			require.Equal(t, MetalFuzz, v.Fuzz)
		case *Dielectric:
			require.Equal(t, core.White, v.Color)
			require.Equal(t, GlassRefractionIndex, v.RefractionIndex)
			require.Greater(t, v.RefractionIndex, 1.0)
		default:
			t.Fatalf("unexpected material type %T", m)
		}
	}
}

func TestFactory_UniqueIdentifiers(t *testing.T) {
	random := core.NewRandom(11)
	factory := NewFactory(random, NewUUIDSource(random))

	seen := make(map[string]bool)
	for i := 0; i < 2000; i++ {
		id, _ := factory.Generate()
		require.False(t, seen[id], "duplicate identifier %q", id)
		seen[id] = true
	}
}

func TestFactory_WeightedDistribution(t *testing.T) {
	const samples = 60000
	factory := NewFactory(core.NewRandom(2024), NewSequentialIDSource("m"))

	counts := map[Kind]float64{}
	for i := 0; i < samples; i++ {
		_, m := factory.Generate()
		counts[m.Kind()]++
	}

	observed := []float64{counts[KindLambertian], counts[KindMetal], counts[KindDielectric]}
	expected := []float64{samples * 2.0 / 3.0, samples / 6.0, samples / 6.0}

	assert.InDelta(t, 2.0/3.0, observed[0]/samples, 0.01)
	assert.InDelta(t, 1.0/6.0, observed[1]/samples, 0.01)
	assert.InDelta(t, 1.0/6.0, observed[2]/samples, 0.01)

	chi2 := stat.ChiSquare(observed, expected)
	critical := distuv.ChiSquared{K: 2}.Quantile(0.999)
	assert.Less(t, chi2, critical, "observed %v deviates from expected %v", observed, expected)
}

func TestFactory_DiffuseColorsCoverRange(t *testing.T) {
	factory := NewFactory(core.NewRandom(8), NewSequentialIDSource("m"))

	var minSeen, maxSeen uint8 = 255, 0
	for i := 0; i < 20000; i++ {
		_, m := factory.Generate()
		if l, ok := m.(*Lambertian); ok {
			for _, c := range l.Color {
				minSeen = min(minSeen, c)
				maxSeen = max(maxSeen, c)
			}
		}
	}
	assert.Equal(t, uint8(0), minSeen)
	assert.Equal(t, uint8(255), maxSeen)
}
