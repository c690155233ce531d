package bresenham

import "testing"

// BenchmarkWalk benchmarks full exclusive walks of various lengths.
func BenchmarkWalk(b *testing.B) {
	lines := []struct {
		name string
		end  Point
	}{
		{"10px", Pt(10, 4)},
		{"100px", Pt(100, 37)},
		{"1000px", Pt(1000, 371)},
		{"1000px-steep", Pt(-371, -1000)},
	}

	for _, line := range lines {
		b.Run(line.name, func(b *testing.B) {
			start := Pt(0, 0)
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				w := Walk(start, line.end)
				for {
					if _, ok := w.Next(); !ok {
						break
					}
				}
			}
		})
	}
}

// BenchmarkWalk_Points benchmarks the range-over-func iterator against
// the pull-based Next loop on the same line.
func BenchmarkWalk_Points(b *testing.B) {
	start, end := Pt(0, 0), Pt(1000, 371)
	var sink Point

	b.Run("Next", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			w := Walk(start, end)
			for {
				p, ok := w.Next()
				if !ok {
					break
				}
				sink = p
			}
		}
	})

	b.Run("Points", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for p := range Points(start, end) {
				sink = p
			}
		}
	})

	_ = sink
}

// BenchmarkOctantBetween benchmarks octant classification alone.
func BenchmarkOctantBetween(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		octantBetween(Pt(0, 0), Pt(i&127-64, -(i&63)+32))
	}
}
