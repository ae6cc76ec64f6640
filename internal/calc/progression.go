package calc

// Default progression parameters.
const (
	DefaultProgressionPoints = 10
	DefaultProgressionWindow = 5
)

// Point is one value of the progression with the window average that
// produced it. Average is zero while the window is still being seeded.
type Point struct {
	Index   int
	Value   float64
	Average float64
}

// Progression generates points values. The window starts as window ones;
// the first window points emit those seeds, and every later point is twice
// the current window average, which then slides forward by one.
func Progression(points, window int) []Point {
	if points <= 0 {
		return nil
	}
	if window <= 0 {
		window = DefaultProgressionWindow
	}

	values := make([]float64, window)
	for i := range values {
		values[i] = 1
	}

	out := make([]Point, 0, points)
	for i := 0; i < points; i++ {
		if i < window {
			out = append(out, Point{Index: i, Value: values[i]})
			continue
		}

		var sum float64
		for _, v := range values {
			sum += v
		}
		avg := sum / float64(window)
		v := 2 * avg
		values = append(values[1:], v)
		out = append(out, Point{Index: i, Value: v, Average: avg})
	}
	return out
}
