package engine

type Options struct {
	Iterations       int
	Beta             float64
	ProgressInterval int
}

func NewOptions() Options {
	return Options{
		Iterations:       1000,
		Beta:             0.03,
		ProgressInterval: 10_000,
	}
}
