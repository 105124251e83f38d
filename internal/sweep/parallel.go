package sweep

import (
	"context"
	"sync"

	"github.com/san-kum/boltzmannizer/internal/thermo"
)

// EvaluateAll samples q for every distribution concurrently, one goroutine
// per distribution. Results keep the order of ds.
func EvaluateAll(ctx context.Context, ds []*thermo.Distribution, q Quantity, temps []float64) ([]Series, error) {
	results := make([]Series, len(ds))
	errs := make([]error, len(ds))

	var wg sync.WaitGroup
	for i, d := range ds {
		wg.Add(1)
		go func(idx int, d *thermo.Distribution) {
			defer wg.Done()

			values := make([]float64, len(temps))
			for j, T := range temps {
				if err := ctx.Err(); err != nil {
					errs[idx] = err
					return
				}
				values[j] = q.Eval(d, T)
			}
			results[idx] = Series{
				Name:         d.Filename(),
				Temperatures: append([]float64(nil), temps...),
				Values:       values,
			}
		}(i, d)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
