// Package parzen implements a sequential Tree-of-Parzen-Estimators (TPE)
// optimizer for a single scalar parameter. Callers drive a suggest,
// evaluate, observe loop: ask for a candidate, evaluate it externally, and
// report the metric back.
//
//	opt, err := parzen.New(parzen.Config[float64]{
//		Min:   0,
//		Max:   10,
//		Prior: kernel.Boxcar[float64]{Min: 0, Max: 10},
//		Shape: kernel.NewEpanechnikov[float64](),
//		Seed:  1,
//	})
//	if err != nil {
//		return err
//	}
//	for i := 0; i < 100; i++ {
//		x, err := opt.Suggest()
//		if err != nil {
//			return err
//		}
//		if err := opt.Observe(x, objective(x)); err != nil {
//			return err
//		}
//	}
//	best, err := opt.Best()
//
// The optimizer models the historically strong outcomes and the rest as two
// kernel density mixtures and picks the candidate with the highest density
// ratio between them. Multi-parameter search is composition: run one
// optimizer per parameter. An optimizer is not safe for concurrent use;
// concurrent searches should run independent instances with independent
// random sources.
package parzen
