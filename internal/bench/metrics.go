package bench

import "math"

// PerformanceMetrics computes precision, recall, and F1 from summed match
// counts, using the same formulas as the benchmarking tool:
//
//	precision = tp / (tp + fp)
//	recall    = tpbase / (tpbase + fn)
//	f1        = 2 * precision * recall / (precision + recall)
//
// A zero denominator yields NaN for that metric, matching the tool's
// behavior of returning no value on division by zero.
func PerformanceMetrics(tpbase, tp, fn, fp float64) (precision, recall, f1 float64) {
	precision = math.NaN()
	recall = math.NaN()
	f1 = math.NaN()

	if tp+fp > 0 {
		precision = tp / (tp + fp)
	}
	if tpbase+fn > 0 {
		recall = tpbase / (tpbase + fn)
	}
	if !math.IsNaN(precision) && !math.IsNaN(recall) && precision+recall > 0 {
		f1 = 2 * precision * recall / (precision + recall)
	}
	return precision, recall, f1
}
