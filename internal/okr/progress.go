package okr

import "math"

// OverallProgress is the arithmetic mean of the key results' progress values,
// rounded half away from zero. It is always recomputed from the key results;
// the stored column is only a display cache. An empty slice yields 0.
func OverallProgress(keyResults []KeyResult) int {
	if len(keyResults) == 0 {
		return 0
	}

	sum := 0
	for _, kr := range keyResults {
		sum += kr.Progress
	}
	return int(math.Round(float64(sum) / float64(len(keyResults))))
}
