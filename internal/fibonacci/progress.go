package fibonacci

import "math"

// ProgressCallback receives the completed fraction of a computation, in
// [0, 1]. It is invoked from the computing goroutine.
type ProgressCallback func(progress float64)

// CalcTotalWork returns the total work units for a doubling loop over
// numBits bits. Operand sizes double with every bit, so the cost of step i
// grows as 4^i and the total is the geometric series (4^numBits - 1) / 3.
func CalcTotalWork(numBits int) float64 {
	if numBits <= 0 {
		return 0
	}
	return (math.Pow(4, float64(numBits)) - 1) / 3
}

// PrecomputePowers4 returns 4^0 .. 4^(numBits-1).
func PrecomputePowers4(numBits int) []float64 {
	if numBits <= 0 {
		return nil
	}
	powers := make([]float64, numBits)
	powers[0] = 1
	for i := 1; i < numBits; i++ {
		powers[i] = powers[i-1] * 4
	}
	return powers
}

// progressReporter turns completed doubling steps into throttled progress
// callbacks.
type progressReporter struct {
	callback ProgressCallback
	powers   []float64
	total    float64
	done     float64
	last     float64
}

func newProgressReporter(cb ProgressCallback, numBits int) *progressReporter {
	if cb == nil {
		return nil
	}
	return &progressReporter{
		callback: cb,
		powers:   PrecomputePowers4(numBits),
		total:    CalcTotalWork(numBits),
	}
}

// step records the completion of the step-th bit, counting from the most
// significant one. The final step always reports 1.0.
func (p *progressReporter) step(step int) {
	if p == nil {
		return
	}
	p.done += p.powers[step]
	if step == len(p.powers)-1 {
		p.last = 1
		p.callback(1)
		return
	}
	progress := p.done / p.total
	if progress-p.last >= ProgressReportThreshold {
		p.last = progress
		p.callback(progress)
	}
}
