package cli

import (
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/billionfib/internal/fibonacci"
	"github.com/agbru/billionfib/internal/format"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts the terminal spinner so progress display can be tested
// without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// ProgressDisplay renders computation progress as a spinner with a bar and
// an ETA. Progress values arrive through Callback from the computing
// goroutine; rendering happens on a ticker goroutine.
type ProgressDisplay struct {
	label    string
	spinner  Spinner
	eta      *format.ETA
	progress atomic.Uint64 // math.Float64bits of the latest value
	stop     chan struct{}
	wg       sync.WaitGroup
}

// NewProgressDisplay creates a display writing to out. When enabled is
// false, the returned display accepts updates but never renders.
func NewProgressDisplay(out io.Writer, label string, enabled bool) *ProgressDisplay {
	p := &ProgressDisplay{label: label, eta: format.NewETA(), stop: make(chan struct{})}
	if enabled {
		p.spinner = newSpinner(out)
	}
	return p
}

// Callback returns the function to hand to fibonacci.WithProgress.
func (p *ProgressDisplay) Callback() fibonacci.ProgressCallback {
	return func(v float64) { p.progress.Store(math.Float64bits(v)) }
}

// Progress returns the latest reported value.
func (p *ProgressDisplay) Progress() float64 {
	return math.Float64frombits(p.progress.Load())
}

// Start begins rendering.
func (p *ProgressDisplay) Start() {
	if p.spinner == nil {
		return
	}
	p.render()
	p.spinner.Start()
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(ProgressRefreshRate)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
				p.render()
			}
		}
	}()
}

// Stop halts rendering and clears the spinner line. It is safe to call
// more than once.
func (p *ProgressDisplay) Stop() {
	if p.spinner == nil {
		return
	}
	select {
	case <-p.stop:
		return
	default:
		close(p.stop)
	}
	p.wg.Wait()
	p.spinner.Stop()
}

func (p *ProgressDisplay) render() {
	progress, eta := p.eta.Update(p.Progress())
	p.spinner.UpdateSuffix(" " + p.label + " " + format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth))
}
