// Package progress renders a terminal progress bar from the batch writer's
// event stream. It is a pure observer: the pipeline never imports it and any
// rendering failure is swallowed.
package progress

import (
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/medapp/medseed/internal/seed"
)

// Bar tracks one generation run on the terminal with count and ETA.
type Bar struct {
	bar *progressbar.ProgressBar
}

// New returns a bar for total records of the named entity.
func New(total int, noun string) *Bar {
	return &Bar{
		bar: progressbar.NewOptions(total,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("generating "+noun),
			progressbar.OptionShowCount(),
			progressbar.OptionSetPredictTime(true),
			progressbar.OptionSetElapsedTime(true),
			progressbar.OptionClearOnFinish(),
		),
	}
}

// Observe consumes one progress event. Safe to pass as seed.RunOptions.Observe.
func (b *Bar) Observe(p seed.Progress) {
	_ = b.bar.Set(p.Done)
}

// Finish completes and clears the bar.
func (b *Bar) Finish() {
	_ = b.bar.Finish()
}
