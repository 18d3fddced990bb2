package app

import (
	"io"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

const (
	// spinnerInterval is how often the spinner advances.
	spinnerInterval = 100 * time.Millisecond
	// spinnerType is the progressbar spinner style.
	spinnerType = 14
)

// startSpinner shows an indeterminate spinner on w until the returned function is called.
// A nil w shows nothing.
func startSpinner(w io.Writer, description string) func() {
	if w == nil {
		return func() {}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(spinnerType),
		progressbar.OptionClearOnFinish(),
	)

	var (
		done = make(chan struct{})
		wg   sync.WaitGroup
	)

	wg.Go(func() {
		ticker := time.NewTicker(spinnerInterval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				_ = bar.Add(1)
			}
		}
	})

	var once sync.Once

	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()

			_ = bar.Finish()
		})
	}
}
