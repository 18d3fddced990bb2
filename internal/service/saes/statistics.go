package saes

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/oshokin/saes-client/internal/logger"
)

// Statistics is a snapshot of the requests sent during a session.
type Statistics struct {
	// RequestsSent is the number of backend calls issued.
	RequestsSent int64
	// RequestsSucceeded is the number of calls that returned a result.
	RequestsSucceeded int64
	// RequestsFailed is the number of calls that returned an error.
	RequestsFailed int64
	// TotalElapsed is the time spent waiting for the backend across all calls.
	TotalElapsed time.Duration
}

// sessionStatistics accumulates Statistics from concurrent calls.
type sessionStatistics struct {
	sent      atomic.Int64
	succeeded atomic.Int64
	failed    atomic.Int64
	elapsed   atomic.Int64
}

func newSessionStatistics() *sessionStatistics {
	return new(sessionStatistics)
}

// record counts one finished backend call.
func (s *sessionStatistics) record(elapsed time.Duration, err error) {
	s.sent.Add(1)
	s.elapsed.Add(int64(elapsed))

	if err != nil {
		s.failed.Add(1)
		return
	}

	s.succeeded.Add(1)
}

func (s *sessionStatistics) snapshot() Statistics {
	return Statistics{
		RequestsSent:      s.sent.Load(),
		RequestsSucceeded: s.succeeded.Load(),
		RequestsFailed:    s.failed.Load(),
		TotalElapsed:      time.Duration(s.elapsed.Load()),
	}
}

// Statistics returns a snapshot of the session statistics.
func (s *ServiceImpl) Statistics() Statistics {
	return s.stats.snapshot()
}

// PrintSummary logs the session statistics at info level.
// Nothing is printed when no request was sent.
func (s *ServiceImpl) PrintSummary(ctx context.Context) {
	stats := s.stats.snapshot()

	if stats.RequestsSent == 0 {
		return
	}

	logger.Infof(ctx, "Requests: %s sent, %s succeeded, %s failed",
		humanize.Comma(stats.RequestsSent),
		humanize.Comma(stats.RequestsSucceeded),
		humanize.Comma(stats.RequestsFailed))

	logger.Infof(ctx, "Time spent waiting for the backend: %s (%s per request)",
		formatDuration(stats.TotalElapsed),
		formatDuration(stats.TotalElapsed/time.Duration(stats.RequestsSent)))

	if ctx.Err() != nil {
		logger.Warn(ctx, "Session was interrupted")
	}
}

// formatDuration formats a duration into a human-readable string.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%.1fs", d.Seconds())
}
