package rod

import (
	"context"
	"time"
)

// Scroller is a page that can be scrolled to its end.
type Scroller interface {
	ScrollHeight() (int, error)
	ScrollToBottom() error
}

// ScrollUntilStable scrolls to the bottom, waits pause for more content
// and repeats until the scroll height stops changing. maxScrolls caps the
// number of scrolls when positive.
func ScrollUntilStable(ctx context.Context, s Scroller, pause time.Duration, maxScrolls int) error {
	last, err := s.ScrollHeight()
	if err != nil {
		return err
	}

	for n := 0; maxScrolls <= 0 || n < maxScrolls; n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.ScrollToBottom(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pause):
		}

		height, err := s.ScrollHeight()
		if err != nil {
			return err
		}
		if height == last {
			return nil
		}
		last = height
	}
	return nil
}
