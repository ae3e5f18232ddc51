package clip

import (
	"time"

	"github.com/atotto/clipboard"

	"orhub/internal/system"
)

// AckDuration is how long the "copied" acknowledgment stays visible.
const AckDuration = 2 * time.Second

// Writer places text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) WriteAll(text string) error { return clipboard.WriteAll(text) }

// Available reports whether the OS clipboard can be used at all.
func Available() bool { return !clipboard.Unsupported }

// Copy writes text and reports success. Failures are logged and
// swallowed; callers simply skip the acknowledgment.
func Copy(w Writer, text string) bool {
	if err := w.WriteAll(text); err != nil {
		system.Logger.Warn("clipboard write failed", "err", err)
		return false
	}
	return true
}

// Ack tracks the transient acknowledgment. Each Start supersedes the
// previous one, so an older expiry cannot clear a newer ack.
type Ack struct {
	gen    uint64
	active bool
}

// Start shows the acknowledgment and returns the generation to expire.
func (a *Ack) Start() uint64 {
	a.gen++
	a.active = true
	return a.gen
}

// Expire hides the acknowledgment if gen is still current.
func (a *Ack) Expire(gen uint64) bool {
	if gen != a.gen || !a.active {
		return false
	}
	a.active = false
	return true
}

// Active reports whether the acknowledgment is visible.
func (a Ack) Active() bool { return a.active }
