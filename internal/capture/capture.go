// Package capture turns raw backend input signals into notifications.
package capture

import "github.com/minsuh/inputcast/internal/event"

// Sink consumes one notification and reports whether a listener canceled it,
// i.e. whether default handling of the signal must be suppressed.
type Sink func(e event.Event) (canceled bool)

// Source is an input backend. It constructs each notification at the moment
// of the raw signal and hands it to the sink exactly once, on the polling
// goroutine.
type Source interface {
	// Run polls the backend until it shuts down. Blocks.
	Run(sink Sink) error
}
