//go:build !linux

package capture

import "fmt"

// EvdevSource is only available on Linux.
type EvdevSource struct{}

func NewEvdevSource(path string) (*EvdevSource, error) {
	return nil, fmt.Errorf("evdev capture is only supported on linux")
}

func (s *EvdevSource) Run(sink Sink) error {
	return fmt.Errorf("evdev capture is only supported on linux")
}

func (s *EvdevSource) Close() error { return nil }
