package main

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/minsuh/inputcast/internal/bindings"
	"github.com/minsuh/inputcast/internal/bus"
	"github.com/minsuh/inputcast/internal/capture"
	"github.com/minsuh/inputcast/internal/config"
	"github.com/minsuh/inputcast/internal/event"
	"github.com/minsuh/inputcast/internal/peer"
	"github.com/minsuh/inputcast/internal/signaling"
	"github.com/minsuh/inputcast/internal/wire"
)

func main() {
	flags := config.ParseBroadcasterFlags()

	log.Printf("inputcast broadcaster starting")
	log.Printf("  Broadcaster ID: %s", flags.BroadcasterID)
	log.Printf("  Signaling:      %s", flags.SignalingURL)
	log.Printf("  Config:         %s", flags.ConfigPath)

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Printf("load config: %v (using defaults)", err)
		cfg = config.Default()
	}

	// Key bindings, hot-reloaded when the file changes.
	bindingsPath := cfg.BindingsPath(flags.ConfigPath)
	var bindMu sync.Mutex
	bindMap, err := bindings.Load(bindingsPath)
	if err != nil {
		log.Fatalf("load bindings: %v", err)
	}
	if cfg.Bindings.Watch {
		watcher, err := bindings.Watch(bindingsPath, func(m *bindings.Map) {
			bindMu.Lock()
			bindMap = m
			bindMu.Unlock()
			log.Printf("bindings reloaded: %s", bindingsPath)
		})
		if err != nil {
			log.Printf("watch bindings: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	// Dispatcher.
	b := bus.New()
	b.Subscribe(100, func(ctx *bus.Context, e event.Event) {
		if ctx.Canceled() {
			log.Printf("canceled: %T", e)
		}
	})

	// Peer manager (created on first offer).
	var cast *peer.Broadcaster
	var castMu sync.Mutex
	var sig *signaling.Client

	// The capture sink: dispatch, then — unless a listener canceled the
	// event — resolve bindings and stream to the connected monitor.
	sink := func(e event.Event) bool {
		if b.Dispatch(e) {
			return true
		}

		castMu.Lock()
		connected := cast
		castMu.Unlock()

		if connected != nil {
			data, err := wire.Encode(e)
			if err != nil {
				log.Printf("encode event: %v", err)
			} else {
				// Monitor gone or channel not open yet: drop the event.
				_ = connected.Transport().SendEvent(data)
			}
		}

		if k, ok := e.(event.Key); ok {
			bindMu.Lock()
			actions := bindMap.Resolve(k)
			bindMu.Unlock()
			for _, action := range actions {
				log.Printf("action: %s", action)
				if connected != nil {
					_ = connected.Transport().SendAction(action)
				}
			}
		}
		return false
	}

	// Signaling.
	sig = signaling.NewClient(flags.SignalingURL, flags.BroadcasterID, signaling.ClientTypeBroadcaster, signaling.Handler{
		OnRegistered: func() {
			log.Println("Registered with signaling server")
		},
		OnOffer: func(from string, payload json.RawMessage) {
			log.Printf("Received offer from %s", from)
			castMu.Lock()
			if cast != nil {
				cast.Close()
			}
			next, err := peer.NewBroadcaster(sig)
			if err != nil {
				castMu.Unlock()
				log.Printf("create broadcaster peer: %v", err)
				return
			}
			cast = next
			castMu.Unlock()

			if err := next.HandleOffer(from, payload); err != nil {
				log.Printf("handle offer: %v", err)
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			castMu.Lock()
			connected := cast
			castMu.Unlock()
			if connected != nil {
				if err := connected.HandleICECandidate(payload); err != nil {
					log.Printf("handle ICE candidate: %v", err)
				}
			}
		},
		OnError: func(msg string) {
			log.Printf("signaling error: %s", msg)
		},
	})

	if err := sig.Connect(); err != nil {
		log.Fatalf("signaling connect: %v", err)
	}
	defer sig.Close()

	log.Printf("Broadcaster ready. Share this ID with monitors: %s", flags.BroadcasterID)

	src, err := newSource(cfg)
	if err != nil {
		log.Fatalf("capture init: %v", err)
	}

	// The window backend must run on the main goroutine (macOS requirement).
	if err := src.Run(sink); err != nil {
		log.Fatalf("capture: %v", err)
	}

	castMu.Lock()
	if cast != nil {
		cast.Close()
	}
	castMu.Unlock()
}

func newSource(cfg *config.Config) (capture.Source, error) {
	if cfg.Capture.Backend == "evdev" {
		src, err := capture.NewEvdevSource(cfg.Capture.Device)
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return capture.NewEbitenSource(cfg.Capture.Title, cfg.Capture.Width, cfg.Capture.Height), nil
}
