package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/minsuh/inputcast/internal/bus"
	"github.com/minsuh/inputcast/internal/config"
	"github.com/minsuh/inputcast/internal/event"
	"github.com/minsuh/inputcast/internal/feed"
	"github.com/minsuh/inputcast/internal/peer"
	"github.com/minsuh/inputcast/internal/signaling"
	"github.com/minsuh/inputcast/internal/wire"
)

func main() {
	flags := config.ParseMonitorFlags()

	if flags.BroadcasterID == "" {
		log.Fatal("Usage: inputcast-monitor -signaling <url> -broadcaster <broadcaster-id>")
	}

	log.Printf("inputcast monitor starting")
	log.Printf("  Monitor ID:  %s", flags.MonitorID)
	log.Printf("  Signaling:   %s", flags.SignalingURL)
	log.Printf("  Broadcaster: %s", flags.BroadcasterID)

	// Feed window.
	window := feed.NewWindow("inputcast monitor", 640, 480)

	// Received notifications go through the monitor's own dispatcher before
	// the feed, so local listeners see the same stream the broadcaster saw.
	b := bus.New()
	b.Subscribe(0, func(ctx *bus.Context, e event.Event) {
		window.Append(feed.Describe(e))
	})

	// Peer manager.
	var mon *peer.Monitor

	// Signaling.
	var sig *signaling.Client
	sig = signaling.NewClient(flags.SignalingURL, flags.MonitorID, signaling.ClientTypeMonitor, signaling.Handler{
		OnRegistered: func() {
			log.Println("Registered with signaling server")

			// Create peer and send offer.
			var err error
			mon, err = peer.NewMonitor(sig, flags.BroadcasterID)
			if err != nil {
				log.Printf("create monitor peer: %v", err)
				os.Exit(1)
			}

			// Wire event receiving.
			mon.Transport().OnEvent(func(data []byte) {
				e, err := wire.Decode(data)
				if err != nil {
					log.Printf("decode event: %v", err)
					return
				}
				b.Dispatch(e)
			})
			mon.Transport().OnAction(func(name string) {
				window.Append("action: " + name)
			})

			if err := mon.Connect(); err != nil {
				log.Printf("monitor connect: %v", err)
			}
		},
		OnAnswer: func(from string, payload json.RawMessage) {
			if mon != nil {
				if err := mon.HandleAnswer(payload); err != nil {
					log.Printf("handle answer: %v", err)
				}
			}
		},
		OnICECandidate: func(from string, payload json.RawMessage) {
			if mon != nil {
				if err := mon.HandleICECandidate(payload); err != nil {
					log.Printf("handle ICE candidate: %v", err)
				}
			}
		},
		OnBroadcasterDisconnected: func(broadcasterID string) {
			if broadcasterID == flags.BroadcasterID {
				log.Printf("broadcaster %s disconnected", broadcasterID)
				window.Append("broadcaster disconnected")
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

	// Ebitengine RunGame must be on the main goroutine (macOS requirement).
	if err := window.Run(); err != nil {
		log.Fatalf("feed window: %v", err)
	}

	if mon != nil {
		mon.Close()
	}
}
