package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/braheezy/qoa"
	"github.com/ebitengine/oto/v3"
)

// Ambience loops a QOA track in the background.
type Ambience struct {
	player *oto.Player
	done   chan struct{}
}

// PlayAmbience decodes path and starts it on the default audio device.
func PlayAmbience(path string) (*Ambience, error) {
	qoaBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read ambient track: %w", err)
	}
	metadata, samples, err := qoa.Decode(qoaBytes)
	if err != nil {
		return nil, fmt.Errorf("decode ambient track %s: %w", path, err)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(metadata.SampleRate),
		ChannelCount: int(metadata.Channels),
		// QOA is always 16 bit
		Format: oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-ready

	reader := qoa.NewReader(samples, int(metadata.Channels))
	a := &Ambience{
		player: ctx.NewPlayer(reader),
		done:   make(chan struct{}),
	}
	go a.loop(reader)
	slog.Info("ambient track playing", "path", path, "rate", metadata.SampleRate, "channels", metadata.Channels)
	return a, nil
}

func (a *Ambience) loop(reader io.Seeker) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	a.player.Play()
	for {
		select {
		case <-a.done:
			a.player.Pause()
			return
		case <-ticker.C:
			if !a.player.IsPlaying() {
				// rewind and go again
				if _, err := reader.Seek(0, io.SeekStart); err != nil {
					slog.Warn("ambient track rewind", "error", err)
					return
				}
				a.player.Play()
			}
		}
	}
}

func (a *Ambience) Close() {
	close(a.done)
}
