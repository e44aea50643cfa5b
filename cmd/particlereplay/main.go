package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/akmonengine/particlesim/eventlog"
	"github.com/akmonengine/particlesim/replay"
	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

type Viewer struct {
	screen tcell.Screen
	player *replay.Player
	frame  time.Duration

	// Audio
	audioInit bool
}

func NewViewer(recording *eventlog.Recording, fps int, sound bool) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{
		screen: screen,
		player: replay.NewPlayer(recording, replay.DefaultMaxFrames),
		frame:  time.Second / time.Duration(max(1, fps)),
	}

	if sound {
		if err := v.initAudio(); err != nil {
			// Non-fatal, the replay runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	return v, nil
}

func (v *Viewer) initAudio() error {
	sampleRate := beep.SampleRate(44100)
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		v.audioInit = true
	}
	return err
}

func (v *Viewer) playHitSound() {
	if !v.audioInit {
		return
	}

	sampleRate := beep.SampleRate(44100)
	duration := sampleRate.N(30 * time.Millisecond)
	sine, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return
	}

	speaker.Play(beep.Take(duration, sine))
}

// handleInput returns false when the viewer should quit
func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			v.player.Paused = !v.player.Paused
		case ev.Key() == tcell.KeyRune && ev.Rune() == 't':
			v.player.Trails = !v.player.Trails
		case ev.Key() == tcell.KeyRight:
			v.player.Next()
		case ev.Key() == tcell.KeyLeft:
			v.player.Prev()
		}
		replay.Draw(v.screen, v.player)

	case *tcell.EventResize:
		v.screen.Sync()
		replay.Draw(v.screen, v.player)
	}

	return true
}

// pollEvents forwards screen events until the screen is finalized
func pollEvents(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		events <- ev
	}
}

func (v *Viewer) run() {
	ticker := time.NewTicker(v.frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pollEvents(v.screen, eventChan)

	replay.Draw(v.screen, v.player)
	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if v.player.Paused {
				continue
			}

			previous, _ := v.player.Frame()
			v.player.Next()
			frame, _ := v.player.Frame()
			if frame.Time > previous.Time && len(v.player.Recording.CollisionsBetween(previous.Time, frame.Time)) > 0 {
				v.playHitSound()
			}
			replay.Draw(v.screen, v.player)
		}
	}
}

func (v *Viewer) cleanup() {
	if v.audioInit {
		speaker.Close()
	}
	v.screen.Fini()
}

func main() {
	var (
		logFile = flag.String("log", "simulation.txt", "event log written by particlesim")
		fps     = flag.Int("fps", 50, "frames per second")
		sound   = flag.Bool("sound", false, "beep on collisions")
		analyze = flag.Bool("analyze", false, "print collision statistics and exit")
		bins    = flag.Int("bins", eventlog.DefaultHistogramBins, "time buckets of the -analyze histogram")
	)
	flag.Parse()

	recording, err := eventlog.Open(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading event log: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s: %s\n", *logFile, recording.Summary())

	if *analyze {
		fmt.Print(recording.Analysis(*bins))
		return
	}

	viewer, err := NewViewer(recording, *fps, *sound)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
