package term

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/termsnake/internal/audio"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/game"
	"github.com/vovakirdan/termsnake/internal/input"
)

// Options configures a game session.
type Options struct {
	Seed      int64
	ShowTrace bool          // Draw the last-observed-event overlay
	Logger    *log.Logger   // Optional; defaults to a discarding logger
	Sound     *audio.Player // Optional
}

// Run plays one game session to completion and returns the final score.
// It owns the terminal for its whole lifetime: the screen is initialized on
// entry, the input-capture and tick goroutines are started, and on exit the
// goroutines are joined before the terminal is restored, even on failure.
func Run(opts Options) (score int, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	backend, err := NewBackend()
	if err != nil {
		return 0, err
	}
	defer backend.Fini()

	queue := input.NewQueue()
	capture := input.StartCapture(backend.Screen(), queue)
	defer capture.Stop()

	sched := StartScheduler(time.Second / game.TicksPerSecond)
	defer sched.Stop()

	ctrl := game.NewController(opts.Seed)

	w, h := backend.Size()
	frame := core.NewScreen(w, h)
	logger.Info("game started",
		"width", w, "height", h,
		"ticks_per_second", game.TicksPerSecond, "seed", opts.Seed)

	lastScore := 0
	wasLost := false
	for range sched.C {
		ctrl.Tick(queue.Drain())
		snap := ctrl.Snapshot()

		if snap.Score > lastScore {
			lastScore = snap.Score
			opts.Sound.Eat()
			logger.Info("apple eaten", "score", snap.Score, "length", len(snap.Body))
		}
		if snap.Lost && !wasLost {
			wasLost = true
			opts.Sound.GameOver()
			logger.Info("game over", "score", snap.Score)
		}

		w, h = backend.Size()
		frame.Resize(w, h)
		if snap.Lost {
			EndScreen(frame, snap)
		} else {
			Frame(frame, snap, opts.ShowTrace)
		}
		backend.Flush(frame)

		if ctrl.CloseRequested() {
			break
		}
	}

	logger.Info("shutting down")
	return ctrl.Score(), nil
}
