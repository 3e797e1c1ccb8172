// Package sound plays the short alert cues used when a timer finishes.
package sound

import (
	"io"
	"sync"
	"time"

	"github.com/akyairhashvil/tasktimer/internal/models"
)

// Player plays a catalog sound. Play must not block the caller and must
// tolerate being called while a previous cue is still sounding.
//
//go:generate mockgen -source=player.go -destination=../mocks/mock_player.go -package=mocks
type Player interface {
	Play(id models.SoundID)
}

// PlayerFunc adapts a function to the Player interface.
type PlayerFunc func(id models.SoundID)

func (f PlayerFunc) Play(id models.SoundID) { f(id) }

// Nop discards every cue.
var Nop Player = PlayerFunc(func(models.SoundID) {})

// pattern is a sequence of gaps; a bell is written before each gap.
type pattern []time.Duration

var patterns = map[models.SoundID]pattern{
	models.SoundBell:       {0},
	models.SoundDigital:    {0, 120 * time.Millisecond, 120 * time.Millisecond},
	models.SoundSuccess:    {0, 100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond},
	models.SoundElectronic: {0, 200 * time.Millisecond},
	models.SoundWarning:    {0, 150 * time.Millisecond, 300 * time.Millisecond, 150 * time.Millisecond},
}

// PulseCount returns how many bell pulses id produces.
func PulseCount(id models.SoundID) int {
	return len(patterns[id.OrDefault()])
}

// BellPlayer renders cues as terminal bell (BEL) pulses written to W.
// Unknown ids fall back to the default sound.
type BellPlayer struct {
	mu    sync.Mutex
	w     io.Writer
	sleep func(time.Duration)
	wg    sync.WaitGroup
}

// NewBellPlayer writes cues to w, typically os.Stdout or the tty.
func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w, sleep: time.Sleep}
}

// Play starts the cue on its own goroutine and returns immediately.
func (p *BellPlayer) Play(id models.SoundID) {
	pat := patterns[id.OrDefault()]
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		for _, gap := range pat {
			if gap > 0 {
				p.sleep(gap)
			}
			p.mu.Lock()
			_, _ = p.w.Write([]byte{'\a'})
			p.mu.Unlock()
		}
	}()
}

// Wait blocks until every started cue has finished.
func (p *BellPlayer) Wait() {
	p.wg.Wait()
}
