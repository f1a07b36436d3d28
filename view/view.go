/*package view plays back a recorded trajectory in the terminal.

The vertical axis is radial distance, with the starting distance at the top
of the screen and the center at the bottom. The Standard particle is drawn in
the left lane and the ITLT particle in the right lane.
*/
package view

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/itlt/infall/trajectory"
)

const (
	StandardGlyph = 'o'
	ITLTGlyph     = '●'
	BoundaryGlyph = '-'
	CenterGlyph   = '='
)

var (
	statusStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	standardStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	itltStyle     = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	boundaryStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	centerStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Canvas is the part of tcell.Screen that frames are drawn onto.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
}

// Row maps a position in [0, xMax] onto a screen row. Row 0 is reserved for
// the status line, so xMax maps to row 1 and 0 maps to row height - 1.
func Row(x, xMax float64, height int) int {
	if height < 3 { return height - 1 }
	span := float64(height - 2)
	frac := (xMax - x) / xMax
	row := 1 + int(math.Round(frac*span))
	if row < 1 { row = 1 }
	if row > height - 1 { row = height - 1 }
	return row
}

// Lanes returns the columns of the Standard and ITLT particles.
func Lanes(width int) (std, itlt int) {
	return width / 3, 2 * width / 3
}

// DrawFrame draws step i of s onto c.
func DrawFrame(c Canvas, s *trajectory.Series, i int) {
	c.Clear()
	w, h := c.Size()
	if w <= 0 || h <= 0 || s.Len() == 0 { return }
	if i < 0 { i = 0 }
	if i >= s.Len() { i = s.Len() - 1 }

	xMax := math.Max(s.Standard[0], s.ITLT[0])

	bRow := Row(s.BoundaryLength, xMax, h)
	cRow := Row(0, xMax, h)
	for x := 0; x < w; x++ {
		c.SetContent(x, bRow, BoundaryGlyph, nil, boundaryStyle)
		c.SetContent(x, cRow, CenterGlyph, nil, centerStyle)
	}

	stdCol, itltCol := Lanes(w)
	c.SetContent(stdCol, Row(s.Standard[i], xMax, h),
		StandardGlyph, nil, standardStyle)
	c.SetContent(itltCol, Row(s.ITLT[i], xMax, h),
		ITLTGlyph, nil, itltStyle)

	drawText(c, 0, 0, Status(s, i), statusStyle)
}

// Status returns the status line for step i of s.
func Status(s *trajectory.Series, i int) string {
	stdState, itltState := trajectory.Falling, trajectory.Falling
	if s.CrashStep >= 0 && i >= s.CrashStep { stdState = trajectory.Crashed }
	if s.FreezeStep >= 0 && i >= s.FreezeStep { itltState = trajectory.Frozen }

	return fmt.Sprintf(
		"t = %7.2f  standard = %7.4f [%s]  itlt = %7.4f [%s]",
		s.Times[i], s.Standard[i], stdState, s.ITLT[i], itltState,
	)
}

func drawText(c Canvas, x, y int, text string, style tcell.Style) {
	w, _ := c.Size()
	for _, r := range text {
		if x >= w { return }
		c.SetContent(x, y, r, nil, style)
		x++
	}
}

// Player steps through a Series on a ticker.
type Player struct {
	screen tcell.Screen
	series *trajectory.Series
	sound Sounder

	Frame  int
	Stride int
	Paused bool
}

// NewPlayer creates a player which advances stride recorded steps per tick.
// sound may be nil.
func NewPlayer(
	screen tcell.Screen, s *trajectory.Series, stride int, sound Sounder,
) *Player {
	if stride < 1 { stride = 1 }
	if sound == nil { sound = silent{} }
	return &Player{ screen: screen, series: s, sound: sound, Stride: stride }
}

// Done returns true once the last recorded step is shown.
func (p *Player) Done() bool { return p.Frame >= p.series.Len() - 1 }

// Seek moves to frame i, playing a tone for every crash or freeze which is
// crossed going forward.
func (p *Player) Seek(i int) {
	if i < 0 { i = 0 }
	if i > p.series.Len() - 1 { i = p.series.Len() - 1 }

	if crossed(p.Frame, i, p.series.CrashStep) { p.sound.Play(CrashTone) }
	if crossed(p.Frame, i, p.series.FreezeStep) { p.sound.Play(FreezeTone) }
	p.Frame = i
}

func crossed(from, to, event int) bool {
	return event >= 0 && from < event && to >= event
}

// Tick advances the player by one stride unless it is paused.
func (p *Player) Tick() {
	if p.Paused || p.Done() { return }
	p.Seek(p.Frame + p.Stride)
}

// HandleKey applies a key press. It returns false if the player should exit.
func (p *Player) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		p.Paused = true
		p.Seek(p.Frame - p.Stride)
	case tcell.KeyRight:
		p.Paused = true
		p.Seek(p.Frame + p.Stride)
	case tcell.KeyHome:
		p.Seek(0)
	case tcell.KeyEnd:
		p.Seek(p.series.Len() - 1)
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case ' ':
			p.Paused = !p.Paused
		case '+':
			p.Stride *= 2
		case '-':
			if p.Stride > 1 { p.Stride /= 2 }
		}
	}
	return true
}

// Draw renders the current frame.
func (p *Player) Draw() {
	DrawFrame(p.screen, p.series, p.Frame)
	p.screen.Show()
}

// Run plays the series until the user quits.
func (p *Player) Run(tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil { return }
			events <- ev
		}
	}()

	p.Draw()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !p.HandleKey(ev.Key(), ev.Rune()) { return }
			case *tcell.EventResize:
				p.screen.Sync()
			}
			p.Draw()
		case <-ticker.C:
			p.Tick()
			p.Draw()
		}
	}
}

// Play opens the terminal, plays s and restores the terminal afterwards.
func Play(s *trajectory.Series, stride int, tick time.Duration, sound Sounder) error {
	screen, err := tcell.NewScreen()
	if err != nil { return err }
	if err := screen.Init(); err != nil { return err }
	defer screen.Fini()

	NewPlayer(screen, s, stride, sound).Run(tick)
	return nil
}
