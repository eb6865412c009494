package preview

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongen/internal/gamedata"
	"github.com/samdwyer/dungeongen/internal/telemetry"
	"github.com/samdwyer/dungeongen/internal/world"
)

// Viewer pages through the rooms of a level.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
	level    *world.Level
	current  int
	running  bool
}

// NewViewer creates a viewer over level.
func NewViewer(screen *Screen, tables *gamedata.Tables, level *world.Level) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: NewRenderer(screen, tables, level.Theme),
		level:    level,
		running:  true,
	}
}

// Current returns the index of the room on screen.
func (v *Viewer) Current() int {
	return v.current
}

// Run draws and handles input until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("preview").Start(ctx, "preview.run")
	span.SetAttributes(
		attribute.String("level.id", v.level.ID),
		attribute.Int("level.rooms", len(v.level.Rooms)),
	)
	defer span.End()

	viewed := 0
	for v.running {
		v.renderer.Render(v.level, v.current)
		viewed++
		v.HandleEvent(v.screen.PollEvent())
	}
	span.SetAttributes(attribute.Int("preview.renders", viewed))
	return nil
}

// HandleEvent processes a single input event.
func (v *Viewer) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKeyEvent(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	case nil:
		// The screen was finalized.
		v.running = false
	}
}

func (v *Viewer) handleKeyEvent(ev *tcell.EventKey) {
	n := len(v.level.Rooms)
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyTab, tcell.KeyRight, tcell.KeyDown:
		v.current = (v.current + 1) % n
	case tcell.KeyBacktab, tcell.KeyLeft, tcell.KeyUp:
		v.current = (v.current + n - 1) % n
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case 'n':
			v.current = (v.current + 1) % n
		case 'p':
			v.current = (v.current + n - 1) % n
		}
	}
}
