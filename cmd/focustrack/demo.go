package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/focustrack/internal/config"
	"github.com/dshills/focustrack/internal/event"
	"github.com/dshills/focustrack/internal/focus"
	"github.com/dshills/focustrack/internal/host"
	"github.com/dshills/focustrack/internal/host/termhost"
	"github.com/dshills/focustrack/internal/interaction"
	"github.com/dshills/focustrack/internal/logging"
	"github.com/dshills/focustrack/internal/menu"
	"github.com/dshills/focustrack/internal/script"
)

// box is a focusable rectangle on the demo screen.
type box struct {
	*focus.Node
	label  string
	left   int
	top    int
	width  int
	height int
}

func (b *box) region() termhost.Region {
	return termhost.Region{
		ID:     b.ID(),
		Left:   b.left,
		Top:    b.top,
		Right:  b.left + b.width,
		Bottom: b.top + b.height,
	}
}

type demo struct {
	screen  tcell.Screen
	src     *termhost.Source
	focus   *focus.Tracker
	kb      *focus.KeyboardTracker
	tracker *interaction.Tracker
	boxes   []*box
	bar     *menu.Bar
	log     *logging.Logger
}

func runDemo(cfg *config.Config) error {
	logger := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Logging.Level),
		Output: logging.DefaultConfig().Output,
		Prefix: "focustrack",
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	bus := event.NewBus()
	src := termhost.New(screen, termhost.WithHoldWindow(cfg.HoldWindow))
	registry := interaction.NewRegistry(bus, src)

	d := &demo{
		screen: screen,
		src:    src,
		focus:  focus.NewTracker(bus),
		bar:    demoMenu(),
		log:    logger.WithComponent("demo"),
		boxes: []*box{
			{Node: focus.NewNode("alpha"), label: "Alpha", left: 4, top: 4, width: 16, height: 5},
			{Node: focus.NewNode("beta"), label: "Beta", left: 24, top: 4, width: 16, height: 5},
			{Node: focus.NewNode("gamma"), label: "Gamma", left: 44, top: 4, width: 16, height: 5},
		},
	}
	for _, b := range d.boxes {
		d.focus.Add(b)
	}

	// The keyboard tracker mounts the shared interaction tracker, so it
	// observes host events ahead of the demo's own observer below.
	kb, err := focus.NewKeyboardTracker(bus, registry, d.focus)
	if err != nil {
		return fmt.Errorf("keyboard tracker: %w", err)
	}
	defer kb.Destroy()
	d.kb = kb
	d.tracker = registry.Acquire()
	defer registry.Release()

	if cfg.Script != "" {
		engine := script.New(bus, logger)
		if err := engine.LoadFile(cfg.Script); err != nil {
			return fmt.Errorf("load script %s: %w", cfg.Script, err)
		}
		defer engine.Close()
	}

	regions := make([]termhost.Region, len(d.boxes))
	for i, b := range d.boxes {
		regions[i] = b.region()
	}
	src.SetRegions(regions)

	remove := src.Observe(d.handle)
	defer remove()

	d.log.Debug("demo running, hold window %s", cfg.HoldWindow)
	d.draw()
	src.Run()
	return nil
}

// handle reacts to host events after the trackers have seen them.
func (d *demo) handle(e host.Event) {
	switch e.Type {
	case host.EventKeyDown:
		switch {
		case e.Key == host.KeyEscape, e.Key == host.KeyRune && e.Rune == 'q':
			d.src.Stop()
			return
		case e.Key == host.KeyTab && e.Mod.Has(host.ModShift):
			d.focus.Prev()
		case e.Key == host.KeyTab:
			d.focus.Next()
		}
	case host.EventPointerEnter:
		if b := d.boxAt(e.X, e.Y); b != nil {
			d.focus.FocusElement(b)
		}
	}
	d.draw()
}

func (d *demo) boxAt(x, y int) *box {
	for _, b := range d.boxes {
		r := b.region()
		if x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom {
			return b
		}
	}
	return nil
}

func (d *demo) draw() {
	d.screen.Clear()
	d.drawMenuBar()
	for _, b := range d.boxes {
		d.drawBox(b)
	}
	d.drawStatus()
	d.screen.Show()
}

func (d *demo) drawMenuBar() {
	style := tcell.StyleDefault.Reverse(true)
	w, _ := d.screen.Size()
	for x := 0; x < w; x++ {
		d.screen.SetContent(x, 0, ' ', nil, style)
	}
	x := 1
	for _, m := range d.bar.Menus() {
		drawText(d.screen, x, 0, style, " "+m.Label()+" ")
		x += len(m.Label()) + 3
	}
}

func (d *demo) drawBox(b *box) {
	style := tcell.StyleDefault
	if b.IsFocused() {
		if d.kb.IsFocusedUsingKeyboard() {
			style = style.Foreground(tcell.ColorGreen).Bold(true)
		} else {
			style = style.Foreground(tcell.ColorYellow)
		}
	}

	right := b.left + b.width - 1
	bottom := b.top + b.height - 1
	for x := b.left; x <= right; x++ {
		d.screen.SetContent(x, b.top, tcell.RuneHLine, nil, style)
		d.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := b.top; y <= bottom; y++ {
		d.screen.SetContent(b.left, y, tcell.RuneVLine, nil, style)
		d.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	d.screen.SetContent(b.left, b.top, tcell.RuneULCorner, nil, style)
	d.screen.SetContent(right, b.top, tcell.RuneURCorner, nil, style)
	d.screen.SetContent(b.left, bottom, tcell.RuneLLCorner, nil, style)
	d.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)

	drawText(d.screen, b.left+2, b.top+2, style, b.label)
}

func (d *demo) drawStatus() {
	_, h := d.screen.Size()
	line := fmt.Sprintf("key=%v mouse=%v keyboard-focus=%v | Tab/Shift-Tab cycle, mouse hovers, q quits",
		d.tracker.KeyPressed(), d.tracker.MouseMoved(), d.kb.IsFocusedUsingKeyboard())
	drawText(d.screen, 1, h-1, tcell.StyleDefault.Dim(true), line)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		s.SetContent(x+i, y, r, nil, style)
	}
}
