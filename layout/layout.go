package layout

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jroimartin/gocui"
)

const (
	manualName  = "manual"
	historyName = "pastcommand"
	loggerName  = "logger"
	inputName   = "input"
)

// Console is a terminal UI with a manual, a history of past commands, a log
// pane and an input line. Every submitted line is handed to submit; an error
// it returns is shown under the line in the history.
type Console struct {
	g      *gocui.Gui
	submit func(line string) error

	// Lines logged before the log pane exists.
	m       sync.Mutex
	backlog []string
}

// manual is the ViewManager that shows the available commands.
type manual struct {
	text string
}

// pastCmd is the ViewManager that logs past commands.
type pastCmd struct{}

type logger struct {
	c *Console
}

// Input box for commands.
type input struct {
	c *Console
}

func (m *manual) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Top left corner.
	v, err := g.SetView(manualName, 1, 1, maxX/3, maxY*2/3-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	if err == gocui.ErrUnknownView {
		v.Title = "Manual"
		v.Wrap = true
		fmt.Fprintln(v, m.text)
	}
	return nil
}

func (pc *pastCmd) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom left corner.
	v, err := g.SetView(historyName, 1, maxY*2/3, maxX/3, maxY-6)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Title = "History"
	v.Autoscroll = true
	v.Wrap = true
	return nil
}

func (l *logger) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Right side.
	v, err := g.SetView(loggerName, maxX/3+1, 1, maxX-1, maxY-6)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Title = "Log"
	v.Autoscroll = true
	v.Wrap = true
	if err == gocui.ErrUnknownView {
		l.c.m.Lock()
		for _, line := range l.c.backlog {
			fmt.Fprintln(v, line)
		}
		l.c.backlog = nil
		l.c.m.Unlock()
	}
	return nil
}

func (i *input) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom.
	v, err := g.SetView(inputName, 1, maxY-5, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Wrap = true
	v.Autoscroll = true
	v.Editor = i
	v.Editable = true
	return nil
}

func (i *input) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	switch {
	case key == gocui.KeyEnter:
		// Read buffer without the trailing newline.
		s := strings.TrimSpace(v.Buffer())
		if h, err := i.c.g.View(historyName); err == nil {
			fmt.Fprintln(h, "> "+s)
			if err := i.c.submit(s); err != nil {
				fmt.Fprintln(h, err.Error())
			}
		}

		// Reset cursor.
		v.Clear()
		v.SetOrigin(0, 0)
		v.SetCursor(0, 0)

	case ch != 0 && mod == 0:
		v.EditWrite(ch)
	case key == gocui.KeySpace:
		v.EditWrite(' ')
	case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
		v.EditDelete(true)
	}
}

func setFocus(name string) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		_, err := g.SetCurrentView(name)
		return err
	}
}

// CreateGui builds a console showing usage in its manual pane. submit must
// not block; long work belongs on another goroutine.
func CreateGui(usage string, submit func(line string) error) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Cursor = true

	c := &Console{g: g, submit: submit}
	g.SetManager(&manual{text: usage}, &pastCmd{}, &logger{c: c}, &input{c: c}, gocui.ManagerFunc(setFocus(inputName)))
	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		g.Close()
		return nil, err
	}
	return c, nil
}

// Run draws the console until the user quits.
func (c *Console) Run() error {
	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

// Quit makes Run return.
func (c *Console) Quit() {
	c.g.Update(func(*gocui.Gui) error {
		return gocui.ErrQuit
	})
}

// Close restores the terminal.
func (c *Console) Close() {
	c.g.Close()
}

// Log appends msg to the log pane. It is safe to call from any goroutine.
func (c *Console) Log(msg string) {
	c.g.Update(func(g *gocui.Gui) error {
		v, err := g.View(loggerName)
		if err != nil {
			c.m.Lock()
			c.backlog = append(c.backlog, msg)
			c.m.Unlock()
			return nil
		}
		fmt.Fprintln(v, msg)
		return nil
	})
}

// Write lets the console serve as the output of loggers and printers.
func (c *Console) Write(p []byte) (int, error) {
	c.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
