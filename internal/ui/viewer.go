package ui

import (
	"fmt"

	termui "github.com/gizak/termui/v3"
)

// Tui is the terminal surface. The real one wraps termui's globals.
type Tui interface {
	TerminalDimensions() (int, int)
	Render(items ...termui.Drawable)
	Init() error
	Close()
	PollEvents() <-chan termui.Event
}

type terminal struct{}

// NewTerminal returns the termui-backed Tui.
func NewTerminal() Tui { return terminal{} }

func (terminal) TerminalDimensions() (int, int)  { return termui.TerminalDimensions() }
func (terminal) Render(items ...termui.Drawable) { termui.Render(items...) }
func (terminal) Init() error                     { return termui.Init() }
func (terminal) Close()                          { termui.Close() }
func (terminal) PollEvents() <-chan termui.Event { return termui.PollEvents() }

// ChartViewer shows the salary chart full screen. p, b and l switch
// between pie, bar and line; q, Escape or Ctrl-C closes it.
type ChartViewer struct {
	store *Store
	tui   Tui
}

func NewChartViewer(store *Store, tui Tui) *ChartViewer {
	return &ChartViewer{store: store, tui: tui}
}

func (v *ChartViewer) Run() error {
	if err := v.tui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %w", err)
	}
	defer v.tui.Close()

	v.store.Dispatch(OpenChart{})
	defer v.store.Dispatch(CloseDialog{})
	v.render()

	for e := range v.tui.PollEvents() {
		switch e.Type {
		case termui.KeyboardEvent:
			switch e.ID {
			case "q", "<C-c>", "<Escape>":
				return nil
			case "p":
				v.store.Dispatch(SetChartType{Type: ChartPie})
			case "b":
				v.store.Dispatch(SetChartType{Type: ChartBar})
			case "l":
				v.store.Dispatch(SetChartType{Type: ChartLine})
			default:
				continue
			}
			v.render()
		case termui.ResizeEvent:
			v.render()
		}
	}
	return nil
}

func (v *ChartViewer) render() {
	s := v.store.State()
	chart := NewChart(s.ChartType, SalaryByDesignation(s.Employees))
	w, h := v.tui.TerminalDimensions()
	chart.SetRect(0, 0, w, h)
	v.tui.Render(chart)
}
