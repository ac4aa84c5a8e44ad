package displayer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"vindec/internal/source"
	"vindec/internal/source/manual"
	"vindec/internal/source/savefile"
	"vindec/internal/vin"
	"vindec/pkg/log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Displayer handles the TUI. It decodes VINs from the save file or the
// manual input field and renders the result table.
type Displayer struct {
	app    *tview.Application
	file   *savefile.SaveFile
	manual *manual.Manual
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex

	// last decode, nil on error
	result *vin.Result
	source source.Source

	// UI elements cached for updates
	root       tview.Primitive
	statusText *tview.TextView
	helpText   *tview.TextView
	notesText  *tview.TextView
	vinText    *tview.TextView
	input      *tview.InputField
	table      *tview.Table
}

// New creates a Displayer. file may be nil when no save path is known.
func New(file *savefile.SaveFile, typed string) *Displayer {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Displayer{
		app:    tview.NewApplication(),
		file:   file,
		manual: manual.New(typed),
		ctx:    ctx,
		cancel: cancel,
	}
	d.build()
	return d
}

func (d *Displayer) Run() error {
	switch {
	case d.input.GetText() != "":
		d.load(d.manual)
	case d.file != nil:
		d.load(d.file)
	default:
		d.setStatus("[yellow]no save file configured, press i to type a VIN[white]")
	}

	if d.file != nil {
		go func() {
			err := savefile.Watch(d.ctx, d.file.Path(), func() {
				d.app.QueueUpdateDraw(func() {
					if d.source == source.Source(d.file) {
						d.load(d.file)
					}
				})
			})
			if err != nil {
				log.Debug("save file watch stopped", zap.Error(err))
			}
		}()
	}

	d.app.SetRoot(d.root, true).SetFocus(d.table)
	return d.app.Run()
}

func (d *Displayer) Shutdown() {
	d.cancel()
	d.app.Stop()
}

func (d *Displayer) build() {
	title := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText("vindec - My Winter Car VIN decoder")
	d.statusText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true)
	d.helpText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText("[f - Load save file] [i - Type VIN] [q - Quit]")

	d.input = tview.NewInputField().
		SetLabel("VIN: ").
		SetText(d.manualText()).
		SetPlaceholder("Enter VIN code here...").
		SetFieldWidth(vin.Length() + 6)
	d.input.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			d.manual.Set(d.input.GetText())
			d.load(d.manual)
		}
		d.app.SetFocus(d.table)
	})

	d.table = tview.NewTable().SetBorders(true)
	d.notesText = tview.NewTextView().SetTextAlign(tview.AlignCenter)
	d.vinText = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	header := tview.NewFlex().SetDirection(tview.FlexRow)
	header.AddItem(title, 1, 0, false)
	header.AddItem(d.statusText, 1, 0, false)
	header.AddItem(d.helpText, 1, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(header, 3, 0, false)
	mainFlex.AddItem(d.input, 1, 0, false)
	mainFlex.AddItem(d.table, 0, 1, true)
	mainFlex.AddItem(d.notesText, 2, 0, false)
	mainFlex.AddItem(d.vinText, 1, 0, false)
	d.root = mainFlex

	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if d.app.GetFocus() == d.input {
			return event
		}
		switch event.Rune() {
		case 'q', 'Q':
			d.Shutdown()
			return nil
		case 'f', 'F':
			if d.file != nil {
				d.load(d.file)
			}
			return nil
		case 'i', 'I':
			d.app.SetFocus(d.input)
			return nil
		}
		return event
	})

	d.renderTable(nil)
}

func (d *Displayer) manualText() string {
	text, _ := d.manual.ReadVIN(context.Background())
	return text
}

// load reads and decodes from src and refreshes every widget.
func (d *Displayer) load(src source.Source) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.source = src
	d.result = nil

	raw, err := src.ReadVIN(d.ctx)
	if err != nil {
		log.Debug("failed to read VIN", zap.String("source", src.Name()), zap.Error(err))
		d.setStatus(fmt.Sprintf("[red]%s[white]", tview.Escape(err.Error())))
		d.renderTable(nil)
		return
	}

	res, err := vin.Decode(raw)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, vin.ErrInvalidFormat) {
			msg = fmt.Sprintf("%s: %q", msg, raw)
		}
		d.setStatus(fmt.Sprintf("[red]%s[white]", tview.Escape(msg)))
		d.renderTable(nil)
		return
	}

	d.result = res
	status := fmt.Sprintf("[green]decoded[white] from %s", tview.Escape(src.Name()))
	if n := len(res.Unknown()); n > 0 {
		status += fmt.Sprintf(" [red](%d unknown)[white]", n)
	}
	d.setStatus(status)
	d.renderTable(res)
}

func (d *Displayer) setStatus(text string) {
	d.statusText.SetText(fmt.Sprintf("Status: %s", text))
}

func (d *Displayer) renderTable(res *vin.Result) {
	d.table.Clear()
	d.table.SetCell(0, 0, tview.NewTableCell("Field").SetSelectable(false).SetAlign(tview.AlignCenter))
	d.table.SetCell(0, 1, tview.NewTableCell("Code").SetSelectable(false).SetAlign(tview.AlignCenter))
	d.table.SetCell(0, 2, tview.NewTableCell("Decoded").SetSelectable(false).SetAlign(tview.AlignCenter))
	d.table.SetCell(0, 3, tview.NewTableCell("").SetSelectable(false))

	for i, r := range rows(res) {
		label := tview.NewTableCell(tview.Escape(r.label))
		if !r.known {
			label.SetTextColor(tcell.ColorRed)
		}
		d.table.SetCell(i+1, 0, tview.NewTableCell(r.name))
		d.table.SetCell(i+1, 1, tview.NewTableCell(tview.Escape(r.code)).SetAlign(tview.AlignCenter))
		d.table.SetCell(i+1, 2, label)
		swatch := tview.NewTableCell("   ")
		if r.hasSwatch {
			swatch.SetBackgroundColor(r.swatch)
		}
		d.table.SetCell(i+1, 3, swatch)
	}

	d.notesText.SetText(strings.Join(vin.Notes(res), "\n"))
	if res != nil {
		d.vinText.SetText(fmt.Sprintf("Complete VIN: %s", res.VIN))
	} else {
		d.vinText.SetText("")
	}
}

type row struct {
	name      string
	code      string
	label     string
	known     bool
	swatch    tcell.Color
	hasSwatch bool
}

// rows lays out the table content. A nil result yields one empty row per
// field so the layout does not jump between loads.
func rows(res *vin.Result) []row {
	if res == nil {
		fields := vin.Fields()
		out := make([]row, len(fields))
		for i, f := range fields {
			out[i] = row{name: f.Name, known: true}
		}
		return out
	}

	out := make([]row, 0, len(res.Fields))
	for _, f := range res.Fields {
		r := row{name: f.Name, code: f.Code, label: f.Label, known: f.Known}
		if c, ok := vin.Swatch(f.Key, f.Code, res); ok {
			r.swatch = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
			r.hasSwatch = true
		}
		out = append(out, r)
	}
	return out
}
