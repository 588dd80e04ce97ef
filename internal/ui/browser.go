// Package ui renders a fetched station list in an interactive terminal table.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/radiodir/shoutcast/pkg/shoutcast"
)

var headers = []string{"#", "Name", "Genre", "Now Playing", "Kbps", "Listeners"}

// Browser displays the stations of one directory query and lets the user
// pick one. It owns no network access; the list is fetched before the
// browser starts.
type Browser struct {
	app      *tview.Application
	table    *tview.Table
	list     *shoutcast.StationList
	selected string
}

// NewBrowser builds a browser over the given result list. The title names
// the query that produced it.
func NewBrowser(title string, list *shoutcast.StationList) *Browser {
	b := &Browser{
		app:  tview.NewApplication(),
		list: list,
	}

	table := tview.NewTable().
		SetBorders(false).
		SetSeparator(' ').
		SetSelectable(true, false).
		SetFixed(1, 0)

	table.SetBorder(true).
		SetTitle(fmt.Sprintf(" %s (%d stations) ", title, len(list.Stations))).
		SetBorderPadding(1, 0, 1, 1)

	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(tcell.ColorBlack).
		Background(tcell.ColorOrange))

	for col, header := range headers {
		cell := tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false)
		if col >= 1 && col <= 3 {
			cell.SetExpansion(1)
		}
		if col >= 4 {
			cell.SetAlign(tview.AlignRight)
		}
		table.SetCell(0, col, cell)
	}

	for i, st := range list.Stations {
		b.setStationRow(table, i+1, st)
	}

	table.SetSelectedFunc(func(row, _ int) {
		if row < 1 || row > len(list.Stations) {
			return
		}
		b.selected = list.StreamURL(list.Stations[row-1])
		b.app.Stop()
	})

	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			b.app.Stop()
			return nil
		}
		return event
	})

	b.table = table
	b.app.SetRoot(table, true)
	return b
}

func (b *Browser) setStationRow(table *tview.Table, row int, st shoutcast.Station) {
	table.SetCell(row, 0, tview.NewTableCell(strconv.Itoa(row)).
		SetTextColor(tcell.ColorGray).
		SetMaxWidth(4))

	table.SetCell(row, 1, tview.NewTableCell(st.Name).
		SetMaxWidth(35).
		SetExpansion(2))

	table.SetCell(row, 2, tview.NewTableCell(strings.Join(st.GenreList(), ", ")).
		SetMaxWidth(27).
		SetExpansion(1))

	table.SetCell(row, 3, tview.NewTableCell(st.CurrentTrack).
		SetMaxWidth(35).
		SetExpansion(2))

	table.SetCell(row, 4, tview.NewTableCell(strconv.Itoa(st.Bitrate)).
		SetAlign(tview.AlignRight))

	table.SetCell(row, 5, tview.NewTableCell(strconv.Itoa(st.Listeners)).
		SetAlign(tview.AlignRight))
}

// Run blocks until the user picks a station or quits.
func (b *Browser) Run() error {
	return b.app.Run()
}

// SelectedStreamURL returns the stream URL of the station the user picked,
// or an empty string when the browser was quit without a selection.
func (b *Browser) SelectedStreamURL() string {
	return b.selected
}
