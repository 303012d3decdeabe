package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/rileyhilliard/dash/internal/dashboard"
	"github.com/rileyhilliard/dash/internal/errors"
	"github.com/rileyhilliard/dash/internal/grid"
	"github.com/rileyhilliard/dash/internal/responsive"
	"github.com/rileyhilliard/dash/internal/stats"
	"github.com/rileyhilliard/dash/internal/ui"
	"github.com/rileyhilliard/dash/internal/util"
)

type statsOptions struct {
	ConfigPath string
	DataFile   string
	Width      int
	Height     int
	Format     string
}

// statsCommand prints the statistics grid as the dashboard would lay it out.
func statsCommand(w io.Writer, opts statsOptions) error {
	cfg, err := loadSettings(opts.ConfigPath, opts.DataFile)
	if err != nil {
		return err
	}
	log, err := cliLogger(cfg, debugFlag)
	if err != nil {
		return err
	}

	records, err := initialRecords(cfg)
	if err != nil {
		return err
	}
	if records == nil {
		records = stats.Seed()
	}
	records, err = stats.Normalize(records)
	if err != nil {
		return err
	}

	dims := responsive.Dimensions{Width: opts.Width, Height: opts.Height}
	if dims.Width <= 0 || dims.Height <= 0 {
		term, ok := responsive.TerminalDimensions(int(os.Stdout.Fd()))
		if !ok {
			term = responsive.Dimensions{Width: responsive.FallbackWidth, Height: responsive.FallbackHeight}
		}
		if dims.Width <= 0 {
			dims.Width = term.Width
		}
		if dims.Height <= 0 {
			dims.Height = term.Height
		}
	}

	layout, err := layoutFor(records, dims, cfg.Layout.TabletBreakpoint)
	if err != nil {
		return err
	}
	log.Debug("stats laid out",
		"device", layout.Class.String(),
		"orientation", layout.Orientation.String(),
		"columns", layout.Columns,
		"rows", len(layout.Rows))

	return renderStats(w, layout, opts.Format)
}

// statsLayout is the statistics grid for one set of dimensions.
type statsLayout struct {
	Class       responsive.DeviceClass
	Orientation responsive.Orientation
	Columns     int
	Rows        []grid.Row[stats.Record]
}

func layoutFor(records []stats.Record, dims responsive.Dimensions, breakpoint int) (statsLayout, error) {
	class := responsive.DeviceClassFor(dims.Width, breakpoint)
	orientation := dims.Orientation()
	columns := dashboard.StatColumns(class, orientation)
	rows, err := grid.Layout(records, columns)
	if err != nil {
		return statsLayout{}, err
	}
	return statsLayout{Class: class, Orientation: orientation, Columns: columns, Rows: rows}, nil
}

func renderStats(w io.Writer, layout statsLayout, format string) error {
	switch strings.ToLower(format) {
	case "json":
		return renderStatsJSON(w, layout)
	case "", "table", "csv", "md", "markdown":
	default:
		return errors.InvalidArgument(
			fmt.Sprintf("Unknown format %q", format),
			"Use table, markdown, csv or json")
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(fmt.Sprintf("%s %s, %d %s",
		layout.Class, layout.Orientation, layout.Columns, util.Pluralize(layout.Columns, "column", "columns")))

	header := table.Row{"Row"}
	for c := 1; c <= layout.Columns; c++ {
		header = append(header, fmt.Sprintf("Column %d", c))
	}
	t.AppendHeader(header)

	for r, row := range layout.Rows {
		out := table.Row{r + 1}
		for _, slot := range row {
			rec, ok := slot.Value()
			if !ok {
				out = append(out, "")
				continue
			}
			out = append(out, cellText(rec))
		}
		t.AppendRow(out)
	}

	n := len(grid.Items(layout.Rows))
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d %s", n, util.Pluralize(n, "statistic", "statistics"))})

	switch strings.ToLower(format) {
	case "csv":
		t.RenderCSV()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		t.Render()
	}
	return nil
}

// cellText is "Title: Value" plus the trend badge when there is one.
func cellText(rec stats.Record) string {
	text := rec.DisplayTitle() + ": " + rec.Value
	if rec.TrendValue != "" {
		arrow := ui.SymbolTrendUp
		if rec.Trend == stats.TrendDown {
			arrow = ui.SymbolTrendDown
		}
		text += " " + arrow + " " + rec.TrendValue
	}
	return text
}

type jsonLayout struct {
	Device      string           `json:"device"`
	Orientation string           `json:"orientation"`
	Columns     int              `json:"columns"`
	Rows        [][]*stats.Record `json:"rows"`
}

// renderStatsJSON writes placeholders as null.
func renderStatsJSON(w io.Writer, layout statsLayout) error {
	out := jsonLayout{
		Device:      layout.Class.String(),
		Orientation: layout.Orientation.String(),
		Columns:     layout.Columns,
		Rows:        make([][]*stats.Record, 0, len(layout.Rows)),
	}
	for _, row := range layout.Rows {
		cells := make([]*stats.Record, len(row))
		for i, slot := range row {
			if rec, ok := slot.Value(); ok {
				cells[i] = &rec
			}
		}
		out.Rows = append(out.Rows, cells)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
