// Package ioview renders results of wuff commands either as styled
// console tables or as JSON.
package ioview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gnfmt"
	"github.com/gnames/wuff/pkg/fabricate"
	"github.com/gnames/wuff/pkg/lookup"
	"github.com/gnames/wuff/pkg/stats"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	valueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	rankStyle  = cellStyle.Foreground(lipgloss.Color("4")).Faint(true)
	countStyle = cellStyle.Foreground(lipgloss.Color("2")).Align(lipgloss.Right)
)

// View writes command results to an output.
type View struct {
	w    io.Writer
	json bool
}

// New creates a View. Format is either "table" or "json".
func New(w io.Writer, format string) *View {
	return &View{w: w, json: format == "json"}
}

// Find renders the result of a lookup by name.
func (v *View) Find(res lookup.Result) error {
	if v.json {
		return v.encode(res)
	}

	switch res.Status {
	case lookup.NoName:
		return v.println(rule(errorStyle, fmt.Sprintf("No result for name %s.", res.Name)))
	case lookup.NoYear:
		return v.println(rule(errorStyle, fmt.Sprintf("No result for year %d.", res.Year)))
	}

	rows := make([][]string, 0, len(res.Dogs))
	for _, d := range res.Dogs {
		rows = append(rows, []string{d.Name, strconv.Itoa(d.BirthYear), d.Sex.String()})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers("Name", "Birth Year", "Sex").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			return cellStyle
		})

	title := titleStyle.Render(fmt.Sprintf("Results for %s in %d", res.Name, res.Year))
	return v.println(lipgloss.JoinVertical(lipgloss.Center, title, t.String()))
}

// Stats renders a statistics summary.
func (v *View) Stats(s stats.Stats) error {
	if v.json {
		return v.encode(s)
	}

	if !s.HasData() {
		return v.println(errorStyle.Render(
			fmt.Sprintf("No data available for year: %d", s.Year),
		))
	}

	var sb strings.Builder
	if s.Year > 0 {
		sb.WriteString(rule(titleStyle, fmt.Sprintf("Showing stats for year: %d", s.Year)))
	} else {
		sb.WriteString(rule(titleStyle,
			fmt.Sprintf("Showing stats for years: %d to %d", s.FirstYear, s.LastYear)))
	}
	sb.WriteString("\n\n")

	facts := []struct {
		title string
		value string
	}{
		{"The longest dog name is:", s.NameLongest},
		{"The shortest dog name is:", s.NameShortest},
		{"Total number of female dogs:", humanize.Comma(int64(s.DogCountFemale))},
		{"Total number of male dogs:", humanize.Comma(int64(s.DogCountMale))},
		{"Total number of dogs:", humanize.Comma(int64(s.DogCountOverall))},
	}
	for _, f := range facts {
		sb.WriteString(titleStyle.Render(f.title))
		sb.WriteString("\n")
		sb.WriteString(valueStyle.Render(f.value))
		sb.WriteString("\n\n")
	}

	tables := lipgloss.JoinHorizontal(lipgloss.Top,
		nameTable("Top Ten Most Common Names Overall", s.TopNamesOverall),
		nameTable("Top Ten Most Common Female Names", s.TopNamesFemale),
		nameTable("Top Ten Most Common Male Names", s.TopNamesMale),
	)
	sb.WriteString(tables)
	return v.println(sb.String())
}

// Created renders a made up dog.
func (v *View) Created(d fabricate.Dog) error {
	if v.json {
		return v.encode(d)
	}
	return v.println(fmt.Sprintf("%s [%s]", valueStyle.Render(d.Label), d.Path))
}

func nameTable(title string, names []stats.NameCount) string {
	rows := make([][]string, 0, len(names))
	for i, v := range names {
		rows = append(rows, []string{
			strconv.Itoa(i + 1), v.Name, humanize.Comma(int64(v.Count)),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers("Rank", "Name", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headStyle
			case col == 0:
				return rankStyle
			case col == 2:
				return countStyle
			default:
				return cellStyle
			}
		})
	head := titleStyle.Render(title)
	return lipgloss.NewStyle().MarginRight(2).Render(
		lipgloss.JoinVertical(lipgloss.Center, head, t.String()),
	)
}

func rule(style lipgloss.Style, text string) string {
	return style.Render("── " + text + " ──")
}

func (v *View) encode(obj any) error {
	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(obj)
	if err != nil {
		return err
	}
	return v.println(string(bs))
}

func (v *View) println(s string) error {
	_, err := fmt.Fprintln(v.w, s)
	return err
}
