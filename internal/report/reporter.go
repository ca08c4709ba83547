// Package report renders fragile functions for humans and tools.
package report

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/sirkon/fragile/internal/cluster"
	"github.com/sirkon/fragile/internal/fragile"
)

// Row describes a single fragile function.
type Row struct {
	Name    string   `json:"name"`
	Params  []string `json:"params"`
	Blocks  int      `json:"blocks"`
	File    string   `json:"file"`
	Cluster string   `json:"cluster,omitempty"`
}

// Signature renders "name(type, type)".
func (r Row) Signature() string {
	return r.Name + "(" + strings.Join(r.Params, ", ") + ")"
}

// RowOf builds a row for fn.
func RowOf(fn fragile.Function) Row {
	return Row{
		Name:   fn.Name(),
		Params: slices.Clone(fn.Params()),
		Blocks: fn.NumBlocks(),
		File:   fn.SourceFile(),
	}
}

// Reporter collects fragile functions and renders them sorted by name and
// source file. The zero value is ready to use.
type Reporter struct {
	mu    sync.Mutex
	rows  []Row
	color bool
}

// SetColor enables or disables header styling.
func (r *Reporter) SetColor(enabled bool) {
	r.mu.Lock()
	r.color = enabled
	r.mu.Unlock()
}

// Add adds a new row to the reporter.
func (r *Reporter) Add(row Row) {
	r.mu.Lock()
	r.rows = append(r.rows, row)
	r.mu.Unlock()
}

// AddSet adds every member of set. Clusters are used to name the cluster
// that matched a function, they can be nil.
func (r *Reporter) AddSet(set *fragile.Set, clusters []cluster.Cluster) {
	for fn, idx := range set.All() {
		row := RowOf(fn)
		if idx >= 0 && idx < len(clusters) {
			row.Cluster = clusters[idx].String()
		}
		r.Add(row)
	}
}

// Rows returns a sorted snapshot of all collected rows.
func (r *Reporter) Rows() []Row {
	r.mu.Lock()
	out := slices.Clone(r.rows)
	r.mu.Unlock()

	slices.SortStableFunc(out, func(a, b Row) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.File, b.File))
	})
	return out
}

const tableRule = "-----------------------------------------------------------------\n"

// WriteTable renders rows as a tab separated table.
func (r *Reporter) WriteTable(w io.Writer) error {
	r.mu.Lock()
	colored := r.color
	r.mu.Unlock()

	heading := color.New(color.Bold)
	if colored {
		heading.EnableColor()
	} else {
		heading.DisableColor()
	}

	var b strings.Builder
	heading.Fprint(&b, "Fragile Functions:")
	b.WriteString("\n")
	b.WriteString(tableRule)
	heading.Fprint(&b, "Function Name\t\t| Function Signature\t| Size\t| Source File")
	b.WriteString("\n")
	b.WriteString(tableRule)

	for _, row := range r.Rows() {
		b.WriteString(row.Name)
		b.WriteString("\t| ")
		b.WriteString(row.Signature())
		b.WriteString("\t| ")
		b.WriteString(strconv.Itoa(row.Blocks))
		b.WriteString("\t| ")
		b.WriteString(row.File)
		b.WriteByte('\n')
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	return nil
}

// WriteJSON renders rows as an indented JSON array.
func (r *Reporter) WriteJSON(w io.Writer) error {
	rows := r.Rows()
	if rows == nil {
		rows = []Row{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("encode rows: %w", err)
	}

	return nil
}

// Write renders rows in the given format.
func (r *Reporter) Write(w io.Writer, f Format) error {
	switch f {
	case FormatTable:
		return r.WriteTable(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return fmt.Errorf("unsupported report format %s", f)
	}
}
