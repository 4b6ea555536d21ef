// SPDX-License-Identifier: Apache-2.0
// Copyright © 2022 Hestia Earth

package merge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"github.com/hestia-earth/rowmerge/pkg/slice"
	"github.com/hestia-earth/rowmerge/pkg/table"
	"github.com/pckhoi/meow"
)

type group struct {
	key  []string
	rows [][]string
	seen map[[16]byte]struct{}
	// last non-empty value per column, in input row order. Tracked across
	// collapsed duplicates so that PolicyLast follows the rows as given.
	last []string
}

// Merger accumulates rows, partitions them by key and resolves each group
// into a single row. Groups come out in first-seen key order.
type Merger struct {
	columns  []string
	keyInds  []int
	keySet   map[int]struct{}
	ignored  map[int]struct{}
	policy   Policy
	joinSep  string
	groups   []*group
	lookup   map[[16]byte]*group
	rowsRead int
}

type MergerOption func(m *Merger) error

func WithPolicy(p Policy) MergerOption {
	return func(m *Merger) error {
		m.policy = p
		return nil
	}
}

func WithJoinSeparator(sep string) MergerOption {
	return func(m *Merger) error {
		m.joinSep = sep
		return nil
	}
}

// WithIgnoredColumns marks columns matching any of the glob patterns as
// uncontested: their conflicts always resolve to the first non-empty value.
func WithIgnoredColumns(patterns ...string) MergerOption {
	return func(m *Merger) error {
		for _, pat := range patterns {
			g, err := glob.Compile(pat)
			if err != nil {
				return fmt.Errorf("invalid column pattern %q: %v", pat, err)
			}
			for i, c := range m.columns {
				if g.Match(c) {
					m.ignored[i] = struct{}{}
				}
			}
		}
		return nil
	}
}

func NewMerger(columns, keys []string, opts ...MergerOption) (*Merger, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("no key column given")
	}
	if s := slice.DuplicatedString(keys); s != "" {
		return nil, fmt.Errorf("duplicated key column %q", s)
	}
	keyInds, err := slice.ColumnIndices(columns, keys)
	if err != nil {
		return nil, err
	}
	m := &Merger{
		columns: append([]string{}, columns...),
		keyInds: keyInds,
		keySet:  map[int]struct{}{},
		ignored: map[int]struct{}{},
		policy:  PolicyStrict,
		joinSep: ";",
		lookup:  map[[16]byte]*group{},
	}
	for _, i := range keyInds {
		m.keySet[i] = struct{}{}
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// rowDigest produces a fixed-size fingerprint of vals. Values are length
// prefixed so that ("ab","c") and ("a","bc") hash differently.
func rowDigest(vals []string) [16]byte {
	buf := bytes.NewBuffer(nil)
	b := make([]byte, 4)
	for _, v := range vals {
		binary.BigEndian.PutUint32(b, uint32(len(v)))
		buf.Write(b)
		buf.WriteString(v)
	}
	return meow.Checksum(0, buf.Bytes())
}

// AddRow assigns row to its group. Rows identical to one already in the
// group are collapsed, so exact duplicates never produce conflicts.
func (m *Merger) AddRow(row []string) error {
	if len(row) != len(m.columns) {
		return &table.FormatError{Want: len(m.columns), Got: len(row)}
	}
	m.rowsRead++
	key := slice.IndicesToValues(row, m.keyInds)
	keySum := rowDigest(key)
	g, ok := m.lookup[keySum]
	if !ok {
		g = &group{
			key:  key,
			seen: map[[16]byte]struct{}{},
			last: make([]string, len(m.columns)),
		}
		m.lookup[keySum] = g
		m.groups = append(m.groups, g)
	}
	for i, v := range row {
		if v != "" {
			g.last[i] = v
		}
	}
	rowSum := rowDigest(row)
	if _, ok := g.seen[rowSum]; ok {
		return nil
	}
	g.seen[rowSum] = struct{}{}
	g.rows = append(g.rows, append([]string{}, row...))
	return nil
}

func (m *Merger) Columns() []string {
	return m.columns
}

func (m *Merger) KeyIndices() []int {
	return m.keyInds
}

// RowsCount returns the number of rows added so far.
func (m *Merger) RowsCount() int {
	return m.rowsRead
}

// GroupsCount returns the number of distinct keys seen so far.
func (m *Merger) GroupsCount() int {
	return len(m.groups)
}

func (m *Merger) resolveGroup(g *group) ([]string, error) {
	out := make([]string, len(m.columns))
	for i, ki := range m.keyInds {
		out[ki] = g.key[i]
	}
	for i := range m.columns {
		if _, ok := m.keySet[i]; ok {
			continue
		}
		var values []string
		for _, row := range g.rows {
			v := row[i]
			if v == "" || slice.StringSliceContains(values, v) {
				continue
			}
			values = append(values, v)
		}
		switch {
		case len(values) == 0:
			out[i] = ""
		case len(values) == 1:
			out[i] = values[0]
		default:
			if _, ok := m.ignored[i]; ok {
				out[i] = values[0]
				continue
			}
			switch m.policy {
			case PolicyFirst:
				out[i] = values[0]
			case PolicyLast:
				out[i] = g.last[i]
			case PolicyJoin:
				out[i] = strings.Join(values, m.joinSep)
			default:
				return nil, &ConflictError{Key: g.key, Column: m.columns[i], Values: values}
			}
		}
	}
	return out, nil
}

// Merge resolves every group and returns one row per distinct key, in
// first-seen key order.
func (m *Merger) Merge() (*table.Table, error) {
	t := &table.Table{Columns: append([]string{}, m.columns...)}
	for _, g := range m.groups {
		row, err := m.resolveGroup(g)
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// MergeTable merges t in one call.
func MergeTable(t *table.Table, keys []string, opts ...MergerOption) (*table.Table, error) {
	m, err := NewMerger(t.Columns, keys, opts...)
	if err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := m.AddRow(row); err != nil {
			return nil, err
		}
	}
	return m.Merge()
}
