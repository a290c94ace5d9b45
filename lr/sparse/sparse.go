/*
Package sparse implements a simple type for sparse integer matrices.
It is used for the shift table of an LR automaton (state × symbol → state),
which is very sparse for keyword grammars.

This implementation uses the COO algorithm (a.k.a. triplet-encoding).

   https://medium.com/@jmaxg3/101-ways-to-store-a-sparse-matrix-c7f2bf15a229
   https://www.coin-or.org/Ipopt/documentation/node38.html


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
	"strings"
)

// IntMatrix is a sparse matrix of int32 values with a fixed null-value
// for empty entries:
//
//     M := NewIntMatrix(80, 25, DefaultNullValue)
//     M.Set(2, 3, 17)
//     M.Value(2, 3)    // 17
//     M.Value(3, 2)    // DefaultNullValue
//
// Values cannot be deleted, but may be overwritten with the null-value.
// Lookup is a binary search over the triplets, kept in row-major order.
type IntMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		values:  []triplet{},
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return m.rowcnt
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of values in the matrix.
func (m *IntMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the value at position (i,j), or the null-value.
func (m *IntMatrix) Value(i, j int) int32 {
	if k, found := m.find(i, j); found {
		return m.values[k].value
	}
	return m.nullval
}

// Set a value in the matrix at position (i,j). Setting a value outside of
// the matrix' dimensions panics.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix.Set() with index out of range: (%d,%d)", i, j))
	}
	k, found := m.find(i, j)
	if found {
		m.values[k].value = value
		return m
	}
	m.values = append(m.values, triplet{})
	copy(m.values[k+1:], m.values[k:])
	m.values[k] = triplet{row: i, col: j, value: value}
	return m
}

// find returns the index of (i,j) or the index to insert it at.
func (m *IntMatrix) find(i, j int) (int, bool) {
	k := sort.Search(len(m.values), func(n int) bool {
		return !m.values[n].leftOf(i, j)
	})
	return k, k < len(m.values) && m.values[k].row == i && m.values[k].col == j
}

// Each calls f for every non-null value, in row-major order.
func (m *IntMatrix) Each(f func(i, j int, value int32)) {
	for _, t := range m.values {
		if t.value != m.nullval {
			f(t.row, t.col, t.value)
		}
	}
}

func (m *IntMatrix) String() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("IntMatrix(%d×%d)[", m.rowcnt, m.colcnt))
	m.Each(func(i, j int, v int32) {
		b.WriteString(fmt.Sprintf(" (%d,%d)=%d", i, j, v))
	})
	b.WriteString(" ]")
	return b.String()
}

func (t triplet) leftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}
