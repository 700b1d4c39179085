package models

import "github.com/shopspring/decimal"

// Record is one data row after column extraction. RawValue holds the field
// exactly as it appeared in the input; Value is populated by coercion and is
// zero until then.
type Record struct {
	Category string
	RawValue string
	Value    decimal.Decimal
}

// Dataset is the full contents of one input file: the header columns plus
// every data row, in file order. It is read-only after loading.
type Dataset struct {
	Path    string
	Columns []string
	Rows    [][]string
}

// RowCount returns the number of data rows (header excluded).
func (d *Dataset) RowCount() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column in the header, or -1
// if the column is absent. Matching is case- and name-exact.
func (d *Dataset) ColumnIndex(name string) int {
	if d == nil {
		return -1
	}
	for i, col := range d.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists in the header.
func (d *Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}
