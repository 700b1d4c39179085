package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type DatasetTestSuite struct {
	suite.Suite
}

func TestDatasetTestSuite(t *testing.T) {
	suite.Run(t, new(DatasetTestSuite))
}

func (s *DatasetTestSuite) TestColumnIndex() {
	ds := &Dataset{Columns: []string{"Date", "Category", "Value"}}

	s.Equal(1, ds.ColumnIndex("Category"))
	s.Equal(2, ds.ColumnIndex("Value"))
	s.Equal(-1, ds.ColumnIndex("category"), "lookup is case-exact")
	s.Equal(-1, ds.ColumnIndex("Amount"))
}

func (s *DatasetTestSuite) TestHasColumn() {
	ds := &Dataset{Columns: []string{"Category", "Value"}}

	s.True(ds.HasColumn("Category"))
	s.False(ds.HasColumn("Category "))
}

func (s *DatasetTestSuite) TestNilSafety() {
	var ds *Dataset

	s.Equal(0, ds.RowCount())
	s.Equal(-1, ds.ColumnIndex("Category"))
	s.False(ds.HasColumn("Category"))
}
