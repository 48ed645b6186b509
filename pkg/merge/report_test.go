package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/cookbook/pkg/header"
)

func TestNewReport(t *testing.T) {
	contents := []Content{{Name: "2.txt", Length: 1}, {Name: "1.txt", Length: 3}}

	r := NewReport("result.txt", contents, "v1.0.0")

	assert.Equal(t, header.KindMergeReport, r.Kind)
	assert.Equal(t, "result.txt", r.Output)
	assert.Equal(t, contents, r.Files)
	assert.NotEmpty(t, r.Metadata[header.MetadataID])
}

func TestReport_Table(t *testing.T) {
	r := NewReport("result.txt", []Content{{Name: "2.txt", Length: 1}, {Name: "1.txt", Length: 3}}, "")

	tbl := r.Table()
	assert.Equal(t, []string{"FILE", "LINES"}, tbl.Columns)
	assert.Equal(t, [][]string{{"2.txt", "1"}, {"1.txt", "3"}}, tbl.Rows)
}
