package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type embeddedColumns struct {
	Value string `db:"value"`
}

type sampleColumns struct {
	Id   string `db:"id"`
	Name string `db:"name"`
	embeddedColumns
	ignored string
}

func TestColumnList(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "value"}, ColumnList[sampleColumns]())
}
