package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableRender(t *testing.T) {
	tbl := newTable("SHAPES", "IMAGES")
	tbl.addRow("0", "12")
	tbl.addRow("3")
	tbl.addRow("1", "7", "extra")

	want := "SHAPES  IMAGES\n" +
		"------  ------\n" +
		"0       12\n" +
		"3\n" +
		"1       7\n"
	assert.Equal(t, want, tbl.render())
}

func TestTableWrapsLimitedColumn(t *testing.T) {
	tbl := newTable("PATH", "ERROR")
	tbl.setMaxWidth(1, 10)
	tbl.addRow("a.png", "image is 10x10, want 255x255")

	want := "PATH   ERROR\n" +
		"-----  --------\n" +
		"a.png  image is\n" +
		"       10x10,\n" +
		"       want\n" +
		"       255x255\n"
	assert.Equal(t, want, tbl.render())
}

func TestTableEmpty(t *testing.T) {
	assert.Empty(t, newTable().render())
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"no limit", "a b c", 0, []string{"a b c"}},
		{"fits", "short", 10, []string{"short"}},
		{"words", "one two three", 7, []string{"one two", "three"}},
		{"long word", "abcdefghij k", 4, []string{"abcd", "efgh", "ij k"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
