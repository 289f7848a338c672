package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical episode 700 MiB", 734003200, "700.0 MiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestTable(t *testing.T) {
	out := Table(
		[]string{"#", "Subtitle", "Video"},
		[][]string{{"1", "a.srt", "a.mkv"}, {"2", "b.srt"}},
		AlignRight,
	)

	assert.Contains(t, strings.ToUpper(out), "SUBTITLE")
	assert.Contains(t, out, "a.srt")
	assert.Contains(t, out, "a.mkv")
	assert.Contains(t, out, "b.srt")
	assert.Equal(t, 6, strings.Count(out, "\n")+1, "top, header, separator, two rows, bottom")
}

func TestTable_NoHeaders(t *testing.T) {
	assert.Empty(t, Table(nil, [][]string{{"x"}}))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf)
	assert.Contains(t, buf.String(), "|___/")
}
