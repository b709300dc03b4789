package excel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildSheet(t *testing.T, rows [][]string) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}
	return f
}

func TestParseEvents(t *testing.T) {
	f := buildSheet(t, [][]string{
		{"날짜", "행사명"}, // header fails the date check
		{"2026-05-01", "운동회"},
		{"5월 20일", "현장학습"},
		{"2026-06-06", "   "}, // no title
		{"메모", "기타"},          // not a date
	})

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	events, err := ParseEvents(buf, 2026)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "2026-05-01", events[0].Date)
	assert.Equal(t, "운동회", events[0].Title)
	assert.Equal(t, "2026-05-20", events[1].Date)
	assert.Equal(t, "현장학습", events[1].Title)
}

func TestParseEventsRejectsGarbage(t *testing.T) {
	_, err := ParseEvents(strings.NewReader("definitely not a spreadsheet"), 2026)
	assert.Error(t, err)
}
