package excel

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/eduboost/eduboost-back/internal/dates"
	"github.com/eduboost/eduboost-back/internal/models"
)

// ParseEvents reads an uploaded .xlsx school calendar and returns its events.
// Every sheet is scanned; a row counts when its first cell normalizes to a
// date and its second cell carries a title. Header and decoration rows fail
// the date check and are skipped.
func ParseEvents(r io.Reader, defaultYear int) ([]models.SchoolEvent, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	var events []models.SchoolEvent

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheetName, err)
		}

		count := 0
		for _, row := range rows {
			if ev, ok := parseRow(row, defaultYear); ok {
				events = append(events, ev)
				count++
			}
		}
		log.Printf("📖 Sheet %s: %d events", sheetName, count)
	}

	log.Printf("✅ Parsed %d events from xlsx", len(events))
	return events, nil
}

func parseRow(row []string, defaultYear int) (models.SchoolEvent, bool) {
	if len(row) < 2 {
		return models.SchoolEvent{}, false
	}
	date, ok := dates.Normalize(row[0], defaultYear)
	if !ok {
		return models.SchoolEvent{}, false
	}
	title := strings.TrimSpace(row[1])
	if title == "" {
		return models.SchoolEvent{}, false
	}
	return models.SchoolEvent{Date: date, Title: title}, true
}
