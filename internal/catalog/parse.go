package catalog

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// DropRule is one line of the drop table: "type, item, min, max"
type DropRule struct {
	EnemyType string
	Item      string
	Min       int
	Max       int
}

// PriceRange is one line of a shop table: "name, min, max"
type PriceRange struct {
	Name string
	Min  int
	Max  int
}

// ParseDropTable reads drop rules. Lines that do not have exactly four
// fields, or whose counts are not integers with min <= max, are skipped.
func ParseDropTable(r io.Reader, source string) []DropRule {
	var rules []DropRule

	eachRecord(r, source, func(line int, fields []string) {
		if len(fields) != 4 {
			slog.Warn("skipping drop table line",
				"source", source,
				"line", line,
				"reason", "expected 4 fields",
				"fields", len(fields))
			return
		}

		lo, hi, ok := parseBounds(fields[2], fields[3])
		if !ok || fields[0] == "" || fields[1] == "" {
			slog.Warn("skipping drop table line",
				"source", source,
				"line", line,
				"reason", "invalid values")
			return
		}

		rules = append(rules, DropRule{
			EnemyType: fields[0],
			Item:      fields[1],
			Min:       lo,
			Max:       hi,
		})
	})

	return rules
}

// ParsePriceTable reads shop prices. Negative prices and lines without
// exactly three fields are skipped.
func ParsePriceTable(r io.Reader, source string) []PriceRange {
	var prices []PriceRange

	eachRecord(r, source, func(line int, fields []string) {
		if len(fields) != 3 {
			slog.Warn("skipping price table line",
				"source", source,
				"line", line,
				"reason", "expected 3 fields",
				"fields", len(fields))
			return
		}

		lo, hi, ok := parseBounds(fields[1], fields[2])
		if !ok || lo < 0 || fields[0] == "" {
			slog.Warn("skipping price table line",
				"source", source,
				"line", line,
				"reason", "invalid values")
			return
		}

		prices = append(prices, PriceRange{Name: fields[0], Min: lo, Max: hi})
	})

	return prices
}

func parseBounds(minField, maxField string) (int, int, bool) {
	lo, err := strconv.Atoi(minField)
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(maxField)
	if err != nil {
		return 0, 0, false
	}
	if lo > hi {
		return 0, 0, false
	}
	return lo, hi, true
}

// eachRecord feeds every non-empty comma separated line to fn with its
// fields trimmed. A record the reader cannot parse is logged and skipped.
func eachRecord(r io.Reader, source string, fn func(line int, fields []string)) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return
		}

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				slog.Warn("skipping unreadable line",
					"source", source,
					"line", parseErr.Line,
					"error", err)
				continue
			}
			slog.Warn("stopped reading table", "source", source, "error", err)
			return
		}

		line, _ := reader.FieldPos(0)
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
		fn(line, record)
	}
}
