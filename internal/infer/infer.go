// Package infer assigns each column a semantic type from its raw string
// values. Precedence is integer > float > boolean > datetime >
// categorical_text: the most specific type that fits every non-missing value
// wins, and a single non-conforming value demotes the whole column.
package infer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"csvprof/domain/table"
)

// booleanLiterals is the fixed, case-insensitive boolean vocabulary. Note that
// an all-"1"/"0" column tags integer, not boolean, because of precedence.
var booleanLiterals = map[string]bool{
	"true":  true,
	"false": false,
	"yes":   true,
	"no":    false,
	"1":     true,
	"0":     false,
}

// datetimeLayouts are the accepted date/time patterns, tried in order.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
	"2006/01/02",
	"02-Jan-2006",
}

// Types infers a type tag for every column of the table. Columns with zero
// non-missing values are tagged empty.
func Types(t *table.ParsedTable) map[string]table.TypeTag {
	types := make(map[string]table.TypeTag, len(t.Columns))
	for i, name := range t.Columns {
		types[name] = inferColumn(t, i)
	}
	return types
}

func inferColumn(t *table.ParsedTable, col int) table.TypeTag {
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row[col].Missing {
			continue
		}
		values = append(values, row[col].Trimmed())
	}
	if len(values) == 0 {
		return table.TypeEmpty
	}

	if all(values, IsInteger) {
		return table.TypeInteger
	}
	if all(values, IsFloat) {
		return table.TypeFloat
	}
	if all(values, IsBoolean) {
		return table.TypeBoolean
	}
	if all(values, IsDatetime) {
		return table.TypeDatetime
	}
	return table.TypeCategorical
}

func all(values []string, fits func(string) bool) bool {
	for _, v := range values {
		if !fits(v) {
			return false
		}
	}
	return true
}

// IsInteger reports whether v is a base-10 integer literal with an optional sign
func IsInteger(v string) bool {
	_, err := strconv.ParseInt(v, 10, 64)
	return err == nil
}

// IsFloat reports whether v is a finite floating-point literal. The Inf and
// NaN spellings accepted by strconv are rejected.
func IsFloat(v string) bool {
	f, err := strconv.ParseFloat(v, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}

// IsBoolean reports whether v is one of the fixed boolean literals
func IsBoolean(v string) bool {
	_, ok := booleanLiterals[strings.ToLower(v)]
	return ok
}

// BooleanValue parses a boolean literal, second result false when v is not one
func BooleanValue(v string) (bool, bool) {
	b, ok := booleanLiterals[strings.ToLower(v)]
	return b, ok
}

// IsDatetime reports whether v parses under one of the fixed layouts
func IsDatetime(v string) bool {
	for _, layout := range datetimeLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
