/*
Copyright © 2023-2026 The lpseries authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package lpseries

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lpseries/lpseries/series"
)

// lpUnfriendly matches character runs that clash with the LP file
// format when embedded in variable or constraint names.
var lpUnfriendly = regexp.MustCompile(`[\+\-\*\^\:\s]+`)

// Formatter controls how index labels are rendered into variable and
// constraint names. The zero Formatter applies the default rendering
// to every level of the label: integers and floats pass through,
// timestamps become compact sortable strings, everything else is
// string-formatted with LP-unfriendly character runs collapsed to '_'.
// Formatting is purely cosmetic and never alters alignment semantics.
type Formatter struct {
	disabled bool
	byLevel  map[string]func(any) string
	all      func(any) string
}

// Verbatim disables label mapping: levels are rendered with plain %v.
func Verbatim() Formatter {
	return Formatter{disabled: true}
}

// FormatWith applies f to every level of every label.
func FormatWith(f func(any) string) Formatter {
	return Formatter{all: f}
}

// FormatLevels applies the given functions to the index levels they
// name, falling back to the default rendering for unnamed levels.
func FormatLevels(byLevel map[string]func(any) string) Formatter {
	return Formatter{byLevel: byLevel}
}

func defaultLevelFormat(v any) string {
	switch x := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%v", x)
	case float32, float64:
		return fmt.Sprintf("%v", x)
	case time.Time:
		return x.Format("2006_01_02T15_04_05")
	default:
		return lpUnfriendly.ReplaceAllString(fmt.Sprintf("%v", x), "_")
	}
}

func (f Formatter) level(i int, levelNames []string) func(any) string {
	if f.disabled {
		return func(v any) string { return fmt.Sprintf("%v", v) }
	}
	if f.byLevel != nil && i < len(levelNames) {
		if fn, ok := f.byLevel[levelNames[i]]; ok && fn != nil {
			return fn
		}
	}
	if f.all != nil {
		return f.all
	}
	return defaultLevelFormat
}

// FormatName renders "base[level1,level2,...]" for the given label, or
// "" when base is empty (the model then assigns a default name). The
// result is a pure function of base and label: equal inputs always
// produce equal names.
func (f Formatter) FormatName(base string, label any, levelNames []string) string {
	if base == "" {
		return ""
	}
	var levels []any
	if lv, ok := label.(series.Leveled); ok {
		levels = lv.Levels()
	} else {
		levels = []any{label}
	}
	parts := make([]string, len(levels))
	for i, v := range levels {
		parts[i] = f.level(i, levelNames)(v)
	}
	return fmt.Sprintf("%s[%s]", base, strings.Join(parts, ","))
}

// buildNames renders one name per label of the index, in index order.
func buildNames[K comparable](base string, ix *series.Index[K], f Formatter) []string {
	names := make([]string, ix.Len())
	if base == "" {
		return names
	}
	levelNames := ix.Names()
	for i := range names {
		names[i] = f.FormatName(base, ix.At(i), levelNames)
	}
	return names
}
