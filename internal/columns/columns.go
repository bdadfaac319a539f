// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package columns

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/tblsort/internal/comparator"
	"github.com/tfctl/tblsort/internal/log"
)

var lengthSpec = regexp.MustCompile(`-?\d+`)

// Column is one output column.
type Column struct {
	// The key of the cell in each row.
	Key string `yaml:"key" json:"Key"`
	// Title is the header used with --titles.
	Title string `yaml:"title" json:"Title"`
	// Hidden columns can still be sorted and filtered on.
	Include bool `yaml:"include" json:"Include"`
	// Transformation spec applied to displayed values only.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

// Transform applies the column's transform spec to a displayed value. Sorting
// always sees the raw cell.
func (c *Column) Transform(value string) string {
	if c.TransformSpec == "" {
		return value
	}
	result := value

	// Relative time, e.g. "3 days ago". Cells that are not dates are left
	// alone.
	if strings.Contains(c.TransformSpec, "T") {
		if t, ok := comparator.ParseDate(result); ok {
			result = humanize.Time(t)
			log.Tracef("time ago: result=%s", result)
		}
	}

	// Role constants read better by their display name.
	if strings.Contains(c.TransformSpec, "R") {
		if r := comparator.ParseRole(result); r != comparator.RoleUnknown {
			result = r.DisplayName()
		}
	}

	// The later of the case letters wins.
	lastL := strings.LastIndex(c.TransformSpec, "l")
	lastU := strings.LastIndex(c.TransformSpec, "u")
	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// A length truncates; a negative one elides the middle.
	if match := lengthSpec.FindAllString(c.TransformSpec, -1); len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		abs := int(math.Abs(float64(l)))
		runes := []rune(result)
		if abs > 0 && len(runes) > abs {
			if l < 0 {
				half := abs/2 - 1
				if half < 1 {
					half = 1
				}
				result = string(runes[:half]) + ".." + string(runes[len(runes)-half:])
			} else {
				result = string(runes[:abs])
			}
			log.Tracef("length transform: result=%s", result)
		}
	}

	return result
}

// List is the ordered set of output columns.
type List []Column

// Parse builds a List from a --columns spec against the columns a table
// actually has. An empty spec or "*" selects every available column. Each
// entry is key[:title[:transform]]; a leading ! hides the column and a "*"
// entry adds every column not named so far.
func Parse(spec string, available []string) (List, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" || spec == "*" {
		return All(available), nil
	}

	const (
		keyIdx = iota
		titleIdx
		transformIdx
	)

	var list List
	named := map[string]bool{}
	wildcard := -1
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if entry == "*" {
			wildcard = len(list)
			continue
		}

		fields := strings.Split(entry, ":")
		col := Column{Include: true, Key: strings.TrimSpace(fields[keyIdx])}
		if strings.HasPrefix(col.Key, "!") {
			col.Include = false
			col.Key = col.Key[1:]
		}
		if !contains(available, col.Key) {
			return nil, fmt.Errorf("column %q not in table (have %s)", col.Key, strings.Join(available, ", "))
		}

		col.Title = col.Key
		if len(fields) > titleIdx && strings.TrimSpace(fields[titleIdx]) != "" {
			col.Title = strings.TrimSpace(fields[titleIdx])
		}
		if len(fields) > transformIdx {
			col.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		if named[col.Key] {
			for i := range list {
				if list[i].Key == col.Key {
					list[i] = col
				}
			}
			continue
		}
		named[col.Key] = true
		list = append(list, col)
		log.Tracef("column parsed: %+v", col)
	}

	if wildcard >= 0 {
		var rest List
		for _, key := range available {
			if !named[key] {
				rest = append(rest, Column{Key: key, Title: key, Include: true})
			}
		}
		list = append(list[:wildcard], append(rest, list[wildcard:]...)...)
	}

	return list, nil
}

// All returns a visible column for each key.
func All(keys []string) List {
	list := make(List, 0, len(keys))
	for _, k := range keys {
		list = append(list, Column{Key: k, Title: k, Include: true})
	}
	return list
}

// Visible returns the included columns in order.
func (l List) Visible() List {
	var out List
	for _, c := range l {
		if c.Include {
			out = append(out, c)
		}
	}
	return out
}

// Titles returns the titles of the included columns.
func (l List) Titles() []string {
	var titles []string
	for _, c := range l.Visible() {
		titles = append(titles, c.Title)
	}
	return titles
}

// String renders the list back in --columns syntax.
func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, c := range l {
		key := c.Key
		if !c.Include {
			key = "!" + key
		}
		parts = append(parts, fmt.Sprintf("%s:%s:%s", key, c.Title, c.TransformSpec))
	}
	return strings.Join(parts, ",")
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
