package models

import (
	"strconv"
	"strings"
)

// Absent is the sentinel the source data uses for missing city/region values.
const Absent = "N/A"

// Company is one manufacturer entry in a snapshot. Records are never mutated
// after parsing; every derived view is a fresh projection.
type Company struct {
	SeqNo          int
	Equipment      string
	Name           string
	City           string
	Region         string
	Phone          string
	Email          string
	AdoptionStatus string
	Notes          string
}

// Column keys in record-declaration order. Search, sort and export all
// address fields through these keys.
var columnKeys = []string{
	"seqNo", "equipment", "name", "city", "region",
	"phone", "email", "status", "notes",
}

// FieldKeys returns the column keys in declaration order.
func FieldKeys() []string {
	keys := make([]string, len(columnKeys))
	copy(keys, columnKeys)
	return keys
}

// Field returns the string form of the field named by key, or "" for an
// unknown key.
func (c *Company) Field(key string) string {
	switch key {
	case "seqNo":
		return strconv.Itoa(c.SeqNo)
	case "equipment":
		return c.Equipment
	case "name":
		return c.Name
	case "city":
		return c.City
	case "region":
		return c.Region
	case "phone":
		return c.Phone
	case "email":
		return c.Email
	case "status":
		return c.AdoptionStatus
	case "notes":
		return c.Notes
	}
	return ""
}

// Fields returns all field values in declaration order.
func (c *Company) Fields() []string {
	vals := make([]string, len(columnKeys))
	for i, key := range columnKeys {
		vals[i] = c.Field(key)
	}
	return vals
}

// categorySeparator splits an equipment label into "<Category> - <Detail>".
const categorySeparator = " - "

// CategoryPrefix returns the text before the first " - " separator, or the
// whole label when no separator is present.
func (c *Company) CategoryPrefix() string {
	if prefix, _, found := strings.Cut(c.Equipment, categorySeparator); found {
		return prefix
	}
	return c.Equipment
}

// HasCategoryPrefix reports whether the equipment label carries the
// " - " separator at all. The table's category filter only considers
// labels that do.
func (c *Company) HasCategoryPrefix() bool {
	return strings.Contains(c.Equipment, categorySeparator)
}

// Category classifies the equipment label into a normalized category by
// case-insensitive keyword match on the prefix, first match wins. Labels
// matching no keyword keep their raw prefix as a category of their own.
// Classification is deliberately a pure function of the label so that any
// component can recompute membership without sharing a grouping.
func (c *Company) Category() string {
	prefix := c.CategoryPrefix()
	lower := strings.ToLower(prefix)

	switch {
	case strings.Contains(lower, "pump"):
		return "Pumps"
	case strings.Contains(lower, "compressor"):
		return "Compressors"
	case strings.Contains(lower, "fan"), strings.Contains(lower, "blower"):
		return "Fans/Blowers"
	case strings.Contains(lower, "gearbox"), strings.Contains(lower, "gear"):
		return "Gearboxes"
	case strings.Contains(lower, "conveyor"):
		return "Conveyors"
	}
	return prefix
}

// InCategory reports whether the record belongs to the given normalized
// category, re-deriving membership from the label. For the five keyword
// categories this re-applies the keyword test; for literal-fallback
// categories it compares the raw prefix.
func (c *Company) InCategory(category string) bool {
	lower := strings.ToLower(c.CategoryPrefix())

	switch category {
	case "Pumps":
		return strings.Contains(lower, "pump")
	case "Compressors":
		return strings.Contains(lower, "compressor")
	case "Fans/Blowers":
		return strings.Contains(lower, "fan") || strings.Contains(lower, "blower")
	case "Gearboxes":
		return strings.Contains(lower, "gearbox") || strings.Contains(lower, "gear")
	case "Conveyors":
		return strings.Contains(lower, "conveyor")
	}
	return c.CategoryPrefix() == category
}
