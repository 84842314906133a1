package life

import (
	"regexp"
	"strings"
)

// Counts is a set of neighbour counts stored as a bitmask over 0..9.
type Counts uint16

// CountsOf builds a set from the given counts. Values outside 0..9 are ignored.
func CountsOf(ns ...int) Counts {
	var c Counts
	for _, n := range ns {
		if n >= 0 && n <= 9 {
			c |= 1 << uint(n)
		}
	}
	return c
}

// Has reports whether n is in the set.
func (c Counts) Has(n int) bool {
	if n < 0 || n > 9 {
		return false
	}
	return c&(1<<uint(n)) != 0
}

// Slice lists the members in ascending order.
func (c Counts) Slice() []int {
	var out []int
	for n := 0; n <= 9; n++ {
		if c.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// RuleSet holds the birth and survive neighbour counts for one generation.
type RuleSet struct {
	Birth   Counts
	Survive Counts
}

var (
	defaultBirth   = CountsOf(3)
	defaultSurvive = CountsOf(2, 3)

	birthPattern   = regexp.MustCompile(`b(\d+)|birth\s*(\d+)`)
	survivePattern = regexp.MustCompile(`s(\d+)|survive\s*(\d+)`)
)

// Classic returns Conway's B3/S23.
func Classic() RuleSet {
	return RuleSet{Birth: defaultBirth, Survive: defaultSurvive}
}

// String renders the rule in B/S notation.
func (r RuleSet) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for _, n := range r.Birth.Slice() {
		b.WriteByte(byte('0' + n))
	}
	b.WriteString("/S")
	for _, n := range r.Survive.Slice() {
		b.WriteByte(byte('0' + n))
	}
	return b.String()
}

// ParseRule reads "B3/S23" or "birth3 survive23" style modifiers, case
// insensitive and in either order. Every digit is a separate count, so "B23"
// means birth on 2 or 3. A half that cannot be found keeps its classic
// default; an empty modifier yields Classic.
func ParseRule(mod string) RuleSet {
	rs := Classic()
	if mod == "" {
		return rs
	}
	lower := strings.ToLower(mod)
	if digits, ok := firstDigits(birthPattern, lower); ok {
		rs.Birth = digitCounts(digits)
	}
	if digits, ok := firstDigits(survivePattern, lower); ok {
		rs.Survive = digitCounts(digits)
	}
	return rs
}

func firstDigits(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	if m[1] != "" {
		return m[1], true
	}
	return m[2], m[2] != ""
}

func digitCounts(digits string) Counts {
	var c Counts
	for _, r := range digits {
		c |= CountsOf(int(r - '0'))
	}
	return c
}
