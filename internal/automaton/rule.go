package automaton

import "fmt"

// Rule is a Wolfram code: bit p holds the output for neighborhood pattern p.
type Rule uint8

// ParseRule converts n to a Rule, rejecting values outside [0,255].
func ParseRule(n int) (Rule, error) {
	if n < 0 || n > 255 {
		return 0, fmt.Errorf("%w: %d not in [0,255]", ErrInvalidRule, n)
	}
	return Rule(n), nil
}

// Output returns the next cell value for the 3-bit pattern p (left is the high bit).
func (r Rule) Output(p uint8) uint8 {
	return uint8(r>>(p&7)) & 1
}

// Table returns the decoded outputs indexed by pattern.
func (r Rule) Table() [8]uint8 {
	var t [8]uint8
	for p := range t {
		t[p] = r.Output(uint8(p))
	}
	return t
}

// Binary renders the rule as eight bits, most significant first. Pattern p
// reads the character at 7-p.
func (r Rule) Binary() string { return fmt.Sprintf("%08b", uint8(r)) }
