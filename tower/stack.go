package tower

import "github.com/lixenwraith/gesture-arcade/parameter"

// Stack is the settled tower of one level, bottom block first
// Heights are screen Y values: TopHeight shrinks as the tower grows upward
type Stack struct {
	Blocks    []Block
	TopHeight float64
	Base      float64
	Ceiling   float64
}

// NewStack creates an empty stack on the base line with a ceiling rise above it
func NewStack(base, rise float64) *Stack {
	return &Stack{TopHeight: base, Base: base, Ceiling: base - rise}
}

// RecordPlacement lowers the top by one block height
func (s *Stack) RecordPlacement(height float64) {
	s.TopHeight -= height
}

// CeilingReached reports whether the tower has reached the level boundary
func (s *Stack) CeilingReached() bool {
	return s.TopHeight <= s.Ceiling
}

// Reset empties the stack and restores the top to the base line
func (s *Stack) Reset() {
	s.Blocks = s.Blocks[:0]
	s.TopHeight = s.Base
}

// TargetTop is the Y a block of the given height must reach to sit on the tower
func (s *Stack) TargetTop(height float64) float64 {
	return s.TopHeight - height
}

// Settle appends b and records its height
// Every block already on the tower takes a cosmetic nudge; b itself does not
func (s *Stack) Settle(b Block) {
	for i := range s.Blocks {
		s.Blocks[i].SettleOffset += parameter.BlockSettleNudge
	}
	b.Grabbed = false
	s.Blocks = append(s.Blocks, b)
	s.RecordPlacement(b.Height)
}
