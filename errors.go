package chainnet

import (
	"fmt"
)

// DimensionMismatchError documents a failed connection between two layers:
// the first layer's output size and the second layer's input size disagree.
// It is returned by Connect and, wrapped, by *Chain.Add.
type DimensionMismatchError struct {
	OutSize, InSize int
}

func (err DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: output size %d != input size %d", err.OutSize, err.InSize)
}

// NilArgError documents errors resulting from certain arguments provided to a
// function being nil. It is always panicked, never returned.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}
