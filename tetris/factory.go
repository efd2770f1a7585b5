package tetris

import (
	"fmt"
	"math/rand/v2"
)

// Source is the random source used for piece selection. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a PCG backed source. A zero seed picks a random one.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Selection is the strategy used to pick the next kind.
type Selection string

const (
	// SelectUniform draws every kind independently with equal probability.
	SelectUniform Selection = "uniform"
	// SelectBag deals all seven kinds in a shuffled order before refilling.
	SelectBag Selection = "bag"
)

// ParseSelection validates a selection name. The empty string means SelectUniform.
func ParseSelection(name string) (Selection, error) {
	switch Selection(name) {
	case "", SelectUniform:
		return SelectUniform, nil
	case SelectBag:
		return SelectBag, nil
	}
	return "", fmt.Errorf("unknown piece selection %q", name)
}

// Factory produces spawn-positioned pieces for a board of a fixed width.
type Factory struct {
	src        Source
	selection  Selection
	boardWidth int
	bag        []Kind
}

// NewFactory creates a factory. A nil source falls back to NewSource(0).
func NewFactory(src Source, selection Selection, boardWidth int) *Factory {
	if src == nil {
		src = NewSource(0)
	}
	if selection == "" {
		selection = SelectUniform
	}
	return &Factory{
		src:        src,
		selection:  selection,
		boardWidth: boardWidth,
	}
}

// Selection returns the factory's selection strategy.
func (f *Factory) Selection() Selection { return f.selection }

// NextKind draws the next kind.
func (f *Factory) NextKind() Kind {
	if f.selection == SelectBag {
		return f.fromBag()
	}
	return Kind(f.src.IntN(KindCount))
}

// Next returns a new piece of the next kind at its spawn position.
func (f *Factory) Next() *Piece {
	return SpawnPiece(f.NextKind(), f.boardWidth)
}

func (f *Factory) fromBag() Kind {
	if len(f.bag) == 0 {
		f.bag = Kinds()
		for i := len(f.bag) - 1; i > 0; i-- {
			j := f.src.IntN(i + 1)
			f.bag[i], f.bag[j] = f.bag[j], f.bag[i]
		}
	}
	k := f.bag[0]
	f.bag = f.bag[1:]
	return k
}
