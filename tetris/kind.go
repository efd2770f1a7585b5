package tetris

//go:generate go tool stringer -type=Kind -trimprefix=Kind

// Kind is one of the seven tetromino shapes.
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

var kindShapes = [KindCount]Shape{
	KindI: {
		{true, true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{false, true, false},
		{true, true, true},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
}

var kindColors = [KindCount]ColorTag{
	KindI: ColorLightBlue,
	KindO: ColorPink,
	KindT: ColorPurple,
	KindJ: ColorBlue,
	KindL: ColorOrange,
	KindS: ColorGreen,
	KindZ: ColorRed,
}

// Kinds returns all tetromino kinds in declaration order.
func Kinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindJ, KindL, KindS, KindZ}
}

// Valid reports whether k is a declared kind.
func (k Kind) Valid() bool {
	return k < KindCount
}

// Color returns the display color of the kind.
func (k Kind) Color() ColorTag {
	k.mustBeValid()
	return kindColors[k]
}

// Shape returns a copy of the kind's spawn orientation.
func (k Kind) Shape() Shape {
	k.mustBeValid()
	return kindShapes[k].clone()
}

func (k Kind) mustBeValid() {
	if !k.Valid() {
		panic("tetris: invalid piece kind " + k.String())
	}
}
