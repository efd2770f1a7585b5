package tetris

// Intent is an abstract player command produced by an input collaborator.
type Intent uint8

const (
	IntentMoveLeft Intent = iota + 1
	IntentMoveRight
	IntentSoftDrop
	IntentRotate
	IntentHardDrop
	IntentRestart
	// IntentQuit is handled by front-ends; the controller ignores it.
	IntentQuit
)
