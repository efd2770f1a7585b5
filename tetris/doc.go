// Package tetris implements the falling-block simulation core: the settled-cell Board,
// tetromino Pieces with rotation and wall kicks, the piece Factory, the Score/level
// engine and the Controller that steps a Session one frame at a time.
//
// The package performs no I/O and holds no references to rendering, audio or asset
// state. Presentation layers feed it Intents and a frame delta through
// Controller.Tick, read the Session back for drawing, and observe discrete game
// Events through Listeners.
package tetris
