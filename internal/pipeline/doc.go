// Package pipeline lists the subtitle and video directories, pairs their
// entries by sorted position, and runs one ffmpeg merge per pair.
//
// Pairing is purely positional: the i-th subtitle path in sorted order goes
// with the i-th video path in sorted order. File names are never compared,
// so one extra or missing file shifts every later pair.
package pipeline
