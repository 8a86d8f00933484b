// Package render describes how simulation elements are drawn without doing any drawing.
//
// A leaf element carries a [Shape] (what primitive) and a [Paint] (which colors); at draw
// time the element resolves its opacity and calls [DrawShape] against a [Surface]. Surfaces
// are supplied by the host: the braille terminal canvas, the SVG exporter, or a [Recorder]
// in tests.
package render
