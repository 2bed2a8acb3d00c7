// Package viz provides terminal plotting primitives for force-displacement
// data.
//
//   - [Canvas]: Braille-based sub-pixel canvas with solid and dashed lines
//   - [Frame]: data-space to sub-pixel mapping with padded bounds
//   - [PlotSeries], [PlotLoop]: series traces and closed cycle overlays
//
// The lipgloss styles shared by the picker and CLI live in styles.go.
package viz
