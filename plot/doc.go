// SPDX-License-Identifier: MIT

// Package plot holds render-agnostic plot data returned by the numerical
// engines: points, labelled series and figures.
//
// An engine never draws. It returns a Figure, and whatever front end is in
// charge (a GUI, a notebook, an SVG writer) projects it onto its own drawing
// surface. Figures are plain values and can be compared, serialized or
// discarded freely.
package plot
