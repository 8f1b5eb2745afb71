// SPDX-License-Identifier: MIT

// Package render turns a simulation State into an RGBA image, one pixel per
// cell of the padded extent. Fluid cells are coloured by speed or pressure
// on a blue-cyan-green-yellow-red scale; boundary cells get a fixed colour
// per type. Row 0 of the image is the top row of the grid (j = JMax+1).
package render
