// SPDX-License-Identifier: MIT

// Package interchange reads and writes simulation snapshots.
//
// Two formats are supported:
//
//   - JSON, as produced by Encode and read by Decode. Each field is an
//     n-dimensional array object {"v":1,"dim":[nx,ny],"data":[...]} whose data
//     runs over the padded extent with i outer. Cells are "Fluid" or a
//     {"Boundary": ...} object, e.g. {"Boundary":"NoSlip"} or
//     {"Boundary":{"Inflow":{"velocity":[1,0]}}}.
//   - The binary .out files written by NaSt2D, read by ReadNaSt2D.
//
// Both return a sim.Snapshot; sim.Import turns it into a running State.
package interchange
