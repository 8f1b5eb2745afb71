// Package stroemung simulates two-dimensional incompressible flow on a
// staggered (MAC) grid, following the classic explicit projection scheme of
// Griebel, Dornseifer and Neunhoeffer.
//
// What is in the box?
//
//   - field/     padded scalar arrays U, V, P with bounds-checked access
//   - grid/      geometry, cell types, the cell map and its presets
//   - stencil/   donor-cell advection and Laplacian kernels on a 3×3 window
//   - boundary/  velocity boundary values for walls, inflow and outflow
//   - momentum/  the tentative velocities F and G
//   - pressure/  the Poisson right-hand side, SOR solver and projection
//   - sim/       State, the time-step governor and Tick
//   - interchange/ JSON snapshots and NaSt2D .out files
//   - render/    one-pixel-per-cell images coloured by speed or pressure
//
// One tick:
//
//	U,V ──boundary──▶ δt ──momentum──▶ F,G ──boundary──▶ RHS ──SOR──▶ P ──project──▶ U,V
//
// Cells and faces:
//
//	          V(i,j)
//	      ┌─────▲─────┐
//	      │           │
//	U(i-1,j) ▶  P(i,j)   ▶ U(i,j)
//	      │           │
//	      └─────▲─────┘
//	         V(i,j-1)
//
// Quick start:
//
//	geom, _ := grid.NewGeometry(100, 20, 0.1, 0.2)
//	st, err := sim.BuildScenario(grid.PresetObstacle, geom, sim.WithReynolds(250))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for n := 0; n < 500; n++ {
//		if _, err = st.Tick(); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The cmd/stroemung binary runs scenarios offline; cmd/stroemung-view opens
// an interactive window where cells can be painted while the flow runs.
package stroemung
