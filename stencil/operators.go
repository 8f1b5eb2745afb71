// SPDX-License-Identifier: MIT

package stencil

import "math"

// Du2Dx is ∂(u²)/∂x at the U face (i, j).
func Du2Dx(u *Window, delx, gamma float64) float64 {
	a := u[1][1] + u[2][1]
	b := u[0][1] + u[1][1]

	return (a*a - b*b + gamma*(math.Abs(a)*(u[1][1]-u[2][1])-math.Abs(b)*(u[0][1]-u[1][1]))) / (4 * delx)
}

// Dv2Dy is ∂(v²)/∂y at the V face (i, j).
func Dv2Dy(v *Window, dely, gamma float64) float64 {
	a := v[1][1] + v[1][2]
	b := v[1][0] + v[1][1]

	return (a*a - b*b + gamma*(math.Abs(a)*(v[1][1]-v[1][2])-math.Abs(b)*(v[1][0]-v[1][1]))) / (4 * dely)
}

// DuvDy is ∂(uv)/∂y at the U face (i, j). v is interpolated onto the face
// from the two V faces above and below it.
func DuvDy(u, v *Window, dely, gamma float64) float64 {
	va := v[1][1] + v[2][1] // north corner of the U cell
	ua := u[1][1] + u[1][2]
	vb := v[1][0] + v[2][0] // south corner
	ub := u[1][0] + u[1][1]

	return (va*ua - vb*ub + gamma*(math.Abs(va)*(u[1][1]-u[1][2])-math.Abs(vb)*(u[1][0]-u[1][1]))) / (4 * dely)
}

// DuvDx is ∂(uv)/∂x at the V face (i, j).
func DuvDx(u, v *Window, delx, gamma float64) float64 {
	ua := u[1][1] + u[1][2] // east corner of the V cell
	va := v[1][1] + v[2][1]
	ub := u[0][1] + u[0][2] // west corner
	vb := v[0][1] + v[1][1]

	return (ua*va - ub*vb + gamma*(math.Abs(ua)*(v[1][1]-v[2][1])-math.Abs(ub)*(v[0][1]-v[1][1]))) / (4 * delx)
}

// Laplacian is the 5-point ∂²f/∂x² + ∂²f/∂y².
func Laplacian(w *Window, delx, dely float64) float64 {
	return (w[2][1]-2*w[1][1]+w[0][1])/(delx*delx) + (w[1][2]-2*w[1][1]+w[1][0])/(dely*dely)
}
