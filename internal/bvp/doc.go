// Package bvp defines the boundary-value problem under study and the
// contract shared by the three solution strategies: a common grid over
// [0,1], a Solution vector sampled on that grid, and the Solver
// interface each method implements.
//
// The fixed problem is
//
//	y'' + (x+1)y' - 2y = (1-x²)e⁻ˣ,  y(0)=1,  y(1)=2.
package bvp
