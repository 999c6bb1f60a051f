// Package render prints matrices row by row for humans.
//
// It depends only on the read surface (Rows and Row) of a matrix, so any
// layout from package matrix can be printed. Values use the shortest decimal
// representation that round-trips and always carry a fractional part
// ("1.0", "5.2"), unless a fixed precision is requested.
//
//	[1.0, 2.0, 3.0]
//	[4.0, 5.0, 6.0]
//	[7.0, 8.0, 9.0]
package render
