// Package stackimg addresses composite images that stack several sub-frames
// vertically inside one jointly-coded picture.
//
// A View selects sub-frame k of a decoded composite by advancing each plane
// by k times the sub-frame's plane height times the plane stride. No pixel
// data is copied or decoded; the result aliases the composite's planes.
package stackimg
