/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package surface

// Classes which objects are detailed surfaces with vertices
var SurfaceClasses = []string{
	"BuildingSurface:Detailed",
	"Wall:Detailed",
	"RoofCeiling:Detailed",
	"Floor:Detailed",
	"FenestrationSurface:Detailed",
	"Shading:Site:Detailed",
	"Shading:Building:Detailed",
	"Shading:Zone:Detailed",
}

const (
	numberOfVerticesField = "Number of Vertices"
	vertexFieldFmt        = "Vertex %d %s-coordinate"
)

// Normal vector length below which surface is degenerated
const epsilon = 1e-9
