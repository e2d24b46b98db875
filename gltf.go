package brushcore

import (
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ExportGLTF writes a binary glTF snapshot of the brush's current mesh to w, with each side
// fan-triangulated. This is a one-way debugging and inspection export: a brush is never
// loaded back from it, only ever rebuilt from its face list.
func (bg *BrushGeometry) ExportGLTF(w io.Writer, name string) error {
	doc := gltf.NewDocument()

	positions := make([][3]float32, 0, len(bg.Vertices))
	vertexIndex := make(map[*Vertex]uint16, len(bg.Vertices))
	for i, vertex := range bg.Vertices {
		vertexIndex[vertex] = uint16(i)
		positions = append(positions, [3]float32{
			float32(vertex.Position.X),
			float32(vertex.Position.Y),
			float32(vertex.Position.Z),
		})
	}

	var indices []uint16
	for _, side := range bg.Sides {
		// side cycles wind clockwise seen from outside; glTF wants counter-clockwise
		// front faces, so the fan is emitted reversed
		for i := 1; i < len(side.Vertices)-1; i++ {
			indices = append(indices,
				vertexIndex[side.Vertices[0]],
				vertexIndex[side.Vertices[i+1]],
				vertexIndex[side.Vertices[i]],
			)
		}
	}

	positionAccessor := modeler.WritePosition(doc, positions)
	indexAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Indices: gltf.Index(indexAccessor),
				Attributes: map[string]int{
					gltf.POSITION: positionAccessor,
				},
			},
		},
	})

	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true
	return encoder.Encode(doc)
}
