package impulse

import (
	"math"
	"sort"

	"github.com/akmonengine/impulse/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey - coordinates of a cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - container of object indices inside one cell
type Cell struct {
	objectIndices []int
}

// SpatialGrid - uniform hashed grid accelerating point queries: each
// object occupies every cell touched by its position +/- scaled bounding
// radius, so a query only has to hit-test the objects of one cell
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// NewSpatialGrid creates a grid; numCells is rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].objectIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert registers an object in every cell its bounding sphere touches
func (sg *SpatialGrid) Insert(objectIndex int, object *actor.PhysicalObject) {
	position := actor.TranslationVector(object.GetPositionMatrix())
	radius := object.GetScaledSize()

	minCell := sg.worldToCell(position.Sub(mgl64.Vec3{radius, radius, radius}))
	maxCell := sg.worldToCell(position.Add(mgl64.Vec3{radius, radius, radius}))

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				cellIdx := sg.hashCell(CellKey{x, y, z})

				sg.cells[cellIdx].objectIndices = append(
					sg.cells[cellIdx].objectIndices,
					objectIndex,
				)
			}
		}
	}
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].objectIndices = sg.cells[i].objectIndices[:0]
	}
}

// Rebuild clears the grid and re-inserts all objects; called once per
// world step since simulation moves them
func (sg *SpatialGrid) Rebuild(objects []*actor.PhysicalObject) {
	sg.Clear()
	for i, object := range objects {
		sg.Insert(i, object)
	}
	sg.sortCells()
}

// sortCells keeps candidate order deterministic regardless of hash
// collisions between cells
func (sg *SpatialGrid) sortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].objectIndices) > 1 {
			sort.Ints(sg.cells[i].objectIndices)
		}
	}
}

// CandidatesAt returns the indices of the objects whose bounding sphere
// touches the cell containing the point. Candidates still need a CheckHit;
// hash collisions may add unrelated objects, never lose one
func (sg *SpatialGrid) CandidatesAt(point mgl64.Vec3) []int {
	cellIdx := sg.hashCell(sg.worldToCell(point))

	return sg.cells[cellIdx].objectIndices
}

// worldToCell converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell hashes a cell to an index in the array
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
