package renderer

// Region is a contiguous horizontal band of image rows spanning the full
// film width, the unit of parallel work. YEnd is exclusive.
type Region struct {
	ID     int
	YStart int
	YEnd   int
}

// Rows returns the number of rows in the region
func (r Region) Rows() int {
	return r.YEnd - r.YStart
}

// PartitionRegions splits height rows into count near-equal horizontal
// bands. Any remainder rows are folded into the trailing region, so the
// regions cover [0, height) exactly with no gaps or overlaps. With fewer
// rows than regions the count is reduced so that no region is empty.
func PartitionRegions(height, count int) []Region {
	if count > height {
		count = height
	}
	if count < 1 {
		count = 1
	}

	rowsPerRegion := height / count
	regions := make([]Region, count)
	for i := 0; i < count; i++ {
		regions[i] = Region{
			ID:     i,
			YStart: i * rowsPerRegion,
			YEnd:   (i + 1) * rowsPerRegion,
		}
	}
	regions[count-1].YEnd = height
	return regions
}
