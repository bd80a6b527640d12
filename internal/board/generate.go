package board

import (
	"math"
	"math/rand/v2"
)

// rowCounts is the standard 3-4-5-4-3 layout, 19 tiles.
var rowCounts = []int{3, 4, 5, 4, 3}

// TileCount is the number of tiles Generate produces.
const TileCount = 19

func resourcePool() []Resource {
	pool := make([]Resource, 0, TileCount)
	for _, entry := range []struct {
		res   Resource
		count int
	}{
		{Wood, 4},
		{Brick, 3},
		{Sheep, 4},
		{Wheat, 4},
		{Ore, 3},
		{Desert, 1},
	} {
		for i := 0; i < entry.count; i++ {
			pool = append(pool, entry.res)
		}
	}
	return pool
}

// numberPool holds the 18 tokens for the 18 non-desert tiles: one 2,
// one 12, two each of 3-6 and 8-11. Never a 7.
func numberPool() []int {
	return []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}
}

// Generate shuffles the resource and number pools independently and lays
// tiles out row by row, each row horizontally centered on the layout
// origin. The desert tile receives no number token. Any graph built from
// a previous tile set is stale after this; callers must rebuild.
func Generate(layout Layout, rng *rand.Rand) []Tile {
	resources := resourcePool()
	numbers := numberPool()
	rng.Shuffle(len(resources), func(i, j int) {
		resources[i], resources[j] = resources[j], resources[i]
	})
	rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	horiz := layout.Radius * math.Sqrt(3)
	vert := layout.Radius * 1.5

	tiles := make([]Tile, 0, TileCount)
	idx := 0
	numIdx := 0
	for r, count := range rowCounts {
		y := layout.OriginY + float64(r-2)*vert
		for i := 0; i < count; i++ {
			x := layout.OriginX + (float64(i)-float64(count-1)/2)*horiz
			res := resources[idx]
			number := 0
			if res != Desert {
				number = numbers[numIdx]
				numIdx++
			}
			tiles = append(tiles, Tile{Resource: res, Number: number, Center: Point{X: x, Y: y}})
			idx++
		}
	}
	return tiles
}
