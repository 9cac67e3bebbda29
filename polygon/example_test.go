package polygon_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlegraph/polygon"
)

// ExampleLargestInscribedRect compares both variants on the reference outline.
//
//	..............
//	.......#...#..
//	..............
//	..#....#......
//	..............
//	..#......#....
//	..............
//	.........#.#..
//	..............
func ExampleLargestInscribedRect() {
	outline := polygon.Outline{
		{X: 7, Y: 1}, {X: 11, Y: 1}, {X: 11, Y: 7}, {X: 9, Y: 7},
		{X: 9, Y: 5}, {X: 2, Y: 5}, {X: 2, Y: 3}, {X: 7, Y: 3},
	}

	loose, err := polygon.LargestRect(outline)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	inscribed, err := polygon.LargestInscribedRect(outline)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("any pair:  %s %s area=%d\n", loose.A, loose.B, loose.Area)
	fmt.Printf("inscribed: %s %s area=%d\n", inscribed.A, inscribed.B, inscribed.Area)

	// Output:
	// any pair:  11,1 2,5 area=50
	// inscribed: 9,5 2,3 area=24
}

// ExampleClassifyCorner shows the admissible quadrants of a concave corner.
func ExampleClassifyCorner() {
	shape, err := polygon.ClassifyCorner(polygon.Left, polygon.Down)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(shape, shape.Admissible())

	// Output:
	// ConcaveSE [NE NW SW]
}
