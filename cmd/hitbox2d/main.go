package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	hitbox2d "github.com/georgi-kanchev/TransformableHitbox2D"
	"github.com/georgi-kanchev/TransformableHitbox2D/geometry"
)

// Demo of collision queries. Input on stdin should be newline separated
// points in the form "x y", with each polygon separated by an extra newline.
// Each polygon is closed automatically. The pose flags are applied to the
// first polygon; the rest stay where the input put them. Every pair is then
// tested for intersection, containment and overlap.

var (
	posX      = kingpin.Flag("x", "World x position for the first polygon.").Default("0").Float64()
	posY      = kingpin.Flag("y", "World y position for the first polygon.").Default("0").Float64()
	angle     = kingpin.Flag("angle", "World angle in degrees for the first polygon.").Default("0").Float64()
	scale     = kingpin.Flag("scale", "World scale for the first polygon.").Default("1").Float64()
	draw      = kingpin.Flag("draw", "Render the scene to this PNG path and cat it to the terminal.").String()
	drawScale = kingpin.Flag("draw-scale", "Pixels per world unit when drawing.").Default("10").Float64()
)

func main() {
	kingpin.Parse()

	hitboxes := readHitboxes(os.Stdin)
	fmt.Printf("Read %d polygons\n", len(hitboxes))
	if len(hitboxes) == 0 {
		return
	}

	pose := hitbox2d.NewTransform()
	pose.SetPosition(hitbox2d.Point{X: *posX, Y: *posY})
	pose.SetAngle(*angle)
	pose.SetScale(*scale)
	hitboxes[0].ApplyTransform(pose)

	for i := range hitboxes {
		for j := i + 1; j < len(hitboxes); j++ {
			a, b := hitboxes[i], hitboxes[j]
			fmt.Printf("%d vs %d: intersects %s, contains %s, overlaps %s\n",
				i, j,
				yesNo(a.Intersects(b)),
				yesNo(a.ContainsHitbox(b)),
				yesNo(a.Overlaps(b)),
			)
			for _, p := range a.Intersections(b) {
				fmt.Printf("  crossing at (%.3f, %.3f)\n", p.X, p.Y)
			}
		}
	}

	if *draw != "" {
		if err := geometry.DrawScene(*draw, *drawScale, os.Stdout, hitboxes...); err != nil {
			fmt.Fprintf(os.Stderr, "draw failed: %v\n", err)
			os.Exit(1)
		}
	}
}

func yesNo(v bool) string {
	if v {
		return aurora.Green("yes").String()
	}
	return aurora.Red("no").String()
}

func readHitboxes(in *os.File) []*hitbox2d.Hitbox {
	hitboxes := []*hitbox2d.Hitbox{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	points := []hitbox2d.Point{}
	flush := func() {
		if len(points) == 0 {
			return
		}
		// Close the polygon
		points = append(points, points[0])
		hitboxes = append(hitboxes, hitbox2d.NewHitbox(points...))
		points = []hitbox2d.Point{}
	}
	for scanner.Scan() {
		// Read the next line
		line := scanner.Text()

		// If it's empty, this is the end of the polygon
		if line == "" {
			flush()
			continue
		}

		// Parse the point out of the line
		points = append(points, parsePoint(line))
	}

	// Handle trailing polygon if any
	flush()
	return hitboxes
}

func parsePoint(line string) hitbox2d.Point {
	parts := strings.Fields(line)
	x, _ := strconv.ParseFloat(parts[0], 64)
	y, _ := strconv.ParseFloat(parts[1], 64)
	return hitbox2d.Point{X: x, Y: y}
}
