// Command geomdemo exercises geomkernel's core packages from the command
// line: generating random line segments, finding their intersections, and
// computing the convex hull of a random point set.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tomkrieg108/geomkernel/linesegment"
	"github.com/tomkrieg108/geomkernel/point"
	"github.com/tomkrieg108/geomkernel/polygon"
)

func main() {
	cmd := &cli.Command{
		Name:        "geomdemo",
		Usage:       "Exercises geomkernel's predicates, sweep line, and polygon operations",
		HideVersion: true,
		Commands: []*cli.Command{
			genSegmentsCommand(),
			intersectCommand(),
			hullCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func randomFloatInRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func positiveIntValidator(u int64) error {
	if u <= 0 {
		return fmt.Errorf("value must be greater than zero")
	}
	return nil
}

func boundsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.FloatFlag{Name: "maxx", Usage: "maximum X value of the plane", OnlyOnce: true, Value: 10},
		&cli.FloatFlag{Name: "minx", Usage: "minimum X value of the plane", OnlyOnce: true, Value: 0},
		&cli.FloatFlag{Name: "maxy", Usage: "maximum Y value of the plane", OnlyOnce: true, Value: 10},
		&cli.FloatFlag{Name: "miny", Usage: "minimum Y value of the plane", OnlyOnce: true, Value: 0},
	}
}

func checkBounds(cmd *cli.Command) (minx, maxx, miny, maxy float64, err error) {
	minx, maxx = cmd.Float("minx"), cmd.Float("maxx")
	miny, maxy = cmd.Float("miny"), cmd.Float("maxy")
	if minx >= maxx {
		return 0, 0, 0, 0, fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return 0, 0, 0, 0, fmt.Errorf("maxy must be greater than miny")
	}
	return minx, maxx, miny, maxy, nil
}

// genSegmentsCommand generates random, non-degenerate line segments in a
// plane and prints them to stdout as JSON.
func genSegmentsCommand() *cli.Command {
	return &cli.Command{
		Name:  "gen-segments",
		Usage: "Generates random line segments and prints them as JSON",
		Flags: append(boundsFlags(), &cli.IntFlag{
			Name: "number", Usage: "number of segments to create", Value: 3,
			Aliases: []string{"n"}, OnlyOnce: true, Validator: positiveIntValidator,
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			minx, maxx, miny, maxy, err := checkBounds(cmd)
			if err != nil {
				return err
			}
			n := cmd.Int("number")

			segments := make([]linesegment.LineSegment, n)
			for i := int64(0); i < n; i++ {
				for {
					segments[i] = linesegment.New(
						randomFloatInRange(minx, maxx),
						randomFloatInRange(miny, maxy),
						randomFloatInRange(minx, maxx),
						randomFloatInRange(miny, maxy),
					)
					if !segments[i].Upper().Eq(segments[i].Lower()) {
						break
					}
				}
			}

			return printJSON(segments)
		},
	}
}

// intersectCommand generates random line segments and reports every
// pairwise intersection found by the Bentley-Ottmann sweep.
func intersectCommand() *cli.Command {
	return &cli.Command{
		Name:  "intersect",
		Usage: "Generates random line segments and reports their intersections",
		Flags: append(boundsFlags(), &cli.IntFlag{
			Name: "number", Usage: "number of segments to create", Value: 5,
			Aliases: []string{"n"}, OnlyOnce: true, Validator: positiveIntValidator,
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			minx, maxx, miny, maxy, err := checkBounds(cmd)
			if err != nil {
				return err
			}
			n := cmd.Int("number")

			segments := make([]linesegment.LineSegment, n)
			for i := int64(0); i < n; i++ {
				for {
					segments[i] = linesegment.New(
						randomFloatInRange(minx, maxx),
						randomFloatInRange(miny, maxy),
						randomFloatInRange(minx, maxx),
						randomFloatInRange(miny, maxy),
					)
					if !segments[i].Upper().Eq(segments[i].Lower()) {
						break
					}
				}
			}

			results := linesegment.FindIntersectionsFast(segments)
			fmt.Printf("generated %d segments, found %d intersection(s)\n", n, len(results))
			for _, r := range results {
				fmt.Println(r.String())
			}
			return nil
		},
	}
}

// hullCommand generates a random set of points and prints the vertices of
// their convex hull.
func hullCommand() *cli.Command {
	return &cli.Command{
		Name:  "hull",
		Usage: "Generates random points and prints their convex hull",
		Flags: append(boundsFlags(), &cli.IntFlag{
			Name: "number", Usage: "number of points to generate", Value: 20,
			Aliases: []string{"n"}, OnlyOnce: true, Validator: positiveIntValidator,
		}),
		Action: func(_ context.Context, cmd *cli.Command) error {
			minx, maxx, miny, maxy, err := checkBounds(cmd)
			if err != nil {
				return err
			}
			n := cmd.Int("number")

			points := make([]point.Point, n)
			for i := range points {
				points[i] = point.New(randomFloatInRange(minx, maxx), randomFloatInRange(miny, maxy))
			}

			hull := polygon.ConvexHull(points)
			fmt.Printf("generated %d points, hull has %d vertices\n", n, len(hull))
			return printJSON(hull)
		},
	}
}

func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
