package main

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/echoflaresat/spherecast/imagefile"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <cols>x<rows> <output> <tile1> <tile2> ...\n", os.Args[0])
		os.Exit(1)
	}

	cols, rows, err := imagefile.ParseLayout(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	output := os.Args[2]
	inputFiles := os.Args[3:]
	if len(inputFiles) != cols*rows {
		log.Fatalf("Expected %d input files, got %d", cols*rows, len(inputFiles))
	}

	tiles := make([]image.Image, len(inputFiles))
	for i, path := range inputFiles {
		fmt.Printf("Processing %s\n", path)
		tiles[i], err = imagefile.Load(path)
		if err != nil {
			log.Fatalf("Could not load input file %q: %v", path, err)
		}
	}

	canvas, err := imagefile.Merge(cols, rows, tiles)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("-> creating %s\n", output)
	if err := imagefile.Write(output, canvas); err != nil {
		log.Fatalf("Could not create %s: %v", output, err)
	}
}
