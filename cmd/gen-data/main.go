// Command gen-data writes sample dataset CSVs for local development.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/campuslens/campuslens/internal/datagen"
	"github.com/campuslens/campuslens/pkg/logger"
)

func main() {
	dir := flag.String("dir", "data", "output directory for the dataset CSVs")
	students := flag.Int("students", 200, "number of students to generate")
	reviews := flag.Int("reviews", 150, "number of faculty reviews to generate")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx := context.Background()
	err := datagen.Generate(ctx, datagen.Options{
		Dir:      *dir,
		Students: *students,
		Reviews:  *reviews,
	})
	if err != nil {
		logger.Get().Error(ctx, "generation failed", logger.Error(err))
		os.Exit(1)
	}
}
