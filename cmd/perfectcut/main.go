// Command perfectcut scores a knife cut across a brownie and asks the
// bisection search for the best position at the same angle.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/perfectcut"
)

func main() {
	var (
		shapeKind  = flag.String("shape", "regular", "shape kind: regular or irregular")
		seed       = flag.Uint64("seed", 1, "random seed for irregular shapes")
		angle      = flag.Float64("angle", 0, "knife angle in degrees")
		position   = flag.Float64("position", 0, "knife position")
		iterations = flag.Int("iterations", perfectcut.DefaultIterations, "bisection iterations (0 skips the search)")
		minPos     = flag.Float64("min", perfectcut.DefaultMinPosition, "lower end of the search bracket")
		maxPos     = flag.Float64("max", perfectcut.DefaultMaxPosition, "upper end of the search bracket")
		lang       = flag.String("lang", "en", "BCP 47 language tag for number formatting")
		output     = flag.String("png", "", "write a preview image to this file")
		size       = flag.Int("size", 600, "preview image size in pixels")
		verbose    = flag.Bool("v", false, "log every search iteration")
	)
	flag.Parse()

	if *verbose {
		perfectcut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if *output != "" && *size <= 0 {
		log.Fatalf("Invalid preview size %d: must be positive", *size)
	}

	kind, err := perfectcut.ParseShapeKind(*shapeKind)
	if err != nil {
		log.Fatal(err)
	}

	// An irregular shape without an explicit knife starts like a chaos round.
	var knife *perfectcut.Knife
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "angle" || f.Name == "position" {
			k := perfectcut.NewKnife(*position, *angle)
			knife = &k
		}
	})

	session, err := newSession(kind, rand.New(rand.NewPCG(*seed, *seed)), knife)
	if err != nil {
		log.Fatal(err)
	}

	eval, err := session.Evaluate()
	if err != nil {
		log.Fatal(err)
	}

	var res *perfectcut.SearchResult
	if *iterations > 0 {
		var r perfectcut.SearchResult
		session, r, err = session.RunSearch(
			perfectcut.WithBracket(*minPos, *maxPos),
			perfectcut.WithIterations(*iterations),
		)
		if err != nil {
			log.Fatal(err)
		}
		res = &r
	}

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("Invalid language %q: %v", *lang, err)
	}
	if err := writeReport(os.Stdout, tag, session, eval, res); err != nil {
		log.Fatal(err)
	}

	if *output != "" {
		cut, err := perfectcut.Cut(session.Shape, session.Knife.Position, session.Knife.Angle)
		if err != nil {
			log.Fatal(err)
		}
		if err := savePreview(*output, *size, session, cut); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Preview saved to %s (%dx%d)\n", *output, *size, *size)
	}
}
