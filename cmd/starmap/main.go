// Package main prints a generated stellar neighbourhood, or a single body,
// to the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"starseed-server/internal/celestial"
	"starseed-server/internal/galaxy"
	"starseed-server/internal/planet"
	"starseed-server/internal/system"
	"starseed-server/internal/universe"

	"github.com/fatih/color"
)

var (
	starColor   = color.New(color.FgYellow, color.Bold)
	planetColor = color.New(color.FgCyan)
	moonColor   = color.New(color.FgWhite)
	bodyColor   = color.New(color.FgMagenta, color.Bold)
	dimColor    = color.New(color.Faint)
)

func main() {
	var (
		name      string
		seed      uint64
		x, y      float64
		depth     string
		profile   string
		bodyKind  string
		noColor   bool
		verbosity bool
	)

	flag.StringVar(&name, "galaxy", "Milky Way", "galaxy name")
	flag.Uint64Var(&seed, "seed", 42, "galaxy seed, or body seed with -body")
	flag.Float64Var(&x, "x", 0, "galactic x coordinate")
	flag.Float64Var(&y, "y", 0, "galactic y coordinate")
	flag.StringVar(&depth, "depth", string(universe.DepthMoons), "stars, planets or moons")
	flag.StringVar(&profile, "profile", galaxy.ProfileCatalog, "star profile (reference, catalog)")
	flag.StringVar(&bodyKind, "body", "", "print a single body of this kind (Star, Planet, Moon, DwarfPlanet, DwarfMoon, Asteroid, Comet, BlackHole)")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.BoolVar(&verbosity, "v", false, "log generation details")
	flag.Parse()

	if noColor {
		color.NoColor = true
	}

	level := slog.LevelWarn
	if verbosity {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(context.Background(), os.Stdout, logger, options{
		galaxy:   celestial.NewGalaxy(name, celestial.GalaxyTypeSpiral, seed),
		position: celestial.NewGalacticPosition(x, y),
		depth:    depth,
		profile:  profile,
		bodyKind: bodyKind,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	galaxy   celestial.Galaxy
	position celestial.GalacticPosition
	depth    string
	profile  string
	bodyKind string
}

func run(ctx context.Context, w io.Writer, logger *slog.Logger, opts options) error {
	profile, err := galaxy.ProfileByName(opts.profile)
	if err != nil {
		return err
	}

	galaxyService := galaxy.NewService(galaxy.NewMemoryCatalog(opts.galaxy), profile, logger)
	planetService := planet.NewService(logger)
	svc := universe.NewService(galaxyService, system.NewService(planetService, logger), planetService, logger)

	if opts.bodyKind != "" {
		kind, err := celestial.ParseBodyType(opts.bodyKind)
		if err != nil {
			return err
		}
		body, err := svc.Body(ctx, kind, opts.galaxy.Seed)
		if err != nil {
			return err
		}
		printBody(w, body)
		return nil
	}

	depth, err := universe.ParseDepth(opts.depth)
	if err != nil {
		return err
	}

	systems, err := svc.Explore(ctx, opts.galaxy, opts.position, depth)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s, seed %d) near (%g, %g)\n",
		opts.galaxy.Name, opts.galaxy.GalaxyType, opts.galaxy.Seed, opts.position.X, opts.position.Y)
	for _, sys := range systems {
		printSystem(w, sys)
	}
	return nil
}

func printSystem(w io.Writer, sys universe.StarSystem) {
	starColor.Fprintf(w, "* %s", label(sys.Star.Name))
	dimColor.Fprintf(w, " [%s] seed=%d\n", sys.Star.StarType, sys.Star.Seed)

	for _, p := range sys.Planets {
		planetColor.Fprintf(w, "    o %s", label(p.Name))
		dimColor.Fprintf(w, " [%s] r=%.0fkm m=%.3gkg\n", p.PlanetType, p.Radius, p.Mass)
		for _, m := range p.Moons {
			moonColor.Fprintf(w, "        . %s", label(m.Name))
			dimColor.Fprintf(w, " [%s] r=%.0fkm\n", m.HardBodyType, m.Radius)
		}
	}
}

func printBody(w io.Writer, body celestial.Body) {
	bodyColor.Fprintf(w, "%s\n", body.BodyType())

	switch b := body.(type) {
	case celestial.Star:
		fmt.Fprintf(w, "  name=%s class=%s seed=%d\n", label(b.Name), b.StarType, b.Seed)
	case celestial.Planet:
		fmt.Fprintf(w, "  type=%s seed=%d radius=%.0fkm mass=%.3gkg moons=%d\n", b.PlanetType, b.Seed, b.Radius, b.Mass, len(b.Moons))
	case celestial.Moon:
		printHardBody(w, b.HardBody)
	case celestial.DwarfPlanet:
		printHardBody(w, b.HardBody)
	case celestial.DwarfMoon:
		printHardBody(w, b.HardBody)
	case celestial.Asteroid:
		printHardBody(w, b.HardBody)
	case celestial.Comet:
		printHardBody(w, b.HardBody)
	case celestial.BlackHole:
		fmt.Fprintf(w, "  seed=%d mass=%.3gkg\n", b.Seed, b.Mass)
	}
}

func printHardBody(w io.Writer, hb celestial.HardBody) {
	fmt.Fprintf(w, "  composition=%s seed=%d radius=%.1fkm mass=%.3gkg\n", hb.HardBodyType, hb.Seed, hb.Radius, hb.Mass)
}

func label(name string) string {
	if name == "" {
		return "(unnamed)"
	}
	return name
}
