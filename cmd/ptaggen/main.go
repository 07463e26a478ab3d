// Command ptaggen regenerates the pregenerated element packages
// (pkg/ptag/html and pkg/ptag/svg).
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ptag-dev/ptag/internal/gen"
	"github.com/ptag-dev/ptag/internal/gen/outfile"
)

func main() {
	flag.Usage = func() {
		_, _ = fmt.Fprintln(os.Stderr, "Usage: ptaggen [flags]")
		_, _ = fmt.Fprintln(os.Stderr, "")
		_, _ = fmt.Fprintln(os.Stderr, "Writes <out>/html/html.go and <out>/svg/svg.go.")
		flag.PrintDefaults()
	}
	outFlag := flag.String("out", "pkg/ptag", "directory the element packages are written under")
	verbosity := flag.Int("v", 0, "verbosity (0=warn, 1=info, 2=debug)")
	flag.Parse()

	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}
	setupLogger(*verbosity)

	for _, pkg := range []string{"html", "svg"} {
		src, err := gen.File(pkg)
		if err != nil {
			fatal(err)
		}
		path := filepath.Join(*outFlag, pkg, pkg+".go")
		if err := outfile.Write(path, src); err != nil {
			fatal(err)
		}
		log.Info().Str("path", path).Int("bytes", len(src)).Msg("generated")
	}
}

func setupLogger(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
