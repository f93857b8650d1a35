// Command huffc compresses and decompresses files with the huffc package's
// traditional and canonical Huffman variants.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/op/go-logging"

	"github.com/kestrelcode/huffc"
	"github.com/kestrelcode/huffc/internal/fileio"
)

var log = logging.MustGetLogger("huffc")

func main() {
	var (
		decode    = flag.Bool("d", false, "decode instead of encode")
		canonical = flag.Bool("canonical", false, "use the canonical variant (default: traditional)")
		showTree  = flag.Bool("t", false, "print the header's (symbol, code) table instead of encoding/decoding")
		outPath   = flag.String("o", "", "output path (default: infile plus .hft/.hfc, or with that suffix removed when decoding)")
		verbose   = flag.Bool("v", false, "verbose logging")
		debug     = flag.Bool("vv", false, "debug logging")
	)
	flag.Parse()
	configureLogging(*verbose, *debug)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: huffc [-d] [-canonical] [-t] [-o outfile] infile")
		os.Exit(2)
	}
	inPath := flag.Arg(0)

	if err := run(inPath, *outPath, *decode, *canonical, *showTree); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}

func configureLogging(verbose, debug bool) {
	backend := logging.NewLogBackend(os.Stderr, "huffc: ", 0)
	formatter := logging.MustStringFormatter("%{level} %{message}")
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	level := logging.WARNING
	switch {
	case debug:
		level = logging.DEBUG
	case verbose:
		level = logging.INFO
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
}

func run(inPath, outPath string, decode, canonical, showTree bool) error {
	in, err := fileio.OpenReader(inPath)
	if err != nil {
		return err
	}
	defer in.Close()

	if showTree {
		dumpFn := huffc.ShowTreeTraditional
		if canonical {
			dumpFn = huffc.ShowTreeCanonical
		}
		_, err := dumpFn(in, os.Stdout)
		return err
	}

	if outPath == "" {
		outPath = defaultOutPath(inPath, decode, canonical)
	}
	out, err := fileio.CreateWriter(outPath)
	if err != nil {
		return err
	}

	log.Infof("processing %s -> %s (decode=%v canonical=%v)", inPath, outPath, decode, canonical)

	switch {
	case decode && canonical:
		err = huffc.DecodeCanonical(in, out)
	case decode && !canonical:
		err = huffc.DecodeTraditional(in, out)
	case !decode && canonical:
		err = huffc.EncodeCanonical(in, out)
	default:
		err = huffc.EncodeTraditional(in, out)
	}
	return err
}

func defaultOutPath(inPath string, decode, canonical bool) string {
	suffix := ".hft"
	if canonical {
		suffix = ".hfc"
	}
	if decode {
		if len(inPath) > len(suffix) && inPath[len(inPath)-len(suffix):] == suffix {
			return inPath[:len(inPath)-len(suffix)]
		}
		return inPath + ".out"
	}
	return inPath + suffix
}
