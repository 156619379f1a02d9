// secsdump decodes SECS-II messages and prints them as SML.
//
// It reads hex-encoded bytes from its arguments, or from stdin when no
// argument is given, decodes every message found in the buffer, and writes
// the SML form of each to stdout. Whitespace in the hex input is ignored,
// so captures pasted from logs work as-is.
//
// Usage:
//
//	secsdump 0104A50201020101A502010241036D7367A500
//	cat capture.hex | secsdump -indent 2 -v
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/go-secs2/logger"
	"github.com/arloliu/go-secs2/secs2"
	"github.com/arloliu/go-secs2/sml"
)

var log logger.Logger

func main() {
	indentWidth := flag.Int("indent", sml.DefaultIndentWidth, "spaces per nesting level in SML output")
	maxDepth := flag.Int("max-depth", secs2.DefaultMaxDepth, "maximum list nesting depth accepted while decoding")
	verbose := flag.Bool("v", false, "enable debug-level decode tracing")
	flag.Parse()

	level := logger.InfoLevel
	if *verbose {
		level = logger.DebugLevel
	}
	log = logger.NewSlog(level, false)

	data, err := readInput(flag.Args())
	if err != nil {
		log.Fatal("failed to read input", "error", err)
	}

	opts := []secs2.DecodeOption{secs2.WithMaxDepth(*maxDepth)}
	if *verbose {
		opts = append(opts, secs2.WithLogger(log))
	}

	for pos := 0; pos < len(data); {
		msg, consumed, err := secs2.Decode(data[pos:], opts...)
		if err != nil {
			log.Fatal("failed to decode message", "offset", pos, "error", err)
		}

		fmt.Println(sml.Render(msg, sml.WithIndentWidth(*indentWidth)))
		pos += consumed
	}
}

// readInput gathers the hex text from args or stdin and decodes it to raw
// bytes, tolerating any interior whitespace.
func readInput(args []string) ([]byte, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, "")
	} else {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		text = string(raw)
	}

	text = strings.Join(strings.Fields(text), "")
	if text == "" {
		return nil, fmt.Errorf("no input")
	}

	data, err := hex.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("input is not valid hex: %w", err)
	}

	return data, nil
}
