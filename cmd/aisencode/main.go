// Command aisencode builds an AIS message from field=value pairs and
// prints the resulting AIVDM-armored payload.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"github.com/rolker/noaadata/ais"
	"github.com/rolker/noaadata/bitstream"
	"github.com/rolker/noaadata/sixbit"
)

func main() {
	classID := pflag.Uint8P("class", "c", 0, "Message class number (e.g. 9 for SAR Aircraft Position Report).")
	sets := pflag.StringArrayP("set", "s", nil, "A field=value pair; repeat for each field. May be given multiple times.")
	help := pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: aisencode --class <n> --set Field=Value [--set Field=Value ...]")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *help {
		pflag.Usage()
		return
	}

	logger := log.New(os.Stderr)

	class, ok := ais.ClassByID(*classID)
	if !ok {
		logger.Fatal("unknown message class", "class", *classID)
	}

	input, err := parseFields(*sets)
	if err != nil {
		logger.Fatal("invalid --set", "err", err)
	}

	var bits = encode(logger, class, *classID, input)

	payload, pad := sixbit.ToArmor(bits)
	fmt.Printf("%s,%d\n", payload, pad)
}

func encode(logger *log.Logger, class ais.MessageClass, classID uint8, input map[string]any) *bitstream.Buffer {
	if classID == 24 {
		buf, err := ais.EncodeStaticDataReport(input)
		if err != nil {
			logger.Fatal("encode failed", "err", err)
		}
		return buf
	}
	buf, err := ais.Encode(class, input)
	if err != nil {
		logger.Fatal("encode failed", "err", err)
	}
	return buf
}

// parseFields turns "Name=Value" strings into a typed input record,
// guessing int/float/bool from the literal text and falling back to
// string for anything else (e.g. vessel names and call signs).
func parseFields(sets []string) (map[string]any, error) {
	out := make(map[string]any, len(sets))
	for _, kv := range sets {
		name, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("%q is not of the form Field=Value", kv)
		}
		out[name] = guessType(value)
	}
	return out, nil
}

func guessType(s string) any {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
