// Command forecast prints the synthetic weather card for each city given on
// the command line, without opening a window.
//
// Usage:
//
//	go run ./cmd/forecast "New York" London
//	go run ./cmd/forecast -json Paris
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/couchcryptid/urban-pulse-widget/internal/adapter/terminal"
	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
	"github.com/couchcryptid/urban-pulse-widget/internal/widget"
)

type output struct {
	Bundle domain.Bundle `json:"bundle"`
	View   widget.View   `json:"view"`
}

func main() {
	asJSON := flag.Bool("json", false, "print bundles as JSON instead of cards")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if code := run(flag.Args(), *asJSON); code != 0 {
		os.Exit(code)
	}
}

func run(cities []string, asJSON bool) int {
	code := 0
	var results []output //nolint:prealloc // invalid cities are skipped

	for _, raw := range cities {
		city, err := domain.Validate(raw)
		if err != nil {
			fmt.Fprintln(os.Stderr, terminal.RenderError(err))
			code = 1
			continue
		}

		b := domain.Generate(city)
		if asJSON {
			results = append(results, output{Bundle: b, View: widget.Render(b)})
			continue
		}
		fmt.Println(terminal.Render(widget.Render(b)))
	}

	if asJSON && len(results) > 0 {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			return 1
		}
	}
	return code
}
