// Command citycheck runs integrity checks over a list of city names: the
// validation rules, the keystroke filter, and the weather derivation. An
// optional golden file, as written by `forecast -json`, pins exact bundles.
//
// The city file holds one name per line. Blank lines and lines starting with
// '#' are skipped; a line starting with '!' must be rejected.
//
// Usage:
//
//	go run ./cmd/citycheck -file testdata/cities.txt
//	go run ./cmd/citycheck -file testdata/cities.txt -golden testdata/golden.json
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
)

// entry is one line of the city file.
type entry struct {
	lineNum      int
	raw          string
	expectReject bool
}

type goldenRecord struct {
	Bundle domain.Bundle `json:"bundle"`
}

// phase tracks pass/fail for a check phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	file := flag.String("file", "", "city list, one name per line")
	golden := flag.String("golden", "", "optional JSON from `forecast -json` to compare against")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*file, *golden); code != 0 {
		os.Exit(code)
	}
}

func run(path, goldenPath string) int {
	fmt.Println("=== City Name Integrity Check ===")
	fmt.Println()

	entries, err := loadEntries(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load city file: %v\n", err)
		return 1
	}

	phases := []*phase{
		checkValidation(entries),
		checkFilterAgreement(entries),
		checkDerivation(entries),
	}

	if goldenPath != "" {
		records, err := loadJSON[goldenRecord](goldenPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FATAL: load golden JSON: %v\n", err)
			return 1
		}
		phases = append(phases, checkGolden(records))
	}

	allPassed := true
	for _, p := range phases {
		status := "\033[32mPASS\033[0m"
		if !p.passed() {
			status = fmt.Sprintf("\033[31mFAIL (%d errors)\033[0m", len(p.errors))
			allPassed = false
		}
		fmt.Printf("  %-36s %s\n", p.name, status)
	}

	fmt.Println()
	fmt.Printf("Cities: %d checked from %s\n", len(entries), path)

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Printf("\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Printf("  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Println("\nAll checks passed.")
		return 0
	}
	fmt.Println("\nCheck FAILED.")
	return 1
}

// ── Data loading ──

func loadEntries(path string) ([]entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []entry
	sc := bufio.NewScanner(f)
	for n := 1; sc.Scan(); n++ {
		line := sc.Text()
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e := entry{lineNum: n, raw: line}
		if rest, ok := strings.CutPrefix(line, "!"); ok {
			e.raw = rest
			e.expectReject = true
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no cities in %s", path)
	}
	return entries, nil
}

func loadJSON[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return out, nil
}

// ── Phases ──

// checkValidation confirms every line is accepted or rejected as marked.
func checkValidation(entries []entry) *phase {
	p := &phase{name: "Validation expectations"}
	for _, e := range entries {
		_, err := domain.Validate(e.raw)
		switch {
		case e.expectReject && err == nil:
			p.errorf("line %d: %q accepted, expected rejection", e.lineNum, e.raw)
		case !e.expectReject && err != nil:
			p.errorf("line %d: %q rejected: %v", e.lineNum, e.raw, err)
		}
	}
	return p
}

// checkFilterAgreement confirms typing an accepted name character by
// character passes the keystroke filter unchanged.
func checkFilterAgreement(entries []entry) *phase {
	p := &phase{name: "Keystroke filter agreement"}
	for _, e := range entries {
		if e.expectReject {
			continue
		}
		for _, r := range e.raw {
			if !domain.IsCityRune(r) {
				p.errorf("line %d: %q: filter blocks %q", e.lineNum, e.raw, r)
				break
			}
		}
	}
	return p
}

// checkDerivation confirms bundles are deterministic, case-insensitive and
// within range.
func checkDerivation(entries []entry) *phase {
	p := &phase{name: "Weather derivation"}
	for _, e := range entries {
		city, err := domain.Validate(e.raw)
		if err != nil {
			continue
		}
		b := domain.Generate(city)

		if diff := cmp.Diff(b, domain.Generate(city)); diff != "" {
			p.errorf("line %d: %q not deterministic:\n%s", e.lineNum, e.raw, diff)
		}
		other := domain.MustCity(strings.ToLower(e.raw))
		if diff := cmp.Diff(b, domain.Generate(other)); diff != "" {
			p.errorf("line %d: %q differs by letter case:\n%s", e.lineNum, e.raw, diff)
		}

		pf := func(format string, args ...any) {
			p.errorf("line %d: %q: %s", e.lineNum, e.raw, fmt.Sprintf(format, args...))
		}
		checkRanges(pf, &b)
	}
	return p
}

func checkRanges(pf func(string, ...any), b *domain.Bundle) {
	if b.TemperatureF < 50 || b.TemperatureF > 89 {
		pf("temperature %d outside 50..89", b.TemperatureF)
	}
	if b.UVIndex < 0 || b.UVIndex > 10 {
		pf("uv index %d outside 0..10", b.UVIndex)
	}
	if b.UVLevel != domain.LevelForUV(b.UVIndex) {
		pf("uv level %s does not match index %d", b.UVLevel, b.UVIndex)
	}
	if b.Commute != domain.CommuteFor(b.Condition) {
		pf("commute %s does not match condition %s", b.Commute, b.Condition)
	}
	for i, d := range b.Forecast {
		if d.Label != domain.ForecastDays[i] {
			pf("card %d labelled %q", i, d.Label)
		}
		if d.LowF >= d.HighF {
			pf("%s: low %d not below high %d", d.Label, d.LowF, d.HighF)
		}
		if d.Transport != domain.SuggestTransport(d.Condition, d.HighF, d.LowF) {
			pf("%s: transport %q does not follow the rules", d.Label, d.Transport)
		}
	}
}

// checkGolden regenerates every golden bundle from its city and diffs it.
func checkGolden(records []goldenRecord) *phase {
	p := &phase{name: "Golden bundles"}
	for i, rec := range records {
		city, err := domain.Validate(rec.Bundle.City)
		if err != nil {
			p.errorf("record %d: golden city %q invalid: %v", i, rec.Bundle.City, err)
			continue
		}
		if diff := cmp.Diff(rec.Bundle, domain.Generate(city)); diff != "" {
			p.errorf("record %d (%s) (-golden +generated):\n%s", i, rec.Bundle.City, diff)
		}
	}
	return p
}
