// Package aoc is a toolkit for solving Advent of Code grid puzzles: sparse
// grid parsing, state-space search, cycle-detecting simulation, and a runner
// that checks every part against the sample embedded in its doc comment.
// (forked from maisem/aoc, itself forked from bradfitz/aoc)
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// functions declared in src, keyed by function name. A sample without input
// reuses the previous sample's input in the same file.
func extractSamples(filename string, src []byte) (map[string]sample, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s to extract samples: %w", filename, err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// extractSamplesFS runs extractSamples over every .go file at the root of
// fsys.
func extractSamplesFS(fsys fs.FS) (map[string]sample, error) {
	samples := make(map[string]sample)
	if fsys == nil {
		return samples, nil
	}
	names, err := fs.Glob(fsys, "*.go")
	if err != nil {
		return nil, err
	}
	slices.Sort(names)
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		got, err := extractSamples(name, src)
		if err != nil {
			return nil, err
		}
		for k, v := range got {
			samples[k] = v
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Year returns the event year passed to Run. It is zero under Solve.
func (p *Puzzle) Year() int {
	return p.year
}

// Day returns the day number being solved.
func (p *Puzzle) Day() int {
	return p.day.day
}

// Input returns the puzzle input: the current part's sample in sample mode,
// otherwise the real input.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		s, ok := p.Sample()
		if !ok {
			panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
		}
		return []byte(s.input)
	}
	if p.input == nil {
		p.input = MustGet(os.ReadFile(InputPath(p.day.day)))
	}
	return p.input
}

// Text returns Input as a string.
func (p *Puzzle) Text() string {
	return string(p.Input())
}

// Lines returns the lines of Input without their line endings.
func (p *Puzzle) Lines() []string {
	text := strings.TrimRight(strings.ReplaceAll(p.Text(), "\r\n", "\n"), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

func (p *Puzzle) Debug(v ...any) {
	log.Debug().Int("day", p.Day()).Str("part", p.solver.Part).Msg(fmt.Sprint(v...))
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		log.Debug().Int("day", p.Day()).Str("part", p.solver.Part).Msgf(format, args...)
	}
}

func (p *Puzzle) Sample() (sample, bool) {
	s, ok := p.samples[p.solver.Name]
	return s, ok
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	method int // index into the solver's method set
	Part   string
	Name   string
}

var (
	partRx  = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// extractMethods finds the methods of x named D{day}p{part}. They must take
// no arguments and return either any or (any, error).
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := partRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		mt := v.Method(i).Type()
		okOut := mt.NumOut() == 1 || (mt.NumOut() == 2 && mt.Out(1) == errType)
		if mt.NumIn() != 0 || !okOut || mt.Out(0).Kind() != reflect.Interface {
			return nil, fmt.Errorf("solver method %s has signature %v; want func() any or func() (any, error)", mn, mt)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			method: i,
			Part:   matches[2],
			Name:   mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// attach points the solver's embedded *Puzzle at p.
func attach(slvr any, p *Puzzle) error {
	f := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !f.IsValid() || f.Type() != reflect.TypeOf(p) {
		return fmt.Errorf("solver %T must embed *aoc.Puzzle", slvr)
	}
	f.Set(reflect.ValueOf(p))
	return nil
}

// call runs one part. Panics inside the solver are returned as errors.
func call(slvr any, ps partSolver) (got any, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = fmt.Errorf("%s: %w", ps.Name, e)
			return
		}
		err = fmt.Errorf("%s: %v", ps.Name, r)
	}()
	out := reflect.ValueOf(slvr).Method(ps.method).Call(nil)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, fmt.Errorf("%s: %w", ps.Name, out[1].Interface().(error))
	}
	return out[0].Interface(), nil
}

// ErrNoDay is returned when a solver has no methods for the requested day.
var ErrNoDay = errors.New("aoc: day not implemented")

// Solve runs every part of day on input and returns the answers to parts 1
// and 2. b is nil when the day has a single part.
func Solve(slvr any, dayNum int, input []byte) (a, b any, err error) {
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, nil, err
	}
	d, ok := days[dayNum]
	if !ok {
		return nil, nil, fmt.Errorf("%w: day %d", ErrNoDay, dayNum)
	}
	p := &Puzzle{day: d, input: input}
	if err := attach(slvr, p); err != nil {
		return nil, nil, err
	}
	answers := make([]any, 0, len(d.parts))
	for _, ps := range d.parts {
		p.solver = ps
		got, err := call(slvr, ps)
		if err != nil {
			return nil, nil, err
		}
		answers = append(answers, got)
	}
	a = answers[0]
	if len(answers) > 1 {
		b = answers[1]
	}
	return a, b, nil
}

// SolveFile is Solve with the input read from path.
func SolveFile(slvr any, dayNum int, path string) (a, b any, err error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Solve(slvr, dayNum, input)
}

var (
	flagCurDay     int
	flagPart       string
	flagDebug      bool
	flagOnlySample bool
	flagSkipSample bool
	flagInputDir   string
)

func init() {
	flag.IntVar(&flagCurDay, "day", -1, "day to run")
	flag.BoolVar(&flagOnlySample, "sample", false, "only run sample")
	flag.BoolVar(&flagSkipSample, "skip-sample", false, "skip sample")
	flag.BoolVar(&flagDebug, "debug", false, "debug mode")
	flag.StringVar(&flagPart, "part", "", "part to run")
	flag.StringVar(&flagInputDir, "input-dir", "", "directory holding day<N>.txt inputs (default $AOC_INPUT_DIR or ./data)")
}

var initFlags = sync.OnceFunc(flag.Parse)

// InputPath returns where the real input for day is read from.
func InputPath(day int) string {
	dir := Or(flagInputDir, os.Getenv("AOC_INPUT_DIR"), "data")
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}

// runDay checks each part against its sample and then solves the real input.
// It reports false if a sample did not match or a part failed.
func runDay(slvr any, year int, day day, samples map[string]sample) bool {
	p := Puzzle{
		year:    year,
		day:     day,
		samples: samples,
	}
	fmt.Printf("Running %d day %d\n", p.Year(), p.Day())
	if err := attach(slvr, &p); err != nil {
		log.Error().Err(err).Msg("attaching puzzle")
		return false
	}
	for _, ps := range day.parts {
		p.solver = ps
		if flagPart != "" && ps.Part != flagPart {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && flagOnlySample {
				continue
			} else if sm && flagSkipSample {
				continue
			}
			p.SampleMode = sm
			s, hasSample := p.Sample()
			if sm && !hasSample {
				log.Debug().Str("part", ps.Name).Msg("no sample; skipping")
				continue
			}
			if !sm && p.input == nil {
				// Prime the input.
				in, err := os.ReadFile(InputPath(day.day))
				if err != nil {
					log.Error().Err(err).Int("day", day.day).Msg("reading input")
					return false
				}
				p.input = in
			}
			t0 := time.Now()
			got, err := call(slvr, ps)
			if err != nil {
				log.Error().Err(err).Bool("sample", sm).Msgf("part %s failed", ps.Part)
				return false
			}
			if sm {
				if fmt.Sprint(got) != s.want {
					fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, s.want)
					return false
				}
				fmt.Printf("part %s sample: %v ✅ (%v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return true
}

// CheckSamples runs every part that has a sample in src against it and
// returns an error describing each mismatch.
func CheckSamples(src fs.FS, slvr any) error {
	samples, err := extractSamplesFS(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}
	var errs []error
	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, dn := range dayNums {
		d := days[dn]
		p := &Puzzle{day: d, samples: samples, SampleMode: true}
		if err := attach(slvr, p); err != nil {
			return err
		}
		for _, ps := range d.parts {
			p.solver = ps
			s, ok := p.Sample()
			if !ok {
				continue
			}
			got, err := call(slvr, ps)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if fmt.Sprint(got) != s.want {
				errs = append(errs, fmt.Errorf("%s: got %v; want %v", ps.Name, got, s.want))
			}
		}
	}
	return errors.Join(errs...)
}

// Run solves the puzzles registered on slvr for year. Samples are read from
// the doc comments of the .go files in src. Flags select the day and part.
func Run(year int, src fs.FS, slvr any) {
	initFlags()
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	samples, err := extractSamplesFS(src)
	if err != nil {
		log.Fatal().Err(err).Msg("extracting samples")
	}
	days, err := extractMethods(slvr)
	if err != nil {
		log.Fatal().Err(err).Msg("registering solver")
	}

	if flagCurDay != -1 {
		day, ok := days[flagCurDay]
		if !ok {
			log.Fatal().Msgf("no day %d", flagCurDay)
		}
		if !runDay(slvr, year, day, samples) {
			os.Exit(1)
		}
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, day := range dayNums {
		runDay(slvr, year, days[day], samples)
		fmt.Println()
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}
