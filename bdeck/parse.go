package bdeck

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/bdeck-climatology/observability"
)

const (
	// timestampLayout is the deck's YYYYMMDDHH timestamp.
	timestampLayout = "2006010215"

	// minLineFields is the shortest line worth parsing: everything
	// through the wind field.
	minLineFields = 9

	// longFormatFields is the field count above which a line is
	// treated as long format.
	longFormatFields = 20
)

// nonTropicalNatures are the type codes dropped by the tropical-only
// filter: subtropical storm, subtropical depression, extratropical.
var nonTropicalNatures = map[string]bool{
	"SS": true,
	"SD": true,
	"EX": true,
}

// ReadOptions control filtering and instrumentation for a single read.
// The zero value keeps every record and stays silent.
type ReadOptions struct {
	// FormalOnly keeps only fixes at the formal advisory hours 00,
	// 06, 12, and 18 UTC, dropping intermediate and special points
	// such as landfall markers.
	FormalOnly bool

	// TropicalOnly drops long-format fixes typed subtropical or
	// extratropical (SS, SD, EX). Short-format lines carry no usable
	// type code and always pass.
	TropicalOnly bool

	Logger  *slog.Logger           // nil discards
	Metrics *observability.Metrics // nil disables instrumentation
}

func (o ReadOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return observability.Discard()
}

// Parse reads an entire deck from r and returns its records in file
// order along with the accumulated per-file metadata.
//
// Malformed input degrades instead of failing: unparseable numeric
// fields become [Sentinel], lines too short to hold a fix are
// skipped, and mismatched radii continuation lines are consumed and
// discarded. The returned error is non-nil only when reading from r
// itself fails.
func Parse(r io.Reader, opts ReadOptions) ([]Record, Metadata, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, Metadata{}, err
	}

	p := &parser{
		cur:    cursor{lines: lines},
		opts:   opts,
		logger: opts.logger(),
		met:    opts.Metrics,
		meta:   Metadata{MinPressure: 9999},
	}
	p.run()

	if p.met != nil && p.malformed > 0 {
		p.met.MalformedFields.Add(float64(p.malformed))
	}
	p.meta.ReadAt = clock.Now()

	return p.records, p.meta, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deck lines: %w", err)
	}
	return lines, nil
}

// cursor walks deck lines with explicit consumption so the radii
// lookahead can take continuation lines off the stream. A consumed
// line is never handed out again, matched or not.
type cursor struct {
	lines []string
	pos   int
}

// next returns the next line and its 1-based line number.
func (c *cursor) next() (string, int, bool) {
	if c.pos >= len(c.lines) {
		return "", 0, false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, c.pos, true
}

type parser struct {
	cur    cursor
	opts   ReadOptions
	logger *slog.Logger
	met    *observability.Metrics

	records   []Record
	meta      Metadata
	line      int // 1-based number of the line being parsed
	malformed int

	// lastName carries the most recently seen storm name forward, so
	// a new peak on a line without one still records a name.
	lastName string
	nameSeen bool
}

func (p *parser) run() {
	for {
		line, n, ok := p.cur.next()
		if !ok {
			return
		}
		p.line = n

		rec, ok := p.parseLine(line)
		if !ok {
			continue
		}

		if p.met != nil {
			p.met.RecordsParsed.Inc()
		}
		p.records = append(p.records, rec)
		p.accumulate(rec)
	}
}

// parseLine turns one deck line into a Record, consuming any radii
// continuation lines that belong to it. ok is false when the line is
// filtered out or unusable.
func (p *parser) parseLine(line string) (rec Record, ok bool) {
	fields := strings.Split(line, ",")
	if len(fields) < minLineFields {
		p.logger.Debug("skipping short deck line", "line", p.line, "fields", len(fields))
		return Record{}, false
	}

	timeRaw := strings.TrimSpace(fields[2])
	if p.opts.FormalOnly && !formalAdvisory(timeRaw) {
		p.filtered("advisory")
		return Record{}, false
	}

	longFormat := len(fields) > longFormatFields
	if p.opts.TropicalOnly && longFormat && nonTropicalNatures[strings.TrimSpace(fields[10])] {
		p.filtered("nature")
		return Record{}, false
	}

	ts, err := time.Parse(timestampLayout, timeRaw)
	if err != nil {
		p.logger.Warn("skipping fix with unparseable timestamp", "line", p.line, "timestamp", timeRaw)
		p.malformed++
		return Record{}, false
	}

	rec = Record{
		Basin:      strings.TrimSpace(fields[0]),
		Number:     p.intField(fields, 1),
		Time:       ts,
		TimeRaw:    timeRaw,
		TechNum:    strings.TrimSpace(fields[3]),
		TechCode:   strings.TrimSpace(fields[4]),
		Tau:        p.intField(fields, 5),
		Lat:        p.hemisphereField(fields[6], 'S'),
		Lon:        p.hemisphereField(fields[7], 'W'),
		Wind:       p.intField(fields, 8),
		LongFormat: longFormat,
	}

	if len(fields) > 9 {
		pres := p.intField(fields, 9)
		rec.Pressure = &pres
	}
	if len(fields) > 10 {
		raw := strings.TrimSpace(fields[10])
		rec.RawCategory = &raw
	}
	rec.Category = ClassifyCategory(rec.Wind, derefOrEmpty(rec.RawCategory))

	if longFormat {
		if rec.Wind > 34 {
			rec.R34 = p.radiiFields(fields)
		}
		rec.LCIPressure = p.intField(fields, 17)
		rec.LCIRadius = p.intField(fields, 18)
		rec.RMW = p.intField(fields, 19)

		if len(fields) > 28 {
			rec.Name = strings.TrimSpace(fields[27])
			rec.Depth = strings.TrimSpace(fields[28])
			p.lastName = rec.Name
			p.nameSeen = true
		}

		// Continuation lines restate the fix once per higher wind
		// threshold. Both reads consume their line even on a
		// timestamp mismatch.
		if rec.Wind >= 50 {
			rec.R50 = p.consumeRadii(rec.TimeRaw)
		}
		if rec.Wind > 64 {
			rec.R64 = p.consumeRadii(rec.TimeRaw)
		}
	}

	return rec, true
}

// consumeRadii takes the next line off the stream expecting a radii
// continuation for the fix at wantTime. On a timestamp mismatch the
// line is discarded and the fix keeps nil radii for this threshold.
func (p *parser) consumeRadii(wantTime string) *Radii {
	line, n, ok := p.cur.next()
	if !ok {
		return nil
	}

	fields := strings.Split(line, ",")
	var ts string
	if len(fields) > 2 {
		ts = strings.TrimSpace(fields[2])
	}
	if ts != wantTime {
		p.logger.Warn("discarding mismatched radii continuation",
			"line", n, "want", wantTime, "got", ts)
		if p.met != nil {
			p.met.RadiiDiscarded.Inc()
		}
		return nil
	}

	return p.radiiFields(fields)
}

func (p *parser) radiiFields(fields []string) *Radii {
	return &Radii{
		NE: p.intField(fields, 13),
		SE: p.intField(fields, 14),
		SW: p.intField(fields, 15),
		NW: p.intField(fields, 16),
	}
}

// accumulate folds one fix into the per-file metadata. Ties on peak
// wind extend PeakTimes but keep the name from the first peak.
func (p *parser) accumulate(rec Record) {
	switch {
	case rec.Wind > p.meta.MaxWind:
		p.meta.MaxWind = rec.Wind
		p.meta.PeakTimes = []time.Time{rec.Time}
		if p.nameSeen {
			p.meta.Name = p.lastName
		}
	case rec.Wind == p.meta.MaxWind:
		p.meta.PeakTimes = append(p.meta.PeakTimes, rec.Time)
	}

	if rec.Pressure != nil && *rec.Pressure < p.meta.MinPressure {
		p.meta.MinPressure = *rec.Pressure
	}

	p.meta.FullCode = fmt.Sprintf("%s%02d", rec.Basin, rec.Number)
}

func (p *parser) filtered(reason string) {
	if p.met != nil {
		p.met.RecordsFiltered.WithLabelValues(reason).Inc()
	}
}

// intField parses fields[i] as an integer, counting a malformed or
// missing field and substituting the sentinel.
func (p *parser) intField(fields []string, i int) int {
	if i >= len(fields) {
		p.malformed++
		return Sentinel
	}
	v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
	if err != nil {
		p.logger.Debug("malformed integer field", "line", p.line, "index", i, "value", fields[i])
		p.malformed++
		return Sentinel
	}
	return v
}

// hemisphereField parses a tenths-of-degrees coordinate with a
// hemisphere suffix, negating when the suffix matches negSuffix
// ('S' for latitude, 'W' for longitude).
func (p *parser) hemisphereField(field string, negSuffix byte) float64 {
	s := strings.TrimSpace(field)
	if s == "" {
		p.malformed++
		return float64(Sentinel) / 10
	}

	v, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		p.logger.Debug("malformed coordinate field", "line", p.line, "value", field)
		p.malformed++
		v = Sentinel
	}

	if s[len(s)-1] == negSuffix {
		return -float64(v) / 10
	}
	return float64(v) / 10
}

// formalAdvisory reports whether a YYYYMMDDHH timestamp falls on one
// of the four formal advisory hours.
func formalAdvisory(timestamp string) bool {
	if len(timestamp) < 2 {
		return false
	}
	switch timestamp[len(timestamp)-2:] {
	case "00", "06", "12", "18":
		return true
	}
	return false
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
