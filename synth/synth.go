// Package synth replaces identifying fields of a stay record with
// synthetic values drawn from a single seeded stream.
//
// Every enriched row consumes the stream in this order:
//
//  1. a name pool row for the first name and its gender
//  2. an independent name pool row for the last name
//  3. the birth date offset, 0 to 364 days
//  4. a hospital name, only when the hospital pool is non-empty
//
// The same seed, pool and input therefore always produce the same output.
//
// A February 29 admission date in a non-leap year logs a warning and the
// birth date falls back to February 28. The fallback covers only the birth
// date: the admission date itself is still rejected when the date
// dimension is built, which fails the build.
package synth

import (
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"stay_loader/calendar"
	"stay_loader/errs"
	"stay_loader/source"
)

// MaxBirthOffset bounds the days subtracted from the latest plausible
// birth date. 364 keeps the result inside a single year of age even when
// the span crosses February 29.
const MaxBirthOffset = 364

// Identity is a synthesized person.
type Identity struct {
	First  string
	Last   string
	Gender string
}

// Name joins the first and last name.
func (id Identity) Name() string {
	return id.First + " " + id.Last
}

// Enriched is a source record with Name, Gender and (when a hospital pool
// is configured) Hospital replaced, plus a synthesized birth date.
type Enriched struct {
	source.Record
	BirthDate calendar.Date
}

type Options struct {
	Seed      uint64
	Names     []source.NameEntry
	Hospitals []string
	Logger    zerolog.Logger
	// OnLeapDayFallback is called for each impossible February 29
	// reference date. Optional.
	OnLeapDayFallback func()
}

type Synthesizer struct {
	rng       *rand.Rand
	names     []source.NameEntry
	hospitals []string
	log       zerolog.Logger
	onLeapDay func()
}

// New returns a synthesizer seeded with opts.Seed. An empty name pool is a
// configuration error.
func New(opts Options) (*Synthesizer, error) {
	if len(opts.Names) == 0 {
		return nil, errs.Configurationf("name pool is empty")
	}
	return &Synthesizer{
		rng:       rand.New(rand.NewPCG(opts.Seed, 0)),
		names:     opts.Names,
		hospitals: opts.Hospitals,
		log:       opts.Logger,
		onLeapDay: opts.OnLeapDayFallback,
	}, nil
}

// SynthesizeIdentity draws a first name with its recorded gender, then an
// unrelated last name, both from pool.
func (s *Synthesizer) SynthesizeIdentity(pool []source.NameEntry) (Identity, error) {
	if len(pool) == 0 {
		return Identity{}, errs.Configurationf("name pool is empty")
	}
	first := pool[s.rng.IntN(len(pool))]
	last := pool[s.rng.IntN(len(pool))]
	return Identity{First: first.First, Last: last.Last, Gender: first.Gender}, nil
}

// SynthesizeBirthDate returns a birth date for someone aged age on ref:
// the latest plausible date minus a uniform 0..MaxBirthOffset day offset.
func (s *Synthesizer) SynthesizeBirthDate(age int, ref calendar.Date) (calendar.Date, error) {
	return s.birthDate(age, ref, 0)
}

// SynthesizeHospital draws a hospital name. ok is false when no hospital
// pool is configured; nothing is drawn in that case.
func (s *Synthesizer) SynthesizeHospital() (name string, ok bool) {
	if len(s.hospitals) == 0 {
		return "", false
	}
	return s.hospitals[s.rng.IntN(len(s.hospitals))], true
}

// Enrich synthesizes one row. The admission date is the reference date
// for the birth date.
func (s *Synthesizer) Enrich(rec source.Record) (Enriched, error) {
	id, err := s.SynthesizeIdentity(s.names)
	if err != nil {
		return Enriched{}, err
	}
	birth, err := s.birthDate(rec.Age, rec.AdmissionDate, rec.Row)
	if err != nil {
		return Enriched{}, err
	}

	out := Enriched{Record: rec, BirthDate: birth}
	out.Name = id.Name()
	out.Gender = id.Gender
	if h, ok := s.SynthesizeHospital(); ok {
		out.Hospital = h
	}
	return out, nil
}

// EnrichAll enriches records in order, stopping at the first error.
func (s *Synthesizer) EnrichAll(records []source.Record) ([]Enriched, error) {
	out := make([]Enriched, 0, len(records))
	for _, rec := range records {
		e, err := s.Enrich(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Synthesizer) birthDate(age int, ref calendar.Date, row int) (calendar.Date, error) {
	latest, err := s.latestBirthDate(age, ref, row)
	if err != nil {
		return calendar.Date{}, err
	}
	return latest.AddDays(-s.rng.IntN(MaxBirthOffset + 1)), nil
}

// LatestBirthDate is ref shifted back age years, with February 29 mapped
// onto the target year.
func LatestBirthDate(age int, ref calendar.Date) (calendar.Date, error) {
	return latest(age, ref, nil)
}

func (s *Synthesizer) latestBirthDate(age int, ref calendar.Date, row int) (calendar.Date, error) {
	return latest(age, ref, func() {
		ev := s.log.Warn().Str("reference_date", ref.String()).Int("age", age)
		if row > 0 {
			ev = ev.Int("row", row)
		}
		ev.Msg("reference date is February 29 of a non-leap year, using February 28")
		if s.onLeapDay != nil {
			s.onLeapDay()
		}
	})
}

func latest(age int, ref calendar.Date, warn func()) (calendar.Date, error) {
	if age < 0 {
		return calendar.Date{}, errs.Validationf("age %d is negative", age)
	}
	if !ref.Valid() && !ref.IsLeapDay() {
		return calendar.Date{}, errs.Validationf("reference date %s is not a calendar date", ref)
	}

	target := ref.Year - age
	if !ref.IsLeapDay() {
		return calendar.New(target, ref.Month, ref.Day), nil
	}
	if !calendar.IsLeap(ref.Year) {
		if warn != nil {
			warn()
		}
		return calendar.New(target, time.February, 28), nil
	}
	if calendar.IsLeap(target) {
		return calendar.New(target, time.February, 29), nil
	}
	return calendar.New(target, time.February, 28), nil
}
