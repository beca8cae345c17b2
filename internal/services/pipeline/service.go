package pipeline

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"holocron/internal/assemble"
	"holocron/internal/domain"
	"holocron/internal/episode"
	"holocron/internal/services/lookup"
)

// Step names, in run order.
const (
	StepEpisodes = "episodes"
	StepPlanet   = "planet"
	StepDroid    = "droid"
	StepPerson   = "person"
	StepStarship = "starship"
)

// Steps lists every step in the order Run executes them.
var Steps = []string{StepEpisodes, StepPlanet, StepDroid, StepPerson, StepStarship}

// ErrUnknownStep is returned by Run for a step name outside Steps.
var ErrUnknownStep = errors.New("unknown step")

// EpisodeSummary is what the episodes step reports.
type EpisodeSummary struct {
	Count       int
	Directors   int
	Writers     int
	MostViewed  *domain.Episode
	LeastViewed *domain.Episode
}

// Service runs pipeline steps against a data source, a SWAPI client and an
// artifact writer.
type Service struct {
	cfg    Config
	src    domain.DataSource
	out    domain.ArtifactWriter
	client domain.ResourceClient
	asm    *assemble.Assembler
	log    *zap.Logger

	supplements func() (lookup.Supplements, error)
	lookupOnce  sync.Once
	lookup      *lookup.Service
}

// New returns a pipeline service. Supplement files are read on first use.
func New(
	cfg Config,
	src domain.DataSource,
	out domain.ArtifactWriter,
	client domain.ResourceClient,
	asm *assemble.Assembler,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{cfg: cfg, src: src, out: out, client: client, asm: asm, log: log}
	s.supplements = sync.OnceValues(s.loadSupplements)
	return s
}

// Run executes steps in the given order, or every step when none are
// named, then writes the manifest. It stops at the first failing step.
func (s *Service) Run(ctx context.Context, steps ...string) (domain.Manifest, error) {
	if len(steps) == 0 {
		steps = Steps
	}
	for _, name := range steps {
		if !slices.Contains(Steps, name) {
			return domain.Manifest{}, fmt.Errorf("%w %q (want one of %s)", ErrUnknownStep, name, strings.Join(Steps, ", "))
		}
	}
	for _, name := range steps {
		if err := ctx.Err(); err != nil {
			return domain.Manifest{}, err
		}
		start := time.Now()
		if err := s.step(ctx, name); err != nil {
			return domain.Manifest{}, fmt.Errorf("step %s: %w", name, err)
		}
		s.log.Info("step done", zap.String("step", name), zap.Duration("took", time.Since(start)))
	}
	m, err := s.out.WriteManifest()
	if err != nil {
		return domain.Manifest{}, fmt.Errorf("write manifest: %w", err)
	}
	s.log.Info("run complete", zap.String("run_id", m.RunID), zap.Int("artifacts", len(m.Entries)))
	return m, nil
}

func (s *Service) step(ctx context.Context, name string) error {
	switch name {
	case StepEpisodes:
		_, err := s.Episodes(ctx)
		return err
	case StepPlanet:
		return s.planet(ctx)
	case StepDroid:
		return s.droid(ctx)
	case StepPerson:
		return s.person(ctx)
	case StepStarship:
		ship, err := s.Starship(ctx)
		if err != nil {
			return err
		}
		return s.write(s.cfg.Outputs.Starship, ship)
	}
	return fmt.Errorf("%w %q", ErrUnknownStep, name)
}

// Episodes converts the episode roster and writes the converted list,
// director counts and writer groupings.
func (s *Service) Episodes(ctx context.Context) (EpisodeSummary, error) {
	recs, err := s.src.CSVRecords(s.cfg.Inputs.Episodes)
	if err != nil {
		return EpisodeSummary{}, err
	}
	eps := s.asm.Episodes(recs)
	directors := episode.CountByDirector(eps)
	writers := episode.GroupByWriter(eps)

	if err := s.write(s.cfg.Outputs.Episodes, eps); err != nil {
		return EpisodeSummary{}, err
	}
	if err := s.write(s.cfg.Outputs.DirectorCounts, directors); err != nil {
		return EpisodeSummary{}, err
	}
	if err := s.write(s.cfg.Outputs.WriterEpisodes, writers); err != nil {
		return EpisodeSummary{}, err
	}

	sum := EpisodeSummary{Count: len(eps), Directors: directors.Len(), Writers: writers.Len()}
	if e, ok := episode.MostViewed(eps); ok {
		sum.MostViewed = &e
		s.log.Info("most viewed episode", zap.String("title", e.TitleOrEmpty()), zap.Float64("us_viewers_mm", *e.USViewersMM))
	}
	if e, ok := episode.LeastViewed(eps); ok {
		sum.LeastViewed = &e
		s.log.Info("least viewed episode", zap.String("title", e.TitleOrEmpty()), zap.Float64("us_viewers_mm", *e.USViewersMM))
	}
	if sum.MostViewed == nil {
		s.log.Warn("no episode has viewer data", zap.Int("episodes", len(eps)))
	}
	return sum, nil
}

func (s *Service) planet(ctx context.Context) error {
	lk, err := s.Lookup()
	if err != nil {
		return err
	}
	p, err := lk.Planet(ctx, s.cfg.Targets.Planet)
	if err != nil {
		return err
	}
	return s.write(s.cfg.Outputs.Planet, p)
}

func (s *Service) droid(ctx context.Context) error {
	lk, err := s.Lookup()
	if err != nil {
		return err
	}
	d, err := lk.Droid(ctx, s.cfg.Targets.Droid)
	if err != nil {
		return err
	}
	return s.write(s.cfg.Outputs.Droid, d)
}

func (s *Service) person(ctx context.Context) error {
	lk, err := s.Lookup()
	if err != nil {
		return err
	}
	p, err := lk.Person(ctx, s.cfg.Targets.Person)
	if err != nil {
		return err
	}
	return s.write(s.cfg.Outputs.Person, p)
}

// Starship builds the configured starship from the starships supplement and
// boards its crew and passengers. Boarding is skipped when none are
// configured.
func (s *Service) Starship(ctx context.Context) (domain.Starship, error) {
	t := s.cfg.Targets.Starship
	recs, err := s.src.CSVRecords(s.cfg.Inputs.Starships)
	if err != nil {
		return domain.Starship{}, err
	}
	rec, err := lookup.Find(recs, t.Name)
	if err != nil {
		return domain.Starship{}, fmt.Errorf("starship: %w", err)
	}
	ship, err := s.asm.Starship(rec)
	if err != nil {
		return domain.Starship{}, err
	}
	if len(t.Crew) == 0 && len(t.Passengers) == 0 {
		return ship, nil
	}

	lk, err := s.Lookup()
	if err != nil {
		return domain.Starship{}, err
	}
	if len(t.Crew) > 0 {
		refs := make([]string, len(t.Crew))
		for i, seat := range t.Crew {
			refs[i] = seat.Ref
		}
		members, err := lk.Members(ctx, refs)
		if err != nil {
			return domain.Starship{}, fmt.Errorf("crew: %w", err)
		}
		seats := make([]domain.Assignment, len(members))
		for i, m := range members {
			seats[i] = domain.Assignment{Role: t.Crew[i].Role, Member: m}
		}
		if err := ship.AssignCrew(domain.NewCrew(seats...)); err != nil {
			return domain.Starship{}, err
		}
	}
	if len(t.Passengers) > 0 {
		members, err := lk.Members(ctx, t.Passengers)
		if err != nil {
			return domain.Starship{}, fmt.Errorf("passengers: %w", err)
		}
		if err := ship.AddPassengers(domain.NewPassengers(members...)); err != nil {
			return domain.Starship{}, err
		}
	}
	var roles, boarded []string
	if ship.CrewMembers != nil {
		roles = ship.CrewMembers.Roles()
	}
	if ship.PassengersOnBoard != nil {
		boarded = ship.PassengersOnBoard.Keys()
	}
	s.log.Debug("starship boarded",
		zap.String("starship", ship.Name),
		zap.Strings("crew", roles),
		zap.Strings("passengers", boarded),
	)
	return ship, nil
}

// Lookup returns the enrichment service, reading the supplement files the
// first time it is called.
func (s *Service) Lookup() (*lookup.Service, error) {
	sup, err := s.supplements()
	if err != nil {
		return nil, err
	}
	s.lookupOnce.Do(func() {
		s.lookup = lookup.New(s.client, s.asm, sup, s.log.Named("lookup"))
	})
	return s.lookup, nil
}

func (s *Service) loadSupplements() (lookup.Supplements, error) {
	planets, err := s.src.CSVRecords(s.cfg.Inputs.Planets)
	if err != nil {
		return lookup.Supplements{}, fmt.Errorf("planet supplements: %w", err)
	}
	people, err := s.src.JSONRecords(s.cfg.Inputs.People)
	if err != nil {
		return lookup.Supplements{}, fmt.Errorf("people supplements: %w", err)
	}
	droids, err := s.src.JSONRecords(s.cfg.Inputs.Droids)
	if err != nil {
		return lookup.Supplements{}, fmt.Errorf("droid supplements: %w", err)
	}
	s.log.Debug("supplements loaded",
		zap.Int("planets", len(planets)),
		zap.Int("people", len(people)),
		zap.Int("droids", len(droids)),
	)
	return lookup.Supplements{People: people, Droids: droids, Planets: planets}, nil
}

func (s *Service) write(name string, v any) error {
	e, err := s.out.Write(name, v)
	if err != nil {
		return err
	}
	s.log.Debug("artifact written", zap.String("file", e.File), zap.Int("bytes", e.Bytes))
	return nil
}
