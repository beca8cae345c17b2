package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"holocron/internal/assemble"
	"holocron/internal/convert"
	"holocron/internal/domain"
)

// maxParallel bounds concurrent SWAPI lookups in Members.
const maxParallel = 4

// identity keys always come from SWAPI; a supplement matched by name may
// spell them differently.
var identity = []string{"url", "name"}

// Supplements holds the Wookieepedia records merged into SWAPI data.
type Supplements struct {
	People  []domain.Record
	Droids  []domain.Record
	Planets []domain.Record
}

// Service resolves SWAPI references into enriched entities.
type Service struct {
	client domain.ResourceClient
	asm    *assemble.Assembler
	sup    Supplements
	log    *zap.Logger
}

// New returns a lookup service.
func New(client domain.ResourceClient, asm *assemble.Assembler, sup Supplements, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{client: client, asm: asm, sup: sup, log: log}
}

// Planet fetches the planet at ref and merges its supplement.
func (s *Service) Planet(ctx context.Context, ref string) (domain.Planet, error) {
	rec, err := s.fetch(ctx, "planet", ref, s.sup.Planets)
	if err != nil {
		return domain.Planet{}, err
	}
	return s.asm.Planet(rec)
}

// Droid fetches the droid at ref and merges its supplement.
func (s *Service) Droid(ctx context.Context, ref string) (domain.Droid, error) {
	rec, err := s.fetch(ctx, "droid", ref, s.sup.Droids)
	if err != nil {
		return domain.Droid{}, err
	}
	return s.asm.Droid(rec)
}

// Person fetches the person at ref, merges its supplement and resolves the
// homeworld.
func (s *Service) Person(ctx context.Context, ref string) (domain.Person, error) {
	rec, err := s.fetch(ctx, "person", ref, s.sup.People, "homeworld")
	if err != nil {
		return domain.Person{}, err
	}
	return s.person(ctx, rec)
}

func (s *Service) person(ctx context.Context, rec domain.Record) (domain.Person, error) {
	var home *domain.Planet
	if ref, err := convert.String(rec["homeworld"]); err == nil {
		p, err := s.Planet(ctx, ref)
		if err != nil {
			return domain.Person{}, fmt.Errorf("homeworld: %w", err)
		}
		home = &p
	}
	return s.asm.Person(rec, home)
}

// Member fetches the resource at ref and returns a Droid when a droid
// supplement matches it, otherwise a Person.
func (s *Service) Member(ctx context.Context, ref string) (domain.Member, error) {
	raw, err := s.client.GetResource(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("member %s: %w", ref, err)
	}
	if sup := match(raw, s.sup.Droids); sup != nil {
		d, err := s.asm.Droid(raw.Merge(sup, identity...))
		if err != nil {
			return nil, err
		}
		return d, nil
	}
	rec := raw
	if sup := match(raw, s.sup.People); sup != nil {
		rec = raw.Merge(sup, append(identity, "homeworld")...)
	}
	p, err := s.person(ctx, rec)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Members resolves refs concurrently and returns them in ref order.
func (s *Service) Members(ctx context.Context, refs []string) ([]domain.Member, error) {
	out := make([]domain.Member, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)
	for i, ref := range refs {
		g.Go(func() error {
			m, err := s.Member(gctx, ref)
			if err != nil {
				return err
			}
			out[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// fetch returns the SWAPI record at ref overlaid with its supplement.
func (s *Service) fetch(ctx context.Context, kind, ref string, sups []domain.Record, skip ...string) (domain.Record, error) {
	raw, err := s.client.GetResource(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", kind, ref, err)
	}
	sup := match(raw, sups)
	if sup == nil {
		s.log.Debug("no supplement", zap.String("kind", kind), zap.Any("name", raw["name"]))
		return raw, nil
	}
	return raw.Merge(sup, append(skip, identity...)...), nil
}

// ErrNoMatch is returned by Find when no supplement matches.
var ErrNoMatch = errors.New("no matching record")

// Find returns the first record whose name equals name, ignoring case.
func Find(recs []domain.Record, name string) (domain.Record, error) {
	for _, rec := range recs {
		if n, err := convert.String(rec["name"]); err == nil && strings.EqualFold(n, strings.TrimSpace(name)) {
			return rec, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNoMatch, name)
}

// match finds the supplement for raw: same URL first, then same name.
func match(raw domain.Record, sups []domain.Record) domain.Record {
	if u, err := convert.String(raw["url"]); err == nil {
		for _, sup := range sups {
			if su, err := convert.String(sup["url"]); err == nil && sameURL(u, su) {
				return sup
			}
		}
	}
	if n, err := convert.String(raw["name"]); err == nil {
		if sup, err := Find(sups, n); err == nil {
			return sup
		}
	}
	return nil
}

func sameURL(a, b string) bool {
	norm := func(s string) string {
		s = strings.TrimSuffix(strings.TrimSpace(s), "/")
		s = strings.TrimPrefix(s, "https://")
		return strings.TrimPrefix(s, "http://")
	}
	return norm(a) == norm(b)
}
