package main

import (
	"context"
	"fmt"
	"io"
	"slices"

	"sanctuary/internal/cast"
	"sanctuary/internal/core"
	"sanctuary/pkg/domain"
)

// wildProbes are the literal species names the demo checks with IsWild.
var wildProbes = []string{"dolphin", "eagle", "snake", "horse"}

func runDemo(ctx context.Context, w io.Writer, svc *core.Service) error {
	c, err := cast.Default()
	if err != nil {
		return err
	}
	specimens, err := c.BuildAll()
	if err != nil {
		return err
	}
	for _, s := range specimens {
		if _, err := svc.Admit(ctx, s); err != nil {
			return fmt.Errorf("admit %s: %w", s.Name(), err)
		}
	}

	p := printer{w: w}
	p.section("Animal Interactions")
	for _, s := range specimens {
		desc, err := svc.Interact(ctx, s)
		if err != nil {
			return err
		}
		p.line(desc)
	}

	p.section("Animal Population & Wild Status")
	p.line(domain.PopAmount())
	for _, species := range wildProbes {
		p.line(domain.IsWild(species))
	}

	for _, s := range actionOrder(specimens) {
		title, lines := actions(s)
		p.section(title)
		for _, l := range lines {
			p.line(l)
		}
	}

	records, err := svc.Roster(ctx)
	if err != nil {
		return err
	}
	p.section("Sanctuary Roster")
	for _, rec := range records {
		p.line(fmt.Sprintf("Animal Name: %s | Species: %s | Category: %s", rec.Name, rec.Species, rec.Category))
	}
	return p.err
}

// actionOrder returns specimens with birds first, then mammals, then
// reptiles, keeping cast order within a category.
func actionOrder(specimens []domain.Specimen) []domain.Specimen {
	rank := map[domain.Category]int{
		domain.CategoryBird:    0,
		domain.CategoryMammal:  1,
		domain.CategoryReptile: 2,
	}
	out := slices.Clone(specimens)
	slices.SortStableFunc(out, func(a, b domain.Specimen) int {
		return rank[a.Category()] - rank[b.Category()]
	})
	return out
}

// actions lists the behaviors demonstrated for each variant.
func actions(s domain.Specimen) (string, []string) {
	switch v := s.(type) {
	case *domain.EndangeredFlyingBird:
		return "Endangered Bird Actions", []string{
			v.IsSoaring(), v.IsDiving(), v.Flying(), v.Describe(), v.Eating(), v.Sleeping(), v.Status(),
		}
	case *domain.FlyingBird:
		return "Flying Bird Actions", []string{
			v.IsSoaring(), v.IsDiving(), v.Flying(), v.Describe(), v.Eating(), v.Sleeping(),
		}
	case *domain.Bird:
		return "Bird Actions", []string{v.Running(), v.Describe(), v.Eating(), v.Sleeping()}
	case *domain.Mammal:
		return "Mammal Actions", []string{v.Swimming(), v.Describe(), v.Eating(), v.Sleeping()}
	case *domain.Reptile:
		return "Reptile Actions", []string{v.Slithering(), v.Describe(), v.Eating(), v.Sleeping()}
	default:
		return s.Name() + " Actions", []string{s.Describe()}
	}
}

// printer writes ordered lines and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) section(title string) {
	p.line("\n--- " + title + " ---")
}

func (p *printer) line(v any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, v)
}
