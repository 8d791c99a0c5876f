// Package memory provides an in-process store guarded by a single RWMutex.
// It is the default backend; records live for the process lifetime only.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/solacehq/solace-server/internal/model"
	"github.com/solacehq/solace-server/internal/store"
)

type memStore struct {
	mu sync.RWMutex

	profiles    map[string]*model.Profile
	assessments map[string]*model.Assessment
	guides      map[string]*model.Guide

	// profile id -> child ids, non-owning back-references
	profileAssessments map[string][]string
	profileGuides      map[string][]string
}

// New constructs an empty in-memory store.
func New() store.Store {
	return &memStore{
		profiles:           make(map[string]*model.Profile),
		assessments:        make(map[string]*model.Assessment),
		guides:             make(map[string]*model.Guide),
		profileAssessments: make(map[string][]string),
		profileGuides:      make(map[string][]string),
	}
}

func (s *memStore) Profiles() store.Profiles       { return &profiles{s} }
func (s *memStore) Assessments() store.Assessments { return &assessments{s} }
func (s *memStore) Guides() store.Guides           { return &guides{s} }

// HealthPing implements health.HealthPinger; the map store is always reachable.
func (s *memStore) HealthPing(ctx context.Context) error { return nil }

// --- Profiles ---

type profiles struct{ s *memStore }

func (p *profiles) Create(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	out := *in
	out.ProfileID = store.NewID(store.ProfilePrefix)
	out.CreationTime = time.Now().UTC()
	p.s.profiles[out.ProfileID] = &out
	return &out, nil
}

func (p *profiles) Get(ctx context.Context, profileID string) (*model.Profile, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	rec, ok := p.s.profiles[profileID]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (p *profiles) List(ctx context.Context) ([]*model.Profile, error) {
	p.s.mu.RLock()
	defer p.s.mu.RUnlock()

	out := make([]*model.Profile, 0, len(p.s.profiles))
	for _, rec := range p.s.profiles {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (p *profiles) Update(ctx context.Context, in *model.Profile) (*model.Profile, error) {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	prev, ok := p.s.profiles[in.ProfileID]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *in
	out.CreationTime = prev.CreationTime
	p.s.profiles[out.ProfileID] = &out
	return &out, nil
}

func (p *profiles) Delete(ctx context.Context, profileID string) error {
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, ok := p.s.profiles[profileID]; !ok {
		return model.ErrNotFound
	}
	delete(p.s.profiles, profileID)
	return nil
}

// --- Assessments ---

type assessments struct{ s *memStore }

func (a *assessments) Create(ctx context.Context, in *model.Assessment) (*model.Assessment, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	out := *in
	out.AssessmentID = store.NewID(store.AssessmentPrefix)
	out.CreationTime = time.Now().UTC()
	a.s.assessments[out.AssessmentID] = &out
	a.s.profileAssessments[out.ProfileID] = append(a.s.profileAssessments[out.ProfileID], out.AssessmentID)
	return &out, nil
}

func (a *assessments) Get(ctx context.Context, assessmentID string) (*model.Assessment, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	rec, ok := a.s.assessments[assessmentID]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (a *assessments) List(ctx context.Context) ([]*model.Assessment, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	out := make([]*model.Assessment, 0, len(a.s.assessments))
	for _, rec := range a.s.assessments {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (a *assessments) ListByProfile(ctx context.Context, profileID string) ([]*model.Assessment, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()

	out := make([]*model.Assessment, 0)
	for _, id := range a.s.profileAssessments[profileID] {
		if rec, ok := a.s.assessments[id]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// --- Guides ---

type guides struct{ s *memStore }

func (g *guides) Create(ctx context.Context, in *model.Guide) (*model.Guide, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	out := *in
	out.GuideID = store.NewID(store.GuidePrefix)
	out.CreationTime = time.Now().UTC()
	g.s.guides[out.GuideID] = &out
	g.s.profileGuides[out.ProfileID] = append(g.s.profileGuides[out.ProfileID], out.GuideID)
	return &out, nil
}

func (g *guides) Get(ctx context.Context, guideID string) (*model.Guide, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()

	rec, ok := g.s.guides[guideID]
	if !ok {
		return nil, model.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (g *guides) List(ctx context.Context) ([]*model.Guide, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()

	out := make([]*model.Guide, 0, len(g.s.guides))
	for _, rec := range g.s.guides {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func (g *guides) ListByProfile(ctx context.Context, profileID string) ([]*model.Guide, error) {
	g.s.mu.RLock()
	defer g.s.mu.RUnlock()

	out := make([]*model.Guide, 0)
	for _, id := range g.s.profileGuides[profileID] {
		if rec, ok := g.s.guides[id]; ok {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (g *guides) Delete(ctx context.Context, guideID string) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	if _, ok := g.s.guides[guideID]; !ok {
		return model.ErrNotFound
	}
	// Drop the id from every profile index before removing the record.
	for profileID, ids := range g.s.profileGuides {
		kept := ids[:0]
		for _, id := range ids {
			if id != guideID {
				kept = append(kept, id)
			}
		}
		g.s.profileGuides[profileID] = kept
	}
	delete(g.s.guides, guideID)
	return nil
}
