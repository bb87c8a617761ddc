package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/alexanderramin/addie/internal/domain"
)

var _ ContentRepo = (*ContentStore)(nil)

// ContentStore holds project content in memory and serves it to the
// analyzers. Materials live in one library shared by all projects and are
// returned for every project they are linked to.
type ContentStore struct {
	mu       sync.RWMutex
	projects map[string]domain.ProjectContent
	library  map[string]domain.Material
}

func NewContentStore() *ContentStore {
	return &ContentStore{
		projects: make(map[string]domain.ProjectContent),
		library:  make(map[string]domain.Material),
	}
}

// Put replaces the content of content.Project.ID. The project is first
// unlinked from every library material, then its materials are merged in; a
// material already present keeps its links to other projects. Materials
// left without any project are dropped.
func (s *ContentStore) Put(content domain.ProjectContent) error {
	if err := content.Project.ValidateID(); err != nil {
		return fmt.Errorf("storing content: %w", err)
	}
	projectID := content.Project.ID

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := domain.ProjectContent{
		Project:       content.Project,
		Outline:       content.Outline.Clone(),
		StyleGuide:    content.StyleGuide.Clone(),
		NeedsAnalysis: content.NeedsAnalysis.Clone(),
	}
	for i := range content.DesignDocs {
		stored.DesignDocs = append(stored.DesignDocs, content.DesignDocs[i].Clone())
	}
	s.projects[projectID] = stored
	s.unlinkLocked(projectID)

	for i := range content.Materials {
		m := content.Materials[i].Clone()
		if prev, ok := s.library[m.ID]; ok {
			for _, id := range prev.ProjectIDs {
				if !m.BelongsTo(id) {
					m.ProjectIDs = append(m.ProjectIDs, id)
				}
			}
		}
		if !m.BelongsTo(projectID) {
			m.ProjectIDs = append(m.ProjectIDs, projectID)
		}
		s.library[m.ID] = m
	}
	return nil
}

func (s *ContentStore) unlinkLocked(projectID string) {
	for id, m := range s.library {
		if !m.BelongsTo(projectID) {
			continue
		}
		kept := make([]string, 0, len(m.ProjectIDs))
		for _, pid := range m.ProjectIDs {
			if pid != projectID {
				kept = append(kept, pid)
			}
		}
		if len(kept) == 0 {
			delete(s.library, id)
			continue
		}
		m.ProjectIDs = kept
		s.library[id] = m
	}
}

// Project returns the stored project record, or ErrNotFound.
func (s *ContentStore) Project(_ context.Context, projectID string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.projects[projectID]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", projectID, ErrNotFound)
	}
	p := c.Project
	return &p, nil
}

func (s *ContentStore) CourseOutline(_ context.Context, projectID string) (*domain.CourseOutline, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects[projectID].Outline.Clone(), nil
}

func (s *ContentStore) DesignDocs(_ context.Context, projectID string) ([]domain.DesignDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := s.projects[projectID].DesignDocs
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]domain.DesignDocument, len(docs))
	for i := range docs {
		out[i] = docs[i].Clone()
	}
	return out, nil
}

// Materials returns the library materials linked to the project, ordered by ID.
func (s *ContentStore) Materials(_ context.Context, projectID string) ([]domain.Material, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Material
	for _, m := range s.library {
		if m.BelongsTo(projectID) {
			out = append(out, m.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *ContentStore) StyleGuide(_ context.Context, projectID string) (*domain.StyleGuide, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects[projectID].StyleGuide.Clone(), nil
}

func (s *ContentStore) AnalysisReport(_ context.Context, projectID string) (*domain.NeedsAnalysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projects[projectID].NeedsAnalysis.Clone(), nil
}
