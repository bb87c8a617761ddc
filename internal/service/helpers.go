package service

import (
	"fmt"
	"sync"

	"github.com/alexanderramin/addie/internal/domain"
)

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}

// preconditionReason describes the content a tool needs.
func preconditionReason(tool domain.Tool) string {
	switch tool {
	case domain.ToolAlignment, domain.ToolBlooms, domain.ToolMultimodal, domain.ToolZPD:
		return "project has no course outline"
	case domain.ToolSourceMaterial:
		return "project has no materials"
	default:
		return "project has no design documents"
	}
}

// runGuard tracks the idle/running state of each (project, tool) pair.
type runGuard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

func newRunGuard() *runGuard {
	return &runGuard{running: make(map[string]struct{})}
}

// begin marks the pair as running. The returned func returns it to idle.
func (g *runGuard) begin(projectID string, tool domain.Tool) (func(), error) {
	key := projectID + "/" + string(tool)

	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[key]; busy {
		return nil, fmt.Errorf("%s on project %s: %w", tool, projectID, ErrRunInProgress)
	}
	g.running[key] = struct{}{}

	return func() {
		g.mu.Lock()
		delete(g.running, key)
		g.mu.Unlock()
	}, nil
}
