package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/agrimlabs/outreach-agent/internal/entity"
	"github.com/agrimlabs/outreach-agent/internal/infra/integration/groq"
)

// CompletionMatcher asks the model which stored projects fit the lead's
// requirements and keeps every project whose name is echoed back in the
// response text. It is a lexical-presence filter, not a ranking: no
// score, no ordering, and short generic names can false-positive. That
// behavior is load-bearing for compatibility; change it behind a new
// MatcherStrategy, not here.
type CompletionMatcher struct {
	Projects entity.ProjectRepositoryInterface
	Gateway  CompletionGateway
}

func NewCompletionMatcher(projects entity.ProjectRepositoryInterface, gateway CompletionGateway) *CompletionMatcher {
	return &CompletionMatcher{
		Projects: projects,
		Gateway:  gateway,
	}
}

func (m *CompletionMatcher) Match(ctx context.Context, requirements map[string]string) ([]entity.PastProject, error) {
	projects, err := m.Projects.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "failed to load past projects: " + err.Error(),
		}
	}

	if len(projects) == 0 {
		return nil, nil
	}

	response, err := m.Gateway.Complete(ctx, []groq.Message{
		{Role: "user", Content: buildMatchPrompt(requirements, projects)},
	})
	if err != nil {
		log.Printf("Project matching completion failed: %v", err)
		return nil, &TechnicalError{
			Code:    CodeCompletionFailed,
			Message: "project matching failed: " + err.Error(),
		}
	}

	var matched []entity.PastProject
	for _, p := range projects {
		if strings.Contains(response, p.ProjectName) {
			matched = append(matched, p)
		}
	}

	log.Printf("Matched %d of %d past project(s)", len(matched), len(projects))
	return matched, nil
}
