package dashboard

import (
	"encoding/json"
	"strings"

	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/model"
	"github.com/goodnatureofminers/l2-migration-dashboard/internal/migration/store"
)

type storedStage struct {
	Name        string          `json:"name"`
	Status      json.RawMessage `json:"status"`
	Description string          `json:"description"`
}

// DecodeStages converts a stage collection snapshot into stages in store key order.
// Entries that are not objects are reported in skipped.
func DecodeStages(s store.Snapshot) (stages []model.Stage, skipped []string, err error) {
	children, err := s.Children()
	if err != nil {
		return nil, nil, err
	}
	stages = make([]model.Stage, 0, len(children))
	for _, child := range children {
		var stored storedStage
		if err := child.Value.Decode(&stored); err != nil {
			skipped = append(skipped, child.Key)
			continue
		}
		name := stored.Name
		if name == "" {
			name = child.Key
		}
		stages = append(stages, model.Stage{
			ID:          child.Key,
			Name:        name,
			Status:      ParseStageStatus(stored.Status),
			Description: stored.Description,
		})
	}
	return stages, skipped, nil
}

// ParseStageStatus maps the stored status onto a StageStatus, case-insensitively.
// Unknown values are NotStarted.
func ParseStageStatus(raw json.RawMessage) model.StageStatus {
	var flag bool
	if err := json.Unmarshal(raw, &flag); err == nil {
		if flag {
			return model.StageComplete
		}
		return model.StageNotStarted
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return model.StageNotStarted
	}
	switch normalizeStatus(text) {
	case "complete", "completed", "done":
		return model.StageComplete
	case "inprogress", "running":
		return model.StageInProgress
	default:
		return model.StageNotStarted
	}
}

func normalizeStatus(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(text)))
}
