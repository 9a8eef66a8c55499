package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/report"
)

func TestResolveScope_Precedencia(t *testing.T) {
	cases := []struct {
		name       string
		positionID string
		projectID  string
		clientID   string
		wantKind   report.ScopeKind
		wantID     string
	}{
		{"sin filtros es global", "", "", "", report.ScopeAll, ""},
		{"solo puesto", "pos-1", "", "", report.ScopePosition, "pos-1"},
		{"solo proyecto", "", "proj-1", "", report.ScopeProject, "proj-1"},
		{"solo cliente", "", "", "cli-1", report.ScopeClient, "cli-1"},
		{"puesto gana a proyecto", "pos-1", "proj-1", "", report.ScopePosition, "pos-1"},
		{"puesto gana a cliente", "pos-1", "", "cli-1", report.ScopePosition, "pos-1"},
		{"proyecto gana a cliente", "", "proj-1", "cli-1", report.ScopeProject, "proj-1"},
		{"los tres: gana el puesto", "pos-1", "proj-1", "cli-1", report.ScopePosition, "pos-1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := report.ResolveScope(tc.positionID, tc.projectID, tc.clientID)
			assert.Equal(t, tc.wantKind, got.Kind)
			assert.Equal(t, tc.wantID, got.ID)
		})
	}
}
