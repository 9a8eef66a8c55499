package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/dto"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/application/usecase"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/entity"
	"github.com/appdotbuilder/consultancy-time-tracker/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeTimeEntryRepo struct {
	entries map[string]*entity.TimeEntry
}

func newFakeTimeEntryRepo() *fakeTimeEntryRepo {
	return &fakeTimeEntryRepo{entries: make(map[string]*entity.TimeEntry)}
}

func (f *fakeTimeEntryRepo) Create(e *entity.TimeEntry) error {
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeTimeEntryRepo) GetByID(id string) (*entity.TimeEntry, error) {
	e, ok := f.entries[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeTimeEntryRepo) List(_ repository.TimeEntryFilter, _, _ int) ([]*entity.TimeEntry, error) {
	out := make([]*entity.TimeEntry, 0, len(f.entries))
	for _, e := range f.entries {
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeTimeEntryRepo) Update(e *entity.TimeEntry) error {
	cp := *e
	f.entries[e.ID] = &cp
	return nil
}

func (f *fakeTimeEntryRepo) Delete(id string) error {
	delete(f.entries, id)
	return nil
}

type fakePositionRepo struct {
	positions map[string]*entity.Position
}

func (f *fakePositionRepo) Create(p *entity.Position) error { f.positions[p.ID] = p; return nil }
func (f *fakePositionRepo) GetByID(id string) (*entity.Position, error) {
	return f.positions[id], nil
}
func (f *fakePositionRepo) ListByProject(string, int, int) ([]*entity.Position, error) {
	return nil, nil
}
func (f *fakePositionRepo) Update(p *entity.Position) error { f.positions[p.ID] = p; return nil }
func (f *fakePositionRepo) Delete(id string) error          { delete(f.positions, id); return nil }

type fakeActivityRepo struct {
	logs []*entity.ActivityLog
}

func (f *fakeActivityRepo) Create(l *entity.ActivityLog) error {
	f.logs = append(f.logs, l)
	return nil
}

func (f *fakeActivityRepo) List(_ repository.ActivityLogFilter, _, _ int) ([]*entity.ActivityLog, error) {
	return f.logs, nil
}

// fakeTxRunner entrega los mismos fakes al callback; no hay transacción real.
type fakeTxRunner struct {
	entryRepo    repository.TimeEntryRepository
	activityRepo repository.ActivityLogRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	entryRepo repository.TimeEntryRepository,
	activityRepo repository.ActivityLogRepository,
) error) error {
	return fn(f.entryRepo, f.activityRepo)
}

func buildTimeEntryUC() (*usecase.TimeEntryUseCase, *fakeTimeEntryRepo, *fakeActivityRepo) {
	entryRepo := newFakeTimeEntryRepo()
	activityRepo := &fakeActivityRepo{}
	positionRepo := &fakePositionRepo{positions: map[string]*entity.Position{
		"pos-1": {ID: "pos-1", ProjectID: "proj-1", Name: "Backend"},
	}}
	tx := &fakeTxRunner{entryRepo: entryRepo, activityRepo: activityRepo}
	return usecase.NewTimeEntryUseCase(entryRepo, positionRepo, tx), entryRepo, activityRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestTimeEntry_Create_RegistraBitacora(t *testing.T) {
	uc, entryRepo, activityRepo := buildTimeEntryUC()

	out, err := uc.Create(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		PositionID:  "pos-1",
		Date:        "2025-03-10",
		Hours:       decimal.NewFromFloat(7.5),
		Description: "desarrollo API",
	})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "user-1", out.UserID)
	assert.Equal(t, "2025-03-10", out.Date)
	assert.True(t, decimal.NewFromFloat(7.5).Equal(out.Hours))

	// La imputación y su entrada de bitácora se escriben juntas.
	assert.Len(t, entryRepo.entries, 1)
	require.Len(t, activityRepo.logs, 1)
	assert.Equal(t, "time_entry", activityRepo.logs[0].EntityType)
	assert.Equal(t, entity.ActionCreated, activityRepo.logs[0].Action)
	assert.Equal(t, "user-1", activityRepo.logs[0].ActorID)
}

func TestTimeEntry_Create_HorasNoPositivas(t *testing.T) {
	uc, _, _ := buildTimeEntryUC()

	_, err := uc.Create(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		PositionID: "pos-1",
		Date:       "2025-03-10",
		Hours:      decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		PositionID: "pos-1",
		Date:       "2025-03-10",
		Hours:      decimal.NewFromInt(-2),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTimeEntry_Create_PuestoInexistente(t *testing.T) {
	uc, _, _ := buildTimeEntryUC()

	_, err := uc.Create(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		PositionID: "pos-nope",
		Date:       "2025-03-10",
		Hours:      decimal.NewFromInt(4),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTimeEntry_Create_FechaInvalida(t *testing.T) {
	uc, _, _ := buildTimeEntryUC()

	_, err := uc.Create(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		PositionID: "pos-1",
		Date:       "10/03/2025",
		Hours:      decimal.NewFromInt(4),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTimeEntry_Update_RegistraBitacora(t *testing.T) {
	uc, _, activityRepo := buildTimeEntryUC()

	created, err := uc.Create(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		PositionID: "pos-1",
		Date:       "2025-03-10",
		Hours:      decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	out, err := uc.Update(context.Background(), "user-1", created.ID, dto.UpdateTimeEntryRequest{
		Hours: decimal.NewFromInt(6),
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(6).Equal(out.Hours))

	require.Len(t, activityRepo.logs, 2)
	assert.Equal(t, entity.ActionUpdated, activityRepo.logs[1].Action)
}

func TestTimeEntry_Delete_RegistraBitacora(t *testing.T) {
	uc, entryRepo, activityRepo := buildTimeEntryUC()

	created, err := uc.Create(context.Background(), "user-1", dto.CreateTimeEntryRequest{
		PositionID: "pos-1",
		Date:       "2025-03-10",
		Hours:      decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "admin-1", created.ID))

	assert.Empty(t, entryRepo.entries)
	require.Len(t, activityRepo.logs, 2)
	assert.Equal(t, entity.ActionDeleted, activityRepo.logs[1].Action)
	assert.Equal(t, "admin-1", activityRepo.logs[1].ActorID)
}

func TestTimeEntry_Delete_Inexistente(t *testing.T) {
	uc, _, _ := buildTimeEntryUC()

	err := uc.Delete(context.Background(), "user-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
