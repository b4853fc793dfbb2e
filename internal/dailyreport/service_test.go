package dailyreport

import (
	"context"
	"errors"
	"testing"
	"time"

	util "github.com/gabriel-moura/kpiflow-lambda/internal/utils"
	"github.com/google/uuid"
)

type fakeRepository struct {
	reports map[uuid.UUID]*DailyReport
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{reports: make(map[uuid.UUID]*DailyReport)}
}

func (f *fakeRepository) Create(dr *DailyReport) error {
	dr.ID = uuid.New()
	f.reports[dr.ID] = dr
	return nil
}

func (f *fakeRepository) FindByID(id uuid.UUID) (*DailyReport, error) {
	dr, ok := f.reports[id]
	if !ok {
		return nil, ErrReportNotFound
	}
	return dr, nil
}

func (f *fakeRepository) ListByGoal(goalID uuid.UUID) ([]DailyReport, error) {
	var out []DailyReport
	for _, dr := range f.reports {
		if dr.PersonalMonthlyGoalID == goalID {
			out = append(out, *dr)
		}
	}
	return out, nil
}

func (f *fakeRepository) Update(dr *DailyReport) error {
	f.reports[dr.ID] = dr
	return nil
}

func (f *fakeRepository) Delete(id uuid.UUID) error {
	delete(f.reports, id)
	return nil
}

type fakeGoals struct {
	existing map[uuid.UUID]bool
}

func (f *fakeGoals) Exists(id uuid.UUID) (bool, error) {
	return f.existing[id], nil
}

func floatPtr(v float64) *float64 { return &v }

func reportDate(t *testing.T, value string) util.DateOnly {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid date %q: %v", value, err)
	}
	return util.DateOnly{Time: parsed}
}

func TestReportCreate(t *testing.T) {
	t.Run("UnknownGoal", func(t *testing.T) {
		svc := NewService(newFakeRepository(), &fakeGoals{})

		_, err := svc.Create(context.Background(), CreateDailyReportDTO{
			PersonalMonthlyGoalID: uuid.New(),
			ReportDate:            reportDate(t, "2025-07-15"),
			PerformanceValue:      floatPtr(300),
			WorkContent:           "closed two deals",
		})
		if !errors.Is(err, ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("SubmittedByDefault", func(t *testing.T) {
		goalID := uuid.New()
		svc := NewService(newFakeRepository(), &fakeGoals{existing: map[uuid.UUID]bool{goalID: true}})

		dr, err := svc.Create(context.Background(), CreateDailyReportDTO{
			PersonalMonthlyGoalID: goalID,
			ReportDate:            reportDate(t, "2025-07-15"),
			PerformanceValue:      floatPtr(300),
			WorkContent:           "closed two deals",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dr.Status != ReportStatusSubmitted {
			t.Errorf("expected status %s, got %s", ReportStatusSubmitted, dr.Status)
		}
		if dr.PerformanceValue != 300 {
			t.Errorf("expected performance value 300, got %v", dr.PerformanceValue)
		}
	})

	t.Run("AllowsMultipleReportsPerDate", func(t *testing.T) {
		goalID := uuid.New()
		repo := newFakeRepository()
		svc := NewService(repo, &fakeGoals{existing: map[uuid.UUID]bool{goalID: true}})

		for _, value := range []float64{300, 250} {
			_, err := svc.Create(context.Background(), CreateDailyReportDTO{
				PersonalMonthlyGoalID: goalID,
				ReportDate:            reportDate(t, "2025-07-15"),
				PerformanceValue:      floatPtr(value),
				WorkContent:           "follow-up calls",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		reports, err := svc.ListByGoal(context.Background(), goalID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 2 {
			t.Errorf("expected 2 reports on the same date, got %d", len(reports))
		}
	})
}

func TestReportUpdate(t *testing.T) {
	goalID := uuid.New()
	repo := newFakeRepository()
	svc := NewService(repo, &fakeGoals{existing: map[uuid.UUID]bool{goalID: true}})

	dr, err := svc.Create(context.Background(), CreateDailyReportDTO{
		PersonalMonthlyGoalID: goalID,
		ReportDate:            reportDate(t, "2025-07-15"),
		PerformanceValue:      floatPtr(300),
		WorkContent:           "closed two deals",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("PatchesProvidedFields", func(t *testing.T) {
		withdrawn := ReportStatusWithdrawn
		updated, err := svc.Update(context.Background(), dr.ID, UpdateDailyReportDTO{
			PerformanceValue: floatPtr(280),
			Status:           &withdrawn,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.PerformanceValue != 280 {
			t.Errorf("expected performance value 280, got %v", updated.PerformanceValue)
		}
		if updated.Status != ReportStatusWithdrawn {
			t.Errorf("expected status %s, got %s", ReportStatusWithdrawn, updated.Status)
		}
		if updated.WorkContent != "closed two deals" {
			t.Errorf("expected work content to be untouched, got %q", updated.WorkContent)
		}
	})

	t.Run("UnknownReport", func(t *testing.T) {
		_, err := svc.Update(context.Background(), uuid.New(), UpdateDailyReportDTO{})
		if !errors.Is(err, ErrReportNotFound) {
			t.Errorf("expected ErrReportNotFound, got %v", err)
		}
	})
}

func TestReportDelete(t *testing.T) {
	if err := NewService(newFakeRepository(), &fakeGoals{}).Delete(context.Background(), uuid.New()); !errors.Is(err, ErrReportNotFound) {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}
