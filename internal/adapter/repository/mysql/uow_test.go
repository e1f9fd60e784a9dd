package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	appDomain "avendro-backend/internal/domain/application"
	"avendro-backend/internal/domain/uow"
	"avendro-backend/pkg/id"
)

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	appID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Applications.Create(ctx, makeApplication(appID, "ffaa", "11111111111111111111111111111111"))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if _, err := NewApplicationRepository(db).GetByApplicationID(ctx, appID); err != nil {
		t.Fatalf("row not committed: %v", err)
	}
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	appID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Applications.Create(ctx, makeApplication(appID, "ffbb", "11111111111111111111111111111111")); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error back, got %v", err)
	}

	_, err = NewApplicationRepository(db).GetByApplicationID(ctx, appID)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("row must be rolled back, got %v", err)
	}
}

func TestWithinApplicationTx_LoadsAndPersists(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	appID := id.NewID32()
	seed := makeApplication(appID, "ffcc", "11111111111111111111111111111111")
	if err := NewApplicationRepository(db).Create(ctx, seed); err != nil {
		t.Fatal(err)
	}

	err := u.WithinApplicationTx(ctx, appID, func(r uow.Repos, a *appDomain.Application) error {
		if a.ApplicationID != appID {
			t.Errorf("loaded wrong application: %s", a.ApplicationID)
		}
		a.Status = appDomain.StatusReview
		return r.Applications.Save(ctx, a)
	})
	if err != nil {
		t.Fatalf("WithinApplicationTx: %v", err)
	}

	got, err := NewApplicationRepository(db).GetByApplicationID(ctx, appID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != appDomain.StatusReview {
		t.Errorf("status = %s, want %s", got.Status, appDomain.StatusReview)
	}
}

func TestWithinApplicationTx_NotFound(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)

	called := false
	err := u.WithinApplicationTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee",
		func(r uow.Repos, a *appDomain.Application) error {
			called = true
			return nil
		})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
	if called {
		t.Error("fn must not run when the application does not exist")
	}
}
