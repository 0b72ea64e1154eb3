package repository

import (
	"context"
	"errors"
	"testing"
)

func TestMemorySettingsRepository(t *testing.T) {
	repo := NewMemorySettingsRepository()
	ctx := context.Background()

	if _, ok, err := repo.GetItem(ctx, "jane", "theme"); ok || err != nil {
		t.Fatalf("GetItem() on empty store = ok %v err %v", ok, err)
	}

	if err := repo.SetItem(ctx, "jane", "theme", "dark"); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}
	if err := repo.SetItem(ctx, "john", "theme", "light"); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	tests := []struct {
		owner  string
		want   string
		wantOK bool
	}{
		{"jane", "dark", true},
		{"john", "light", true},
		{"nobody", "", false},
	}
	for _, tt := range tests {
		got, ok, err := repo.GetItem(ctx, tt.owner, "theme")
		if err != nil || ok != tt.wantOK || got != tt.want {
			t.Errorf("GetItem(%s) = %q, %v, %v; want %q, %v", tt.owner, got, ok, err, tt.want, tt.wantOK)
		}
	}

	if err := repo.RemoveItem(ctx, "jane", "theme"); err != nil {
		t.Fatalf("RemoveItem() error = %v", err)
	}
	if _, ok, _ := repo.GetItem(ctx, "jane", "theme"); ok {
		t.Error("item still present after RemoveItem")
	}
	if err := repo.RemoveItem(ctx, "jane", "theme"); err != nil {
		t.Errorf("RemoveItem() on missing key = %v, want nil", err)
	}
}

func TestMemorySettingsRepository_Transaction(t *testing.T) {
	repo := NewMemorySettingsRepository()
	ctx := context.Background()

	if err := repo.SetItem(ctx, "jane", "theme", "dark"); err != nil {
		t.Fatalf("SetItem() error = %v", err)
	}

	err := repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.SetItem(txCtx, "jane", "scale", "1.2"); err != nil {
			return err
		}
		if value, ok, _ := repo.GetItem(txCtx, "jane", "scale"); !ok || value != "1.2" {
			t.Errorf("GetItem() inside transaction = %q, %v", value, ok)
		}
		return repo.RemoveItem(txCtx, "jane", "theme")
	})
	if err != nil {
		t.Fatalf("ExecuteTransaction() error = %v", err)
	}
	if _, ok, _ := repo.GetItem(ctx, "jane", "theme"); ok {
		t.Error("committed removal not applied")
	}

	errBoom := errors.New("boom")
	err = repo.ExecuteTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.SetItem(txCtx, "jane", "scale", "1.5"); err != nil {
			return err
		}
		if err := repo.SetItem(txCtx, "john", "theme", "light"); err != nil {
			return err
		}
		return errBoom
	})
	if !errors.Is(err, errBoom) {
		t.Fatalf("ExecuteTransaction() = %v, want %v", err, errBoom)
	}

	if value, _, _ := repo.GetItem(ctx, "jane", "scale"); value != "1.2" {
		t.Errorf("scale = %q after rollback, want 1.2", value)
	}
	if _, ok, _ := repo.GetItem(ctx, "john", "theme"); ok {
		t.Error("new owner survived rollback")
	}
}
