package command

import (
	"context"
	"testing"

	"github.com/cafeops/eventbrew/internal/catalog/domain"
	"github.com/cafeops/eventbrew/internal/catalog/repository"
	"github.com/cafeops/eventbrew/internal/events"
	"github.com/cafeops/eventbrew/pkg/storage"
)

type recordingNotifier struct {
	events.Nop
	inventoryChanges int
}

func (r *recordingNotifier) InventoryChanged(ctx context.Context) {
	r.inventoryChanges++
}

func newRepo(t *testing.T) domain.Repository {
	t.Helper()
	repo := repository.NewStoreCatalogRepository(storage.NewMemoryStore())
	if err := repo.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	return repo
}

func TestUpsertItemGeneratesIDForNewItems(t *testing.T) {
	repo := newRepo(t)
	notifier := &recordingNotifier{}
	handler := NewUpsertItemHandler(repo, notifier, func() string { return "generated-id" })

	item, err := handler.Handle(context.Background(), UpsertItemCommand{
		Category: domain.CategoryMilk,
		Name:     "  Macadamia Milk  ",
		Enabled:  true,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if item.ID != "generated-id" {
		t.Errorf("id = %q, want generated-id", item.ID)
	}
	if item.Name != "Macadamia Milk" {
		t.Errorf("name = %q, want trimmed", item.Name)
	}
	if notifier.inventoryChanges != 1 {
		t.Errorf("inventory changes = %d, want 1", notifier.inventoryChanges)
	}

	stored, _ := repo.FindItem(context.Background(), domain.CategoryMilk, "generated-id")
	if stored == nil {
		t.Error("item not persisted")
	}
}

func TestUpsertItemValidation(t *testing.T) {
	handler := NewUpsertItemHandler(newRepo(t), &recordingNotifier{}, func() string { return "x" })
	ctx := context.Background()

	if _, err := handler.Handle(ctx, UpsertItemCommand{Category: "smoothies", Name: "Berry"}); err == nil {
		t.Error("unknown category accepted")
	}
	if _, err := handler.Handle(ctx, UpsertItemCommand{Category: domain.CategoryMilk, Name: "   "}); err == nil {
		t.Error("blank name accepted")
	}
}

func TestToggleItemFlipsEnabled(t *testing.T) {
	repo := newRepo(t)
	notifier := &recordingNotifier{}
	handler := NewToggleItemHandler(repo, notifier)
	ctx := context.Background()

	item, err := handler.Handle(ctx, ToggleItemCommand{Category: domain.CategoryMilk, ID: "oat"})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if item.Enabled {
		t.Error("oat milk still enabled after toggle")
	}

	item, err = handler.Handle(ctx, ToggleItemCommand{Category: domain.CategoryMilk, ID: "oat"})
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if !item.Enabled {
		t.Error("oat milk still disabled after second toggle")
	}
	if notifier.inventoryChanges != 2 {
		t.Errorf("inventory changes = %d, want 2", notifier.inventoryChanges)
	}

	if _, err := handler.Handle(ctx, ToggleItemCommand{Category: domain.CategoryMilk, ID: "nope"}); err == nil {
		t.Error("toggling a missing item should fail")
	}
}

func TestDeleteItemNotifies(t *testing.T) {
	repo := newRepo(t)
	notifier := &recordingNotifier{}
	handler := NewDeleteItemHandler(repo, notifier)
	ctx := context.Background()

	if err := handler.Handle(ctx, DeleteItemCommand{Category: domain.CategorySyrups, ID: "vanilla"}); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if notifier.inventoryChanges != 1 {
		t.Errorf("inventory changes = %d, want 1", notifier.inventoryChanges)
	}

	if item, _ := repo.FindItem(ctx, domain.CategorySyrups, "vanilla"); item != nil {
		t.Error("deleted item still present")
	}
}
