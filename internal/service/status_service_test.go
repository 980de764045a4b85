package service

import (
	"errors"
	"testing"

	"github.com/brunowerneck/spiral-erp/internal/constants"
	"github.com/brunowerneck/spiral-erp/internal/models"

	"github.com/shopspring/decimal"
)

func statusInput(name string, order int) StatusInput {
	return StatusInput{Name: &name, Order: &order}
}

func TestStatusCreateUppercasesName(t *testing.T) {
	r := openTestRepos(t)
	svc := NewStatusService(r.statuses)

	status, err := svc.Create(statusInput("em produção", 10))
	if err != nil {
		t.Fatalf("create status failed: %v", err)
	}
	if status.Name != "EM PRODUÇÃO" {
		t.Fatalf("name want EM PRODUÇÃO got %q", status.Name)
	}
	if status.SortOrder != 10 {
		t.Fatalf("order want 10 got %d", status.SortOrder)
	}
}

func TestStatusCreateRequiresBothFields(t *testing.T) {
	r := openTestRepos(t)
	svc := NewStatusService(r.statuses)

	_, err := svc.Create(StatusInput{})
	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("want FieldErrors got %v", err)
	}
	if fields["name"] != "Status é obrigatório" || fields["order"] != "Ordem é obrigatória" {
		t.Fatalf("messages wrong: %v", fields)
	}
}

func TestStatusUniquenessOnNameAndOrder(t *testing.T) {
	r := openTestRepos(t)
	svc := NewStatusService(r.statuses)

	if _, err := svc.Create(statusInput("CRIADO", 0)); err != nil {
		t.Fatalf("create status failed: %v", err)
	}

	// Same name, different case: clashes after uppercasing.
	_, err := svc.Create(statusInput("criado", 5))
	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("duplicate name want FieldErrors got %v", err)
	}
	if fields["name"] != "Status de Produção CRIADO já existe" {
		t.Fatalf("name message wrong: %q", fields["name"])
	}

	_, err = svc.Create(statusInput("FINALIZADO", 0))
	if !errors.As(err, &fields) {
		t.Fatalf("duplicate order want FieldErrors got %v", err)
	}
	if fields["order"] != "Ordem (0) já existe" {
		t.Fatalf("order message wrong: %q", fields["order"])
	}
}

func TestStatusDeleteBlockedWhileHistoryReferencesIt(t *testing.T) {
	r := openTestRepos(t)
	svc := NewStatusService(r.statuses)
	batches := newBatchService(r)

	unit := r.unit(t, "Quilograma", "kg")
	product := r.product(t, "Geleia de Morango")
	created := r.status(t, constants.StatusNameCreated, constants.StatusOrderCreated)
	free := r.status(t, "FINALIZADO", 80)

	if _, err := batches.Create(BatchCreateInput{
		ProductID:    product.ID,
		OutputUnitID: unit.ID,
		Output:       decimal.NewFromInt(10),
	}); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}

	if err := svc.Delete(created.ID); !errors.Is(err, ErrStatusInUse) {
		t.Fatalf("want ErrStatusInUse got %v", err)
	}
	if err := svc.Delete(free.ID); err != nil {
		t.Fatalf("delete unused status failed: %v", err)
	}

	// Guard against the created anchor disappearing.
	var got models.Status
	if err := r.db.Where("id = ?", created.ID).First(&got).Error; err != nil {
		t.Fatalf("created status must survive: %v", err)
	}
}
