package service

import (
	"errors"
	"testing"
)

func TestSupplierListCarriesMaterialCounts(t *testing.T) {
	r := openTestRepos(t)
	svc := NewSupplierService(r.suppliers)

	south := r.supplier(t, "Distribuidora Sul")
	r.supplier(t, "Distribuidora Norte")
	unit := r.unit(t, "Quilograma", "kg")
	r.material(t, "Açúcar", south, unit, "4.50")
	r.material(t, "Morango", south, unit, "12.00")

	items, err := svc.List()
	if err != nil {
		t.Fatalf("list suppliers failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("suppliers want 2 got %d", len(items))
	}
	// Ordered by name: Norte first.
	if items[0].Name != "Distribuidora Norte" || items[0].Materials != 0 {
		t.Fatalf("first item wrong: %+v", items[0])
	}
	if items[1].Name != "Distribuidora Sul" || items[1].Materials != 2 {
		t.Fatalf("second item wrong: %+v", items[1])
	}
}

func TestSupplierCreateRejectsDuplicateName(t *testing.T) {
	r := openTestRepos(t)
	svc := NewSupplierService(r.suppliers)

	if _, err := svc.Create("Distribuidora Sul"); err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}

	_, err := svc.Create("Distribuidora Sul")
	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("duplicate name want FieldErrors got %v", err)
	}
	if fields["name"] != "O fornecedor com nome Distribuidora Sul já existe em nossos registros" {
		t.Fatalf("message wrong: %q", fields["name"])
	}
}

func TestSupplierCreateRejectsShortName(t *testing.T) {
	r := openTestRepos(t)
	svc := NewSupplierService(r.suppliers)

	_, err := svc.Create("ab")
	var fields FieldErrors
	if !errors.As(err, &fields) {
		t.Fatalf("short name want FieldErrors got %v", err)
	}
	if _, ok := fields["name"]; !ok {
		t.Fatalf("name field missing: %v", fields)
	}
}

func TestSupplierUpdateSameNameIsNoop(t *testing.T) {
	r := openTestRepos(t)
	svc := NewSupplierService(r.suppliers)

	supplier := r.supplier(t, "Distribuidora Sul")

	// Re-asserting the current name must not trip the uniqueness check.
	name := "Distribuidora Sul"
	updated, err := svc.Update(supplier.ID, &name)
	if err != nil {
		t.Fatalf("noop update failed: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("name got %q", updated.Name)
	}
}

func TestSupplierDeleteBlockedWhileMaterialsExist(t *testing.T) {
	r := openTestRepos(t)
	svc := NewSupplierService(r.suppliers)

	supplier := r.supplier(t, "Distribuidora Sul")
	unit := r.unit(t, "Quilograma", "kg")
	material := r.material(t, "Açúcar", supplier, unit, "4.50")

	if err := svc.Delete(supplier.ID); !errors.Is(err, ErrSupplierHasMaterials) {
		t.Fatalf("want ErrSupplierHasMaterials got %v", err)
	}

	if err := r.db.Delete(material).Error; err != nil {
		t.Fatalf("remove material failed: %v", err)
	}
	if err := svc.Delete(supplier.ID); err != nil {
		t.Fatalf("delete emptied supplier failed: %v", err)
	}
}

func TestSupplierGetMissingIsNotFound(t *testing.T) {
	r := openTestRepos(t)
	svc := NewSupplierService(r.suppliers)

	if _, err := svc.GetByID("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound got %v", err)
	}
	if _, err := svc.ListMaterials("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("list materials want ErrNotFound got %v", err)
	}
}
