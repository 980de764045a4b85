package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func lineItem(t *testing.T, unitValue, amount string) BatchMaterial {
	t.Helper()
	uv, err := decimal.NewFromString(unitValue)
	if err != nil {
		t.Fatalf("parse unit value %q failed: %v", unitValue, err)
	}
	am, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("parse amount %q failed: %v", amount, err)
	}
	return BatchMaterial{
		UnitValue: NewMoneyFromDecimal(uv),
		Amount:    NewQuantityFromDecimal(am),
	}
}

func TestTotalCostValueSumsLineItems(t *testing.T) {
	batch := Batch{
		Materials: []BatchMaterial{
			lineItem(t, "10.00", "2.000"),
			lineItem(t, "3.50", "4.000"),
		},
	}

	got := batch.TotalCostValue()
	if want := decimal.NewFromInt(34); !got.Equal(want) {
		t.Fatalf("total cost want %s got %s", want, got)
	}
}

func TestCalculateUnitValueDividesByOutput(t *testing.T) {
	batch := Batch{
		Output: NewQuantityFromDecimal(decimal.NewFromInt(4)),
		Materials: []BatchMaterial{
			lineItem(t, "10.00", "2.000"),
			lineItem(t, "3.50", "4.000"),
		},
	}

	if err := batch.CalculateUnitValue(); err != nil {
		t.Fatalf("calculate unit value failed: %v", err)
	}
	if want := decimal.NewFromFloat(8.5); !batch.UnitValue.Decimal.Equal(want) {
		t.Fatalf("unit value want %s got %s", want, batch.UnitValue.Decimal)
	}
}

func TestCalculateUnitValueRejectsZeroOutput(t *testing.T) {
	batch := Batch{
		Materials: []BatchMaterial{lineItem(t, "10.00", "1.000")},
	}

	if err := batch.CalculateUnitValue(); err != ErrZeroOutput {
		t.Fatalf("want ErrZeroOutput got %v", err)
	}
}

func TestCalculateUnitValueEmptyBatchIsZero(t *testing.T) {
	batch := Batch{Output: NewQuantityFromDecimal(decimal.NewFromInt(5))}

	if err := batch.CalculateUnitValue(); err != nil {
		t.Fatalf("calculate unit value failed: %v", err)
	}
	if !batch.UnitValue.Decimal.IsZero() {
		t.Fatalf("unit value want 0 got %s", batch.UnitValue.Decimal)
	}
}

func TestLatestStatusPicksNewestRegardlessOfOrder(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	batch := Batch{
		Statuses: []BatchStatus{
			{ID: "b", CreatedAt: base.Add(2 * time.Hour)},
			{ID: "a", CreatedAt: base},
			{ID: "c", CreatedAt: base.Add(time.Hour)},
		},
	}

	latest := batch.LatestStatus()
	if latest == nil || latest.ID != "b" {
		t.Fatalf("latest status want b got %+v", latest)
	}
}

func TestLatestStatusEmptyHistory(t *testing.T) {
	batch := Batch{}
	if latest := batch.LatestStatus(); latest != nil {
		t.Fatalf("latest status want nil got %+v", latest)
	}
}

func TestDecorateFillsDerivedFields(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	batch := Batch{
		Product:   Product{Name: "Geleia de Morango"},
		CreatedAt: base,
		Output:    NewQuantityFromDecimal(decimal.NewFromInt(2)),
		Materials: []BatchMaterial{lineItem(t, "5.00", "3.000")},
		Statuses: []BatchStatus{
			{ID: "old", CreatedAt: base},
			{ID: "new", CreatedAt: base.Add(time.Minute)},
		},
	}

	batch.Decorate()

	if batch.ProductName != "Geleia de Morango" {
		t.Fatalf("product name got %q", batch.ProductName)
	}
	if want := decimal.NewFromInt(15); !batch.TotalCost.Decimal.Equal(want) {
		t.Fatalf("total cost want %s got %s", want, batch.TotalCost.Decimal)
	}
	if batch.CurrentStatus == nil || batch.CurrentStatus.ID != "new" {
		t.Fatalf("current status want new got %+v", batch.CurrentStatus)
	}
	if batch.Statuses[0].ID != "new" {
		t.Fatalf("statuses not sorted newest first: %s", batch.Statuses[0].ID)
	}
	if batch.Number == "" {
		t.Fatal("number not filled")
	}
}

func TestBatchNumberTrimsTrailingZeros(t *testing.T) {
	cases := []struct {
		nanos int
		want  string
	}{
		{0, "0"},
		{123456000, "123456"},
		{500000000, "5"},
		{1000, "000001"},
	}
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		created := base.Add(time.Duration(tc.nanos))
		got := batchNumber(created)
		want := "1772366400" + tc.want
		if got != want {
			t.Fatalf("batch number for %d ns want %s got %s", tc.nanos, want, got)
		}
	}
}

func TestStatusBeforeAfter(t *testing.T) {
	created := Status{SortOrder: 0}
	production := Status{SortOrder: 10}

	if !created.Before(production) {
		t.Fatal("created should come before production")
	}
	if !production.After(created) {
		t.Fatal("production should come after created")
	}
	if created.After(created) || created.Before(created) {
		t.Fatal("a status never precedes or follows itself")
	}
}
