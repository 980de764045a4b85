package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brunowerneck/spiral-erp/internal/constants"
	"github.com/brunowerneck/spiral-erp/internal/models"
	"github.com/brunowerneck/spiral-erp/internal/provider"
	"github.com/brunowerneck/spiral-erp/internal/repository"
	"github.com/brunowerneck/spiral-erp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupBatchAPI(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Supplier{},
		&models.Unit{},
		&models.Material{},
		&models.Product{},
		&models.Status{},
		&models.Batch{},
		&models.BatchMaterial{},
		&models.BatchStatus{},
	)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	c := &provider.Container{}
	c.SupplierRepo = repository.NewSupplierRepository(db)
	c.UnitRepo = repository.NewUnitRepository(db)
	c.MaterialRepo = repository.NewMaterialRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.StatusRepo = repository.NewStatusRepository(db)
	c.BatchRepo = repository.NewBatchRepository(db)
	c.BatchService = service.NewBatchService(c.BatchRepo, c.ProductRepo, c.UnitRepo, c.StatusRepo, nil)

	handler := New(c)
	r := gin.New()
	r.GET("/batches", handler.GetBatches)
	r.POST("/batches", handler.CreateBatch)
	r.GET("/batches/batch/:id", handler.GetBatchByID)
	r.PATCH("/batches/batch/:id", handler.UpdateBatch)
	r.DELETE("/batches/batch/:id", handler.DeleteBatch)
	return r, db
}

func seedBatchFixtures(t *testing.T, db *gorm.DB) (product, unit, material, created, production string) {
	t.Helper()
	supplier := &models.Supplier{Name: "Distribuidora Sul"}
	if err := db.Create(supplier).Error; err != nil {
		t.Fatalf("create supplier failed: %v", err)
	}
	u := &models.Unit{Name: "Quilograma", Abbreviation: "kg"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("create unit failed: %v", err)
	}
	m := &models.Material{
		Name:       "Açúcar",
		SupplierID: supplier.ID,
		UnitID:     u.ID,
		UnitValue:  models.NewMoneyFromDecimal(decimal.NewFromFloat(4.50)),
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("create material failed: %v", err)
	}
	p := &models.Product{Name: "Geleia de Morango", Materials: []models.Material{*m}}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	cs := &models.Status{Name: constants.StatusNameCreated, SortOrder: constants.StatusOrderCreated}
	if err := db.Create(cs).Error; err != nil {
		t.Fatalf("create status failed: %v", err)
	}
	ps := &models.Status{Name: "EM PRODUÇÃO", SortOrder: 10}
	if err := db.Create(ps).Error; err != nil {
		t.Fatalf("create production status failed: %v", err)
	}
	return p.ID, u.ID, m.ID, cs.ID, ps.ID
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBatchEndToEnd(t *testing.T) {
	r, db := setupBatchAPI(t)
	productID, unitID, materialID, _, _ := seedBatchFixtures(t, db)

	body := fmt.Sprintf(`{
		"product_id": %q,
		"output_unit_id": %q,
		"output": 10,
		"materials": [
			{"id": %q, "unit_value": 4.50, "amount": 4},
			{"id": %q, "unit_value": 12.00, "amount": 2}
		]
	}`, productID, unitID, materialID, materialID)

	w := doJSON(t, r, http.MethodPost, "/batches", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status want 201 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		ID        string `json:"id"`
		Product   string `json:"product"`
		UnitValue string `json:"unit_value"`
		TotalCost string `json:"total_cost"`
		Status    *struct {
			Status struct {
				Name string `json:"name"`
			} `json:"status"`
			Notes string `json:"notes"`
		} `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	if resp.Product != "Geleia de Morango" {
		t.Fatalf("product want Geleia de Morango got %q", resp.Product)
	}
	// (4.50*4 + 12.00*2) / 10 = 4.20
	if resp.UnitValue != "4.20" {
		t.Fatalf("unit value want 4.20 got %q", resp.UnitValue)
	}
	if resp.TotalCost != "42.00" {
		t.Fatalf("total cost want 42.00 got %q", resp.TotalCost)
	}
	if resp.Status == nil || resp.Status.Status.Name != constants.StatusNameCreated {
		t.Fatalf("status want CRIADO got %+v", resp.Status)
	}
	if resp.Status.Notes != constants.BatchCreatedNotes {
		t.Fatalf("notes want %q got %q", constants.BatchCreatedNotes, resp.Status.Notes)
	}

	got := doJSON(t, r, http.MethodGet, "/batches/batch/"+resp.ID, "")
	if got.Code != http.StatusOK {
		t.Fatalf("get status want 200 got %d", got.Code)
	}
}

func TestCreateBatchEmptyBody(t *testing.T) {
	r, _ := setupBatchAPI(t)

	w := doJSON(t, r, http.MethodPost, "/batches", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status want 400 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Dados vazios") {
		t.Fatalf("body want Dados vazios got %s", w.Body.String())
	}
}

func TestCreateBatchUnknownProduct(t *testing.T) {
	r, db := setupBatchAPI(t)
	_, unitID, _, _, _ := seedBatchFixtures(t, db)

	body := fmt.Sprintf(`{"product_id": "missing", "output_unit_id": %q, "output": 1}`, unitID)
	w := doJSON(t, r, http.MethodPost, "/batches", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status want 404 got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Produto não encontrado") {
		t.Fatalf("body wrong: %s", w.Body.String())
	}
}

func TestUpdateBatchTransitionAndDeleteGuard(t *testing.T) {
	r, db := setupBatchAPI(t)
	productID, unitID, materialID, _, productionID := seedBatchFixtures(t, db)

	create := fmt.Sprintf(`{"product_id": %q, "output_unit_id": %q, "output": 10,
		"materials": [{"id": %q, "unit_value": 4.50, "amount": 4}]}`,
		productID, unitID, materialID)
	w := doJSON(t, r, http.MethodPost, "/batches", create)
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d: %s", w.Code, w.Body.String())
	}
	var batch struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &batch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	update := fmt.Sprintf(`{
		"materials": [{"material": {"id": %q, "unit_value": 4.50}, "amount": 2}],
		"status": {"status": {"id": %q}, "notes": "Cozimento iniciado"},
		"output": 9
	}`, materialID, productionID)
	w = doJSON(t, r, http.MethodPatch, "/batches/batch/"+batch.ID, update)
	if w.Code != http.StatusOK {
		t.Fatalf("update want 200 got %d: %s", w.Code, w.Body.String())
	}
	var updated struct {
		UnitValue string `json:"unit_value"`
		Statuses  []struct {
			Notes string `json:"notes"`
		} `json:"statuses"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("unmarshal updated failed: %v", err)
	}
	// 4.50 * 6 / 9 = 3.00
	if updated.UnitValue != "3.00" {
		t.Fatalf("unit value want 3.00 got %q", updated.UnitValue)
	}
	if len(updated.Statuses) != 2 || updated.Statuses[0].Notes != "Cozimento iniciado" {
		t.Fatalf("history wrong: %+v", updated.Statuses)
	}

	// In production: delete is blocked.
	w = doJSON(t, r, http.MethodDelete, "/batches/batch/"+batch.ID, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("guarded delete want 400 got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Impossível remover produção") {
		t.Fatalf("guard message wrong: %s", w.Body.String())
	}
}

func TestUpdateBatchZeroOutput(t *testing.T) {
	r, db := setupBatchAPI(t)
	productID, unitID, _, createdID, _ := seedBatchFixtures(t, db)

	create := fmt.Sprintf(`{"product_id": %q, "output_unit_id": %q, "output": 10}`, productID, unitID)
	w := doJSON(t, r, http.MethodPost, "/batches", create)
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d: %s", w.Code, w.Body.String())
	}
	var batch struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &batch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	update := fmt.Sprintf(`{"status": {"status": {"id": %q}}, "output": 0}`, createdID)
	w = doJSON(t, r, http.MethodPatch, "/batches/batch/"+batch.ID, update)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("zero output want 400 got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Rendimento deve ser maior que zero.") {
		t.Fatalf("message wrong: %s", w.Body.String())
	}
}
