package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrZeroOutput is returned when the unit value cannot be derived because the
// batch output is zero. Callers map it to a user input error, never a fault.
var ErrZeroOutput = errors.New("batch output must be greater than zero")

// Batch is one production run: it consumes material line items to yield an
// output quantity of a product at a computed unit cost.
type Batch struct {
	ID string `gorm:"type:char(36);primarykey" json:"id"`

	ProductID string  `gorm:"type:char(36);not null;index" json:"-"`
	Product   Product `gorm:"foreignKey:ProductID" json:"-"`

	Output       Quantity `gorm:"type:decimal(20,3);not null;default:1" json:"output"`
	OutputUnitID string   `gorm:"type:char(36);not null;index" json:"-"`
	OutputUnit   Unit     `gorm:"foreignKey:OutputUnitID" json:"output_unit"`

	// UnitValue is the stored cost per output unit. It must be recomputed via
	// CalculateUnitValue after every change to Materials, before persisting.
	UnitValue Money `gorm:"type:decimal(20,2);not null;default:0" json:"unit_value"`

	Materials []BatchMaterial `gorm:"foreignKey:BatchID" json:"materials"`
	Statuses  []BatchStatus   `gorm:"foreignKey:BatchID" json:"statuses"`

	CreatedAt time.Time `gorm:"index" json:"created"`
	UpdatedAt time.Time `json:"updated"`

	// Derived fields, populated by Decorate. Never written to the database.
	Number        string       `gorm:"-" json:"number"`
	ProductName   string       `gorm:"-" json:"product"`
	TotalCost     Money        `gorm:"-" json:"total_cost"`
	CurrentStatus *BatchStatus `gorm:"-" json:"status"`
}

// TableName overrides the table name.
func (Batch) TableName() string {
	return "batches"
}

// BeforeCreate assigns the UUID primary key.
func (b *Batch) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// TotalCostValue sums unit_value * amount over every material line item.
func (b *Batch) TotalCostValue() decimal.Decimal {
	total := decimal.Zero
	for _, bm := range b.Materials {
		total = total.Add(bm.UnitValue.Decimal.Mul(bm.Amount.Decimal))
	}
	return total
}

// CurrentUnitValue derives the cost per output unit from the current line
// items. Returns ErrZeroOutput when the output is zero.
func (b *Batch) CurrentUnitValue() (decimal.Decimal, error) {
	if b.Output.Decimal.IsZero() {
		return decimal.Zero, ErrZeroOutput
	}
	return b.TotalCostValue().Div(b.Output.Decimal), nil
}

// CalculateUnitValue recomputes and stores the unit value.
func (b *Batch) CalculateUnitValue() error {
	value, err := b.CurrentUnitValue()
	if err != nil {
		return err
	}
	b.UnitValue = NewMoneyFromDecimal(value)
	return nil
}

// LatestStatus resolves the current status as the history entry with the
// maximum creation timestamp, regardless of slice order.
func (b *Batch) LatestStatus() *BatchStatus {
	var latest *BatchStatus
	for i := range b.Statuses {
		if latest == nil || b.Statuses[i].CreatedAt.After(latest.CreatedAt) {
			latest = &b.Statuses[i]
		}
	}
	return latest
}

// Decorate fills the derived serialization fields and orders the status
// history newest first.
func (b *Batch) Decorate() {
	sort.SliceStable(b.Statuses, func(i, j int) bool {
		return b.Statuses[i].CreatedAt.After(b.Statuses[j].CreatedAt)
	})
	b.Number = batchNumber(b.CreatedAt)
	b.ProductName = b.Product.Name
	b.TotalCost = NewMoneyFromDecimal(b.TotalCostValue())
	b.CurrentStatus = b.LatestStatus()
}

// batchNumber renders the human-facing batch number: the creation timestamp in
// seconds with the decimal point removed, microsecond precision, trailing
// zeros trimmed.
func batchNumber(created time.Time) string {
	frac := strings.TrimRight(fmt.Sprintf("%06d", created.Nanosecond()/1000), "0")
	if frac == "" {
		frac = "0"
	}
	return fmt.Sprintf("%d%s", created.Unix(), frac)
}

// BatchMaterial is one line item of a batch. Amount and UnitValue are value
// copies captured when the line item is appended; later changes to the
// material price never touch historical batches.
type BatchMaterial struct {
	ID      string `gorm:"type:char(36);primarykey" json:"id"`
	BatchID string `gorm:"type:char(36);not null;index" json:"batch_id"`

	MaterialID string   `gorm:"type:char(36);not null;index" json:"-"`
	Material   Material `gorm:"foreignKey:MaterialID" json:"material"`

	Amount    Quantity `gorm:"type:decimal(20,3);not null;default:0" json:"amount"`
	UnitValue Money    `gorm:"type:decimal(20,2);not null;default:0" json:"unit_value"`
}

// TableName overrides the table name.
func (BatchMaterial) TableName() string {
	return "batch_materials"
}

// BeforeCreate assigns the UUID primary key.
func (bm *BatchMaterial) BeforeCreate(tx *gorm.DB) error {
	if bm.ID == "" {
		bm.ID = uuid.NewString()
	}
	return nil
}

// BatchStatus is one entry of a batch's append-only lifecycle history.
type BatchStatus struct {
	ID      string `gorm:"type:char(36);primarykey" json:"id"`
	BatchID string `gorm:"type:char(36);not null;index" json:"-"`

	StatusID string `gorm:"type:char(36);not null;index" json:"-"`
	Status   Status `gorm:"foreignKey:StatusID" json:"status"`

	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"index" json:"created"`
}

// TableName overrides the table name.
func (BatchStatus) TableName() string {
	return "batch_statuses"
}

// BeforeCreate assigns the UUID primary key.
func (bs *BatchStatus) BeforeCreate(tx *gorm.DB) error {
	if bs.ID == "" {
		bs.ID = uuid.NewString()
	}
	return nil
}
