package domain

import (
	"time"

	"github.com/google/uuid"
)

type Student struct {
	ID        uuid.UUID `csv:"id"         db:"id"         json:"id"`
	Name      string    `csv:"name"       db:"name"       json:"name"       validate:"required"`
	Roll      string    `csv:"roll"       db:"roll"       json:"roll"       validate:"required"`
	Subject   string    `csv:"subject"    db:"subject"    json:"subject"    validate:"required"`
	Marks     float64   `csv:"marks"      db:"marks"      json:"marks"      validate:"gte=0,lte=100"`
	CreatedAt time.Time `csv:"created_at" db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `csv:"-"          db:"updated_at" json:"updatedAt"`

	// Row is the spreadsheet row the record was read from. Zero for records loaded from the store.
	Row int `csv:"-" db:"-" json:"-"`
}
