package models

import (
	"database/sql/driver"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/lib/pq"
)

// Description holds the structured facility description stored as a single
// jsonb column. Scan/Value is the only (de)serialize boundary for it.
type Description struct {
	Features             []string `json:"features"`
	NearestTransportBus  *string  `json:"nearest_transport_bus"`
	NearestTransportMetro *string `json:"nearest_transport_metro"`
	NearestTransportTrain *string `json:"nearest_transport_train"`
}

func (d Description) Value() (driver.Value, error) {
	if d.Features == nil {
		d.Features = []string{}
	}
	return json.Marshal(d)
}

func (d *Description) Scan(value interface{}) error {
	if value == nil {
		*d = Description{Features: []string{}}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for description column")
	}
	if len(raw) == 0 {
		*d = Description{Features: []string{}}
		return nil
	}
	if err := json.Unmarshal(raw, d); err != nil {
		return err
	}
	if d.Features == nil {
		d.Features = []string{}
	}
	return nil
}

type Restroom struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
	Name         string         `gorm:"not null" json:"name"`
	Address      string         `gorm:"not null" json:"address"`
	Phone        string         `gorm:"uniqueIndex;type:varchar(15);not null" json:"phone"`
	PasswordHash string         `json:"-"`
	Latitude     float64        `json:"latitude"`
	Longitude    float64        `json:"longitude"`
	Type         string         `gorm:"default:public" json:"type"`
	Gender       string         `gorm:"default:unisex" json:"gender"`
	Pictures     pq.StringArray `gorm:"type:text[]" json:"pictures"`
	Rating       float64        `gorm:"default:0" json:"rating"`
	Description  Description    `gorm:"type:jsonb" json:"description"`
	Rooms        []Room         `gorm:"foreignKey:RestroomID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	Reviews      []Review       `gorm:"foreignKey:RestroomID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}
