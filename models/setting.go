package models

// Setting is a string key/value pair. Writes have upsert semantics.
type Setting struct {
	Key   string `gorm:"primaryKey;size:100" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// DefaultHourlyRateKey is the only setting the tracker currently uses.
const DefaultHourlyRateKey = "defaultHourlyRate"
