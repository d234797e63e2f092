package model

// StationsTable: имя таблицы станций, как оно задано во внешней БД.
const StationsTable = "Stations"

// Station: строка таблицы Stations, используется только для списка в админке.
// Диагностический запрос /api/test-db схему не предполагает и читает строки как есть.
type Station struct {
	ID   int64  `gorm:"primaryKey" json:"id"`
	Name string `json:"name"`
	City string `json:"city"`
	Code string `json:"code"`
}

// TableName фиксирует имя таблицы вместо gorm-овского "stations".
func (Station) TableName() string { return StationsTable }
