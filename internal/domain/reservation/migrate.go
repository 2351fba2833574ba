package reservation

import (
	"fmt"

	"bookify/internal/database"

	"gorm.io/gorm"
)

// Migrate creates the reservations table. On PostgreSQL it also adds the
// room foreign key and an exclusion constraint that rejects overlapping
// periods for the same room at the storage level.
func Migrate(db *gorm.DB) error {
	if err := database.Migrate(db, &reservationModel{}); err != nil {
		return err
	}
	if database.Dialect(db) != database.DialectPostgres {
		return nil
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}
	constraints := []struct {
		name string
		ddl  string
	}{
		{
			name: "fk_reservations_room",
			ddl:  "ALTER TABLE reservations ADD CONSTRAINT fk_reservations_room FOREIGN KEY (room_id) REFERENCES rooms(id)",
		},
		{
			name: "reservations_no_overlap",
			ddl: "ALTER TABLE reservations ADD CONSTRAINT reservations_no_overlap " +
				"EXCLUDE USING gist (room_id WITH =, tstzrange(start_time, end_time, '[)') WITH &&)",
		},
	}
	for _, c := range constraints {
		if err := ensureConstraint(db, c.name, c.ddl); err != nil {
			return err
		}
	}
	return nil
}

func ensureConstraint(db *gorm.DB, name, ddl string) error {
	var count int64
	err := db.Raw("SELECT count(*) FROM pg_constraint WHERE conname = ?", name).Scan(&count).Error
	if err != nil {
		return fmt.Errorf("look up constraint %s: %w", name, err)
	}
	if count > 0 {
		return nil
	}
	if err := db.Exec(ddl).Error; err != nil {
		return fmt.Errorf("add constraint %s: %w", name, err)
	}
	return nil
}
