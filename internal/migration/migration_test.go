package migration_test

import (
	"testing"

	"property-listing/internal/migration"
)

func TestFiles(t *testing.T) {
	names, err := migration.Files()
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if len(names) == 0 || names[0] != "sql/0001_init.sql" {
		t.Errorf("unexpected migration files %v", names)
	}
}
