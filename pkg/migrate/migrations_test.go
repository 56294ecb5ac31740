package migrate

import "testing"

func TestMigrationsDirIsValid(t *testing.T) {
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations directory failed validation: %v", err)
	}
}

func TestCreateSQLMigrationSanitizesName(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Payment Index!")
	if err != nil {
		t.Fatalf("create migration: %v", err)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration failed validation: %v", err)
	}
	if path == "" {
		t.Fatal("expected a path for the created migration")
	}
}

func TestCreateSQLMigrationRejectsEmptyName(t *testing.T) {
	if _, err := CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatal("expected error for name that sanitizes to empty")
	}
}
