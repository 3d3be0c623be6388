package db

import (
	"path/filepath"
	"reflect"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/terraincognita07/autonomie/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestOpenSQLiteAppliesEmbeddedMigrationsOnCleanDatabase(t *testing.T) {
	database := openTestDatabase(t)

	for _, table := range []string{
		"users",
		"financial_goals",
		"revenue_sources",
		"expenses",
		"projects",
		"project_actions",
		"cycles",
		"weekly_progress",
		"quarterly_reflections",
		"daily_routines",
	} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist after migrations", table)
		}
	}

	records := loadMigrationVersions(t, database)
	if !reflect.DeepEqual(records, []string{"1"}) {
		t.Fatalf("expected initial migration recorded, got %v", records)
	}
}

func TestOpenSQLiteMigrationBootstrapIsIdempotent(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "autonomie-idempotent.db")

	first, err := OpenSQLite(databasePath, zap.NewNop())
	if err != nil {
		t.Fatalf("first open sqlite: %v", err)
	}
	before := loadMigrationVersions(t, first)
	firstSQLDB, err := first.DB()
	if err != nil {
		t.Fatalf("first open sql db: %v", err)
	}
	if err := firstSQLDB.Close(); err != nil {
		t.Fatalf("close first sql db: %v", err)
	}

	second, err := OpenSQLite(databasePath, zap.NewNop())
	if err != nil {
		t.Fatalf("second open sqlite: %v", err)
	}
	secondSQLDB, _ := second.DB()
	t.Cleanup(func() {
		_ = secondSQLDB.Close()
	})

	after := loadMigrationVersions(t, second)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("expected migration records to remain unchanged between boots, before=%v after=%v", before, after)
	}
}

func TestApplyMigrationsSkipsExistingAddColumn(t *testing.T) {
	database := openTestDatabase(t)

	files := fstest.MapFS{
		"900_add_existing.sql": {Data: []byte("-- notes already exists\nALTER TABLE cycles ADD COLUMN notes TEXT NOT NULL DEFAULT '';\nALTER TABLE cycles ADD COLUMN color VARCHAR(16) NOT NULL DEFAULT '';")},
	}
	if err := applyMigrations(database, files); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	exists, err := tableColumnExists(database, "cycles", "color")
	if err != nil {
		t.Fatalf("inspect columns: %v", err)
	}
	if !exists {
		t.Fatal("expected cycles.color to be added")
	}
}

func TestApplyMigrationsRejectsDuplicateVersions(t *testing.T) {
	database := openTestDatabase(t)

	files := fstest.MapFS{
		"900_first.sql":   {Data: []byte("SELECT 1;")},
		"0900_second.sql": {Data: []byte("SELECT 2;")},
	}
	if err := applyMigrations(database, files); err == nil {
		t.Fatal("expected duplicate version error")
	}
}

func TestSplitStatements(t *testing.T) {
	t.Parallel()

	got := splitStatements("-- header\nCREATE TABLE a (id INTEGER);\n\n  ;\nCREATE INDEX idx ON a (id);\n")
	want := []string{"CREATE TABLE a (id INTEGER)", "CREATE INDEX idx ON a (id)"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUsersEmailIndexIsCaseInsensitive(t *testing.T) {
	database := openTestDatabase(t)

	createTestUser(t, database, "QA-Test@Autonomie.Local")
	repo := NewUserRepository(database)

	exists, err := repo.ExistsByNormalizedEmail(" qa-test@autonomie.local ")
	if err != nil {
		t.Fatalf("exists by email: %v", err)
	}
	if !exists {
		t.Fatal("expected normalized email lookup to match")
	}

	duplicate := models.User{
		ID:           uuid.NewString(),
		Email:        "qa-test@autonomie.local",
		PasswordHash: "hash",
		LoginMethod:  models.LoginMethodPassword,
		Role:         models.RoleUser,
	}
	if err := database.Create(&duplicate).Error; err == nil {
		t.Fatal("expected duplicate normalized email insert to fail")
	}
}

func loadMigrationVersions(t *testing.T, database *gorm.DB) []string {
	t.Helper()

	versions := make([]string, 0)
	if err := database.Table("schema_migrations").Order("CAST(version AS INTEGER)").Pluck("version", &versions).Error; err != nil {
		t.Fatalf("load migration versions: %v", err)
	}
	return versions
}
