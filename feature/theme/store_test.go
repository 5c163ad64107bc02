package theme

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"toolbox/core/database"
	"toolbox/core/storage"
	"toolbox/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// roundTrip exercises every mode through a store.
func roundTrip(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	m, err := store.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, Automatic, m)

	for _, mode := range Modes {
		require.NoError(t, store.Set(ctx, "user", mode))
		got, err := store.Get(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}

	require.NoError(t, store.Delete(ctx, "user"))
	m, err = store.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, Automatic, m)

	require.NoError(t, store.Delete(ctx, "never-set"))
}

func TestMemoryStore(t *testing.T) {
	roundTrip(t, NewMemoryStore())
}

func setupSQLiteStore(t *testing.T) (*DatabaseStore, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := NewDatabaseStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store, db
}

func TestDatabaseStore(t *testing.T) {
	store, _ := setupSQLiteStore(t)
	roundTrip(t, store)
}

func TestDatabaseStore_UnknownStoredMode(t *testing.T) {
	store, db := setupSQLiteStore(t)
	require.NoError(t, db.Create(&Preference{Key: "legacy", Mode: "Sepia"}).Error)

	m, err := store.Get(context.Background(), "legacy")
	require.NoError(t, err)
	assert.Equal(t, Automatic, m)
}

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestDatabaseStore_MySQL(t *testing.T) {
	db, sqlMock := setupMockDB(t)
	store := NewDatabaseStore(db)
	ctx := context.Background()

	t.Run("Get", func(t *testing.T) {
		// GORM Where(...).First adds ORDER BY pref_key LIMIT 1
		sqlMock.ExpectQuery("SELECT \\* FROM `theme_preferences` WHERE pref_key = .+ ORDER BY `theme_preferences`.`pref_key` LIMIT .+").
			WithArgs("user", 1).
			WillReturnRows(sqlmock.NewRows([]string{"pref_key", "mode", "updated_at"}).AddRow("user", "DarkMode", time.Now()))

		m, err := store.Get(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, DarkMode, m)
	})

	t.Run("GetFailure", func(t *testing.T) {
		sqlMock.ExpectQuery("SELECT \\* FROM `theme_preferences`").WillReturnError(errors.New("connection reset"))

		_, err := store.Get(ctx, "user")
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("SetUpserts", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO `theme_preferences` .* ON DUPLICATE KEY UPDATE").
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectCommit()

		assert.NoError(t, store.Set(ctx, "user", LightMode))
	})

	t.Run("SetFailure", func(t *testing.T) {
		sqlMock.ExpectBegin()
		sqlMock.ExpectExec("INSERT INTO `theme_preferences`").WillReturnError(errors.New("read only"))
		sqlMock.ExpectRollback()

		assert.ErrorContains(t, store.Set(ctx, "user", LightMode), "read only")
	})

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestOpenDatabaseStore_ClosesOnMigrateFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectClose()

	// Every migration query is unexpected, so AutoMigrate fails.
	store, err := openDatabaseStore(context.Background(), db)
	assert.Error(t, err)
	assert.Nil(t, store)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestObjectStore(t *testing.T) {
	ctx := context.Background()
	notFound := minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."}

	t.Run("Get", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "toolbox", "preferences/user", mock.Anything).
			Return(io.NopCloser(strings.NewReader("DarkMode\n")), nil)

		m, err := NewObjectStore(client, "toolbox", "preferences").Get(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, DarkMode, m)
		client.AssertExpectations(t)
	})

	t.Run("GetMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "toolbox", "preferences/user", mock.Anything).Return(nil, notFound)

		m, err := NewObjectStore(client, "toolbox", "preferences").Get(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, Automatic, m)
	})

	t.Run("GetFailure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "toolbox", "preferences/user", mock.Anything).
			Return(nil, errors.New("dial tcp: refused"))

		_, err := NewObjectStore(client, "toolbox", "preferences").Get(ctx, "user")
		assert.Error(t, err)
	})

	t.Run("Set", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("PutObject", mock.Anything, "toolbox", "preferences/user", mock.Anything, int64(len("LightMode")), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		assert.NoError(t, NewObjectStore(client, "toolbox", "preferences").Set(ctx, "user", LightMode))
		client.AssertExpectations(t)
	})

	t.Run("NoPrefix", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "toolbox", "user", mock.Anything).
			Return(io.NopCloser(strings.NewReader("LightMode")), nil)

		m, err := NewObjectStore(client, "toolbox", "").Get(ctx, "user")
		require.NoError(t, err)
		assert.Equal(t, LightMode, m)
		client.AssertExpectations(t)
	})

	t.Run("DeleteMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("RemoveObject", mock.Anything, "toolbox", "preferences/user", mock.Anything).Return(notFound)

		assert.NoError(t, NewObjectStore(client, "toolbox", "preferences").Delete(ctx, "user"))
	})
}

func databaseConfigForTest() database.Config {
	return database.Config{Driver: database.DriverSQLite, Name: ":memory:"}
}

func storageConfigForTest() storage.Config {
	return storage.Config{Endpoint: "localhost:9000", Bucket: "toolbox", Prefix: "preferences"}
}
