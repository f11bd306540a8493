package migration

import (
	"errors"
	"testing"

	"clipshare/internal/app/server/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func testDB() config.DB {
	return config.DB{
		DatabaseURI: "postgres://localhost/clipshare",
		Migrations:  "migrations/postgres",
	}
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	var gotSource, gotDB string
	engine := func(source, db string) (Migrator, error) {
		gotSource, gotDB = source, db
		return mockM, nil
	}

	err := NewMigration(testDB(), engine).Up()

	assert.NoError(t, err)
	assert.Equal(t, "file://migrations/postgres", gotSource)
	assert.Equal(t, "postgres://localhost/clipshare", gotDB)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	assert.NoError(t, NewMigration(testDB(), engine).Up())
}

func TestMigration_Up_Failure(t *testing.T) {
	upErr := errors.New("dirty database")
	mockM := new(MockMigrator)
	mockM.On("Up").Return(upErr)
	mockM.On("Close").Return(nil, errors.New("close db"))

	engine := func(source, db string) (Migrator, error) {
		return mockM, nil
	}

	err := NewMigration(testDB(), engine).Up()

	assert.ErrorIs(t, err, upErr)
	assert.Contains(t, err.Error(), "close db")
}

func TestMigration_Up_EngineError(t *testing.T) {
	engine := func(source, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	err := NewMigration(testDB(), engine).Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}
