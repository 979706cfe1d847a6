package settings

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err != nil || pool.Client.Ping() != nil {
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=settings_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not start postgres container: %v\n", err)
		os.Exit(1)
	}

	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		dsn := fmt.Sprintf(
			"host=localhost port=%v user=test password=test dbname=settings_test sslmode=disable",
			resource.GetPort("5432/tcp"),
		)

		db, openErr := gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, pingErr := db.DB()
		if pingErr != nil {
			return pingErr
		}
		if pingErr = sqlDB.Ping(); pingErr != nil {
			return pingErr
		}

		testDB = db
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not connect to postgres container: %v\n", err)
		_ = pool.Purge(resource)
		os.Exit(1)
	}

	code := m.Run()

	_ = pool.Purge(resource)
	os.Exit(code)
}

func TestLoad(t *testing.T) {
	if testDB == nil {
		t.Skip("docker is not available")
	}

	params, err := Load(testDB)
	require.NoError(t, err)

	t.Run("defaults are seeded", func(t *testing.T) {
		assert.True(t, params.ActivityScopingEnabled)
		assert.True(t, params.SubDegreesEnabled)
		assert.Equal(t, "Degree", params.DegreeLabel)
		assert.Equal(t, "Sub-degree", params.SubDegreeLabel)
		assert.Equal(t, "Presented at the examination", params.DefaultExamComment)
	})

	t.Run("seeding again does not duplicate rows", func(t *testing.T) {
		_, err := Load(testDB)
		require.NoError(t, err)

		var count int64
		require.NoError(t, testDB.Model(&Parameter{}).Count(&count).Error)
		assert.EqualValues(t, len(defaults), count)
	})

	t.Run("stored values win over defaults", func(t *testing.T) {
		result := testDB.Model(&Parameter{}).
			Where("name = ?", paramSubDegreesEnabled).
			Update("value", "false")
		require.NoError(t, result.Error)

		reloaded, err := Load(testDB)
		require.NoError(t, err)
		assert.False(t, reloaded.SubDegreesEnabled)
	})
}
