package db_test

import (
	"path/filepath"
	"testing"

	"starwars-api/confs"
	"starwars-api/db"
	"starwars-api/db/dbtest"
	"starwars-api/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

func TestConnectSQLiteFallback(t *testing.T) {
	v := confs.NewViper()
	v.Set("DATABASE_URL", "")
	v.Set("DB_HOST", "")
	v.Set("SQLITE_PATH", filepath.Join(t.TempDir(), "blog.db"))
	cfg, err := confs.FromViper(v)
	require.NoError(t, err)

	log := zaptest.NewLogger(t)
	database, err := db.Connect(cfg, log)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, db.Migrate(database, log))
	for _, model := range db.Models {
		assert.True(t, database.GetDB().Migrator().HasTable(model))
	}
}

func TestFavoriteUniqueIndexTranslatesToDuplicatedKey(t *testing.T) {
	database := dbtest.New(t)

	require.NoError(t, database.GetDB().Create(&entities.FavPlanet{UserID: 1, PlanetID: 5}).Error)
	err := database.GetDB().Create(&entities.FavPlanet{UserID: 1, PlanetID: 5}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
