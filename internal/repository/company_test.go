package repository

import (
	"testing"

	"roadfreight/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanyRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	created := createCompany(t, db, "Acme", "Ford")

	found, err := repo.ReadByID(created.CompanyID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Acme", found.CompanyName)
	assert.Equal(t, "Ford", found.Brand)
	assert.Empty(t, found.Trucks)
}

func TestCompanyCreateWithTrucks(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	company := models.Company{
		CompanyName: "Acme",
		Brand:       "Ford",
		Trucks: []models.Truck{
			{Brand: "Ford", TruckCapacity: 1000.00, Year: 2020},
			{Brand: "Ford", TruckCapacity: 2000.00, Year: 2021},
		},
	}
	created, err := repo.Create(&company)
	require.NoError(t, err)

	found, err := repo.ReadByID(created.CompanyID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Len(t, found.Trucks, 2)
	for _, truck := range found.Trucks {
		require.NotNil(t, truck.CompanyID)
		assert.Equal(t, created.CompanyID, *truck.CompanyID)
	}
}

func TestCompanyPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	created := createCompany(t, db, "Acme", "Ford")

	updated, err := repo.Update(created.CompanyID, map[string]any{"brand": "Volvo"})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Volvo", updated.Brand)
	assert.Equal(t, "Acme", updated.CompanyName, "untouched field keeps prior value")
}

func TestCompanyNotFoundSymmetry(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	found, err := repo.ReadByID(999999)
	require.NoError(t, err)
	assert.Nil(t, found)

	updated, err := repo.Update(999999, map[string]any{"brand": "Volvo"})
	require.NoError(t, err)
	assert.Nil(t, updated)

	deleted, err := repo.Delete(999999)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCompanyIdempotentDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	created := createCompany(t, db, "Acme", "Ford")

	deleted, err := repo.Delete(created.CompanyID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(created.CompanyID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCompanyFindByNameAndBrand(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	createCompany(t, db, "Acme", "Ford")
	createCompany(t, db, "Acme", "Volvo")
	createCompany(t, db, "Globex", "Ford")

	byName, err := repo.ReadByName("Acme")
	require.NoError(t, err)
	assert.Len(t, byName, 2)

	byBrand, err := repo.ReadByBrand("Ford")
	require.NoError(t, err)
	assert.Len(t, byBrand, 2)

	none, err := repo.ReadByName("Nonexistent")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCompanyDeleteByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	createCompany(t, db, "Acme", "Ford")
	createCompany(t, db, "Acme", "Volvo")

	affected, err := repo.DeleteByName("Acme")
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	affected, err = repo.DeleteByName("Acme")
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestCompanyReadAll(t *testing.T) {
	db := newTestDB(t)
	repo := NewCompanyRepository(db)

	createCompany(t, db, "Acme", "Ford")
	createCompany(t, db, "Globex", "Volvo")

	all, err := repo.ReadAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
