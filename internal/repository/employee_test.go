package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeFinders(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)

	createEmployee(t, db, "Alice", "Johnson", 8)
	createEmployee(t, db, "Alice", "Brown", 3)
	createEmployee(t, db, "Nisha", "Brown", 8)

	byFirst, err := repo.ReadByFirstName("Alice")
	require.NoError(t, err)
	assert.Len(t, byFirst, 2)

	byLast, err := repo.ReadByLastName("Brown")
	require.NoError(t, err)
	assert.Len(t, byLast, 2)

	byYears, err := repo.ReadByYearsOfService(8)
	require.NoError(t, err)
	assert.Len(t, byYears, 2)

	none, err := repo.ReadByYearsOfService(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEmployeeDeleteByYearsOfService(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)

	createEmployee(t, db, "Alice", "Johnson", 8)
	createEmployee(t, db, "Nisha", "Brown", 8)
	keep := createEmployee(t, db, "Binita", "Khua", 7)

	affected, err := repo.DeleteByYearsOfService(8)
	require.NoError(t, err)
	assert.EqualValues(t, 2, affected)

	survivor, err := repo.ReadByID(keep.EmployeeID)
	require.NoError(t, err)
	assert.NotNil(t, survivor)
}

func TestEmployeePreloadsRoles(t *testing.T) {
	db := newTestDB(t)
	repo := NewEmployeeRepository(db)

	employee := createEmployee(t, db, "Alice", "Johnson", 8)
	createDriver(t, db, employee.EmployeeID, "Regular")
	createMechanic(t, db, employee.EmployeeID, "Ford")

	found, err := repo.ReadByID(employee.EmployeeID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Len(t, found.Drivers, 1)
	assert.Len(t, found.Mechanics, 1)
}
