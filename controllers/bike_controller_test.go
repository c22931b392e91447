package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtorq-api/models"
)

func TestCreateBike(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "bikes@example.com")
	token := tokenFor(t, user.ID)

	t.Run("Valid bike", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/bikes", token, map[string]interface{}{
			"name":         "R1",
			"brand":        "Yamaha",
			"model":        "R3",
			"registration": "KA-01-AB-1234",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var bike models.Bike
		decodeBody(t, w, &bike)
		assert.Equal(t, user.ID, bike.UserID)
		assert.Equal(t, "R1", bike.Name)
		require.NotNil(t, bike.Registration)
		assert.Equal(t, "KA-01-AB-1234", *bike.Registration)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		w := performRequest(router, http.MethodPost, "/api/bikes", token, map[string]interface{}{
			"name": "Nameless",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBike_OwnerScoping(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	owner := createTestUser(t, db, "owner@example.com")
	other := createTestUser(t, db, "other@example.com")
	bike := createTestBike(t, db, owner.ID, "Owner Bike")

	// Owner sees the bike
	w := performRequest(router, http.MethodGet, "/api/bikes/"+bike.ID, tokenFor(t, owner.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Anyone else gets 404, never 403
	w = performRequest(router, http.MethodGet, "/api/bikes/"+bike.ID, tokenFor(t, other.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Same for update and delete
	w = performRequest(router, http.MethodPut, "/api/bikes/"+bike.ID, tokenFor(t, other.ID), map[string]interface{}{"name": "Hijacked"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(router, http.MethodDelete, "/api/bikes/"+bike.ID, tokenFor(t, other.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBikes_OnlyOwn(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	userA := createTestUser(t, db, "a@example.com")
	userB := createTestUser(t, db, "b@example.com")
	createTestBike(t, db, userA.ID, "A1")
	createTestBike(t, db, userA.ID, "A2")
	createTestBike(t, db, userB.ID, "B1")

	w := performRequest(router, http.MethodGet, "/api/bikes", tokenFor(t, userA.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikes []models.Bike
	decodeBody(t, w, &bikes)
	assert.Len(t, bikes, 2)
	for _, bike := range bikes {
		assert.Equal(t, userA.ID, bike.UserID)
	}
}

func TestUpdateBike_PartialPatch(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "patch@example.com")
	token := tokenFor(t, user.ID)

	registration := "KA-01-AB-1234"
	bike := models.Bike{
		ID:           "bike-patch",
		UserID:       user.ID,
		Name:         "Old Name",
		Brand:        "Yamaha",
		Model:        "R3",
		Registration: &registration,
	}
	require.NoError(t, db.Create(&bike).Error)

	t.Run("Absent fields untouched", func(t *testing.T) {
		w := performRequest(router, http.MethodPut, "/api/bikes/"+bike.ID, token, map[string]interface{}{
			"name": "New Name",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.Bike
		decodeBody(t, w, &updated)
		assert.Equal(t, "New Name", updated.Name)
		assert.Equal(t, "Yamaha", updated.Brand)
		require.NotNil(t, updated.Registration)
		assert.Equal(t, "KA-01-AB-1234", *updated.Registration)
	})

	t.Run("Empty string clears registration", func(t *testing.T) {
		w := performRequest(router, http.MethodPut, "/api/bikes/"+bike.ID, token, map[string]interface{}{
			"registration": "",
		})
		require.Equal(t, http.StatusOK, w.Code)

		var updated models.Bike
		decodeBody(t, w, &updated)
		// Cleared means gone, not the literal empty string
		assert.Nil(t, updated.Registration)

		var stored models.Bike
		require.NoError(t, db.First(&stored, "id = ?", bike.ID).Error)
		assert.Nil(t, stored.Registration)
	})
}

func TestDeleteBike_CascadesExpenses(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createTestUser(t, db, "cascade@example.com")
	token := tokenFor(t, user.ID)

	bike := createTestBike(t, db, user.ID, "Doomed")
	keeper := createTestBike(t, db, user.ID, "Keeper")

	for i, bikeID := range []string{bike.ID, bike.ID, keeper.ID} {
		expense := models.Expense{
			ID:     "exp-" + string(rune('a'+i)),
			UserID: user.ID,
			BikeID: bikeID,
			Type:   "Fuel",
			Amount: 100,
			Date:   "2024-01-01",
		}
		require.NoError(t, db.Create(&expense).Error)
	}

	w := performRequest(router, http.MethodDelete, "/api/bikes/"+bike.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bikeCount, expenseCount int64
	db.Model(&models.Bike{}).Where("id = ?", bike.ID).Count(&bikeCount)
	assert.Zero(t, bikeCount)

	db.Model(&models.Expense{}).Where("bike_id = ?", bike.ID).Count(&expenseCount)
	assert.Zero(t, expenseCount)

	// Expenses of the surviving bike are untouched
	db.Model(&models.Expense{}).Where("bike_id = ?", keeper.ID).Count(&expenseCount)
	assert.Equal(t, int64(1), expenseCount)

	// And the expense listing no longer includes the cascaded ones
	w = performRequest(router, http.MethodGet, "/api/expenses", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var expenses []models.Expense
	decodeBody(t, w, &expenses)
	assert.Len(t, expenses, 1)
}
