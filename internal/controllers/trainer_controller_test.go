package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gym_portal/internal/config"
	"gym_portal/internal/models"
)

func TestRoleGatesRedirect(t *testing.T) {
	r := setupTest(t)
	trainer := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)

	// A trainer on the customer side is turned away toward their dashboard.
	// The body must be exactly the error JSON: any gated data in front of it
	// would mean the handler ran before the gate.
	w := doJSON(t, r, http.MethodGet, "/gym/customer/dashboard", tokenFor(t, trainer), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t,
		`{"error":"This area is for customers only","redirect":"/gym/trainer/dashboard"}`,
		w.Body.String())

	// And a customer on the trainer side goes the other way.
	w = doJSON(t, r, http.MethodGet, "/gym/trainer/customers", tokenFor(t, customer), nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t,
		`{"error":"This area is for trainers only","redirect":"/gym/customer/dashboard"}`,
		w.Body.String())

	// An account with no tags falls through to the customer path.
	unassigned := createUser(t, "ghost", "No", "Tags")
	w = doJSON(t, r, http.MethodGet, "/gym/customer/dashboard", tokenFor(t, unassigned), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRoleGateBlocksWritesAndReads(t *testing.T) {
	r := setupTest(t)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)
	createUser(t, "alice01", "Alice", "Smith", models.RoleCustomer)
	token := tokenFor(t, customer)

	// A customer hitting a trainer mutation must leave no trace in storage.
	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/gym/trainer/customer/%d/diet/create", customer.ID),
		token,
		map[string]interface{}{"title": "Sneaky plan"})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t,
		`{"error":"This area is for trainers only","redirect":"/gym/customer/dashboard"}`,
		w.Body.String())

	var plans int64
	require.NoError(t, config.DB.Model(&models.DietPlan{}).Count(&plans).Error)
	assert.Zero(t, plans)

	// And a trainer-only listing must not leak a single customer record.
	w = doJSON(t, r, http.MethodGet, "/gym/trainer/customers", token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "alice01")
}

func TestTrainerCustomersSearch(t *testing.T) {
	r := setupTest(t)
	trainer := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	createUser(t, "alice01", "Alice", "Smith", models.RoleCustomer)
	createUser(t, "bobby", "Bob", "Jones", models.RoleCustomer)
	token := tokenFor(t, trainer)

	listUsernames := func(path string) []string {
		w := doJSON(t, r, http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		raw := decodeBody(t, w)["customers"].([]interface{})
		names := make([]string, 0, len(raw))
		for _, entry := range raw {
			names = append(names, entry.(map[string]interface{})["username"].(string))
		}
		return names
	}

	// Empty search returns every customer, never the trainer.
	assert.ElementsMatch(t, []string{"alice01", "bobby"}, listUsernames("/gym/trainer/customers"))

	// Case-insensitive substring over username, first and last name.
	assert.Equal(t, []string{"alice01"}, listUsernames("/gym/trainer/customers?search=ALI"))
	assert.Equal(t, []string{"alice01"}, listUsernames("/gym/trainer/customers?search=smith"))
	assert.Equal(t, []string{"bobby"}, listUsernames("/gym/trainer/customers?search=Jones"))

	// No match is an empty set.
	assert.Empty(t, listUsernames("/gym/trainer/customers?search=zzz"))
}

func TestTrainerCustomerDetailScopedToCustomerTag(t *testing.T) {
	r := setupTest(t)
	trainer := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	otherTrainer := createUser(t, "coach2", "Roy", "Kent", models.RoleTrainer)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)
	token := tokenFor(t, trainer)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/gym/trainer/customer/%d", customer.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "jane", body["customer"].(map[string]interface{})["username"])

	// Another trainer's ID is not a customer, so the scoped lookup misses.
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/gym/trainer/customer/%d", otherTrainer.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/gym/trainer/customer/99999", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrainerCreateDietPlanAttribution(t *testing.T) {
	r := setupTest(t)
	trainer := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/gym/trainer/customer/%d/diet/create", customer.ID),
		tokenFor(t, trainer),
		map[string]interface{}{
			"title":     "Cutting plan",
			"breakfast": "Oats",
		})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, decodeBody(t, w)["message"], "Jane Doe")

	var plan models.DietPlan
	require.NoError(t, config.DB.Where("customer_id = ?", customer.ID).First(&plan).Error)
	require.NotNil(t, plan.TrainerID)
	assert.Equal(t, trainer.ID, *plan.TrainerID)
	assert.True(t, plan.IsActive)
}

func TestTrainerCreatePlanKeepsExplicitInactive(t *testing.T) {
	r := setupTest(t)
	trainer := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)
	token := tokenFor(t, trainer)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/gym/trainer/customer/%d/diet/create", customer.ID),
		token,
		map[string]interface{}{"title": "Draft plan", "is_active": false})
	require.Equal(t, http.StatusCreated, w.Code)

	var diet models.DietPlan
	require.NoError(t, config.DB.Where("customer_id = ?", customer.ID).First(&diet).Error)
	assert.False(t, diet.IsActive, "explicitly inactive plan must be stored inactive")

	w = doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/gym/trainer/customer/%d/workout/create", customer.ID),
		token,
		map[string]interface{}{"title": "Draft workout", "is_active": false, "duration_weeks": 0})
	require.Equal(t, http.StatusCreated, w.Code)

	var workout models.WorkoutPlan
	require.NoError(t, config.DB.Where("customer_id = ?", customer.ID).First(&workout).Error)
	assert.False(t, workout.IsActive)
	assert.Zero(t, workout.DurationWeeks, "an explicit zero must not be replaced by the default")
}

func TestTrainerCreateWorkoutPlanDefaults(t *testing.T) {
	r := setupTest(t)
	trainer := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost,
		fmt.Sprintf("/gym/trainer/customer/%d/workout/create", customer.ID),
		tokenFor(t, trainer),
		map[string]interface{}{
			"title":  "Push pull legs",
			"monday": "Bench press 5x5",
		})
	require.Equal(t, http.StatusCreated, w.Code)

	var plan models.WorkoutPlan
	require.NoError(t, config.DB.Where("customer_id = ?", customer.ID).First(&plan).Error)
	assert.Equal(t, uint(4), plan.DurationWeeks)
	require.NotNil(t, plan.TrainerID)
	assert.Equal(t, trainer.ID, *plan.TrainerID)
}

func TestPlanEditScopedToAuthor(t *testing.T) {
	r := setupTest(t)
	author := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	other := createUser(t, "coach2", "Roy", "Kent", models.RoleTrainer)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)

	authorID := author.ID
	diet := models.DietPlan{CustomerID: customer.ID, TrainerID: &authorID, Title: "Bulking", IsActive: true}
	require.NoError(t, config.DB.Create(&diet).Error)
	workout := models.WorkoutPlan{CustomerID: customer.ID, TrainerID: &authorID, Title: "Strength", DurationWeeks: 4, IsActive: true}
	require.NoError(t, config.DB.Create(&workout).Error)

	update := map[string]interface{}{"title": "Renamed"}

	// A different trainer probing the plan ID gets a plain not-found.
	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/gym/trainer/diet/%d/edit", diet.ID), tokenFor(t, other), update)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/gym/trainer/workout/%d/edit", workout.ID), tokenFor(t, other), update)
	require.Equal(t, http.StatusNotFound, w.Code)

	var unchanged models.DietPlan
	require.NoError(t, config.DB.First(&unchanged, diet.ID).Error)
	assert.Equal(t, "Bulking", unchanged.Title)

	// The author can edit, and only submitted fields change.
	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/gym/trainer/diet/%d/edit", diet.ID), tokenFor(t, author),
		map[string]interface{}{"title": "Lean bulk", "is_active": false})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.DietPlan
	require.NoError(t, config.DB.First(&updated, diet.ID).Error)
	assert.Equal(t, "Lean bulk", updated.Title)
	assert.False(t, updated.IsActive)
	assert.Equal(t, customer.ID, updated.CustomerID)

	w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/gym/trainer/workout/%d/edit", workout.ID), tokenFor(t, author),
		map[string]interface{}{"friday": "Deadlift 3x5"})
	require.Equal(t, http.StatusOK, w.Code)

	var updatedWorkout models.WorkoutPlan
	require.NoError(t, config.DB.First(&updatedWorkout, workout.ID).Error)
	assert.Equal(t, "Strength", updatedWorkout.Title)
	assert.Equal(t, "Deadlift 3x5", updatedWorkout.Friday)
}

func TestTrainerDashboardCounts(t *testing.T) {
	r := setupTest(t)
	trainer := createUser(t, "coach", "Ted", "Lasso", models.RoleTrainer)
	other := createUser(t, "coach2", "Roy", "Kent", models.RoleTrainer)
	customer := createUser(t, "jane", "Jane", "Doe", models.RoleCustomer)
	createUser(t, "bobby", "Bob", "Jones", models.RoleCustomer)

	trainerID := trainer.ID
	otherID := other.ID
	require.NoError(t, config.DB.Create(&models.DietPlan{CustomerID: customer.ID, TrainerID: &trainerID, Title: "A", IsActive: true}).Error)
	require.NoError(t, config.DB.Create(&models.DietPlan{CustomerID: customer.ID, TrainerID: &otherID, Title: "B", IsActive: true}).Error)
	require.NoError(t, config.DB.Create(&models.WorkoutPlan{CustomerID: customer.ID, TrainerID: &trainerID, Title: "C", IsActive: true}).Error)

	w := doJSON(t, r, http.MethodGet, "/gym/trainer/dashboard", tokenFor(t, trainer), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["total_customers"])
	assert.Equal(t, float64(1), body["total_diet_plans"])
	assert.Equal(t, float64(1), body["total_workout_plans"])
	assert.Len(t, body["customers"], 2)
}
