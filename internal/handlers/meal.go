package handlers

import (
	"net/http"

	"daily-diet-api/internal/middleware"
	"daily-diet-api/internal/services"
	"daily-diet-api/internal/validation"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// MealHandler handles meal-related HTTP requests. Every route expects the
// caller's user ID in the request context.
type MealHandler struct {
	mealService *services.MealService
}

// NewMealHandler creates a new meal handler
func NewMealHandler(mealService *services.MealService) *MealHandler {
	return &MealHandler{
		mealService: mealService,
	}
}

// ListMeals handles GET /meals
func (h *MealHandler) ListMeals(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	meals, err := h.mealService.ListMeals(ctx, userID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to list meals")
		return
	}

	respondJSON(w, http.StatusOK, meals)
}

// GetMeal handles GET /meals/{id}
func (h *MealHandler) GetMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	mealID := chi.URLParam(r, "id")

	meal, err := h.mealService.GetMeal(ctx, userID, mealID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to get meal")
		return
	}

	respondJSON(w, http.StatusOK, meal)
}

// CreateMeal handles POST /meals
func (h *MealHandler) CreateMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)

	req, err := validation.DecodeJSON[services.CreateMealRequest](r.Body)
	if err != nil {
		respondServiceError(w, r, err, "Failed to decode meal")
		return
	}

	meal, err := h.mealService.CreateMeal(ctx, userID, req)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create meal")
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("meal_id", meal.ID).
		Bool("is_on_diet", meal.IsOnDiet).
		Msg("Meal created")

	w.WriteHeader(http.StatusCreated)
}

// UpdateMeal handles PUT /meals/{id}
func (h *MealHandler) UpdateMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	mealID := chi.URLParam(r, "id")

	req, err := validation.DecodeJSON[services.UpdateMealRequest](r.Body)
	if err != nil {
		respondServiceError(w, r, err, "Failed to decode meal")
		return
	}

	if _, err := h.mealService.UpdateMeal(ctx, userID, mealID, req); err != nil {
		respondServiceError(w, r, err, "Failed to update meal")
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("meal_id", mealID).
		Msg("Meal updated")

	w.WriteHeader(http.StatusNoContent)
}

// DeleteMeal handles DELETE /meals/{id}
func (h *MealHandler) DeleteMeal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	mealID := chi.URLParam(r, "id")

	if err := h.mealService.DeleteMeal(ctx, userID, mealID); err != nil {
		respondServiceError(w, r, err, "Failed to delete meal")
		return
	}

	log.Info().
		Str("user_id", userID).
		Str("meal_id", mealID).
		Msg("Meal deleted")

	w.WriteHeader(http.StatusNoContent)
}
