package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rashikfit/backend/internal/domain"
	"github.com/rashikfit/backend/internal/usecase"
)

// Services groups the use cases exposed over HTTP
type Services struct {
	Auth       *usecase.AuthService
	Calculator *usecase.CalculatorService
	Foods      *usecase.FoodService
	Recipes    *usecase.RecipeService
	Plans      *usecase.PlanService
	Progress   *usecase.ProgressService
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	services Services
	logger   logrus.FieldLogger
}

// NewHandler creates a new HTTP handler
func NewHandler(services Services, logger logrus.FieldLogger) *Handler {
	return &Handler{services: services, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password"`
}

// importRequest selects a USDA food either by search query or by FDC id
type importRequest struct {
	Query string `json:"query" binding:"required_without=FdcID"`
	FdcID int    `json:"fdcId" binding:"omitempty,gt=0"`
}

type mealCountRequest struct {
	NumberOfMeals int `json:"numberOfMeals"`
}

type assignRequest struct {
	RecipeID string `json:"recipeId" binding:"required"`
}

type servingsRequest struct {
	Servings float64 `json:"servings"`
}

// bind decodes the JSON body into req and answers 400 on failure
func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err))
		return false
	}
	return true
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rashik-backend",
		"version": "1.0.0",
	})
}

// Register handles POST /auth/register
func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}
	user, err := h.services.Auth.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}
	user, err := h.services.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GoogleSignIn handles POST /auth/google. New emails are registered.
func (h *Handler) GoogleSignIn(c *gin.Context) {
	var req credentialsRequest
	if !h.bind(c, &req) {
		return
	}
	user, err := h.services.Auth.SignInWithGoogle(c.Request.Context(), req.Email)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetCalculator returns the saved calculator session
func (h *Handler) GetCalculator(c *gin.Context) {
	state, err := h.services.Calculator.State(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if state == nil {
		h.respondError(c, fmt.Errorf("%w: no calculator session", domain.ErrNotFound))
		return
	}
	c.JSON(http.StatusOK, state)
}

// RunCalculator computes and saves targets
func (h *Handler) RunCalculator(c *gin.Context) {
	var req usecase.CalculationInput
	if !h.bind(c, &req) {
		return
	}
	result, err := h.services.Calculator.Run(c.Request.Context(), userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) ClearCalculator(c *gin.Context) {
	if err := h.services.Calculator.Clear(c.Request.Context(), userID(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) CarbCycle(c *gin.Context) {
	plan, err := h.services.Calculator.CarbCycle(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// ListFoods lists the catalogue plus custom foods, ranked when q is given
func (h *Handler) ListFoods(c *gin.Context) {
	foods, err := h.services.Foods.SearchFoods(c.Request.Context(), userID(c), c.Query("q"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func (h *Handler) ListIngredients(c *gin.Context) {
	foods, err := h.services.Foods.EligibleIngredients(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func (h *Handler) AddFood(c *gin.Context) {
	var req usecase.FoodInput
	if !h.bind(c, &req) {
		return
	}
	food, err := h.services.Foods.AddCustomFood(c.Request.Context(), userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (h *Handler) DeleteFood(c *gin.Context) {
	if err := h.services.Foods.DeleteCustomFood(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportFood imports the best USDA match for the query as a custom food
func (h *Handler) ImportFood(c *gin.Context) {
	var req importRequest
	if !h.bind(c, &req) {
		return
	}
	var (
		food domain.FoodItem
		err  error
	)
	if req.FdcID > 0 {
		food, err = h.services.Foods.ImportByFdcID(c.Request.Context(), userID(c), req.FdcID)
	} else {
		food, err = h.services.Foods.ImportFromUSDA(c.Request.Context(), userID(c), req.Query)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.services.Recipes.List(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *Handler) GetRecipe(c *gin.Context) {
	recipe, err := h.services.Recipes.Get(c.Request.Context(), userID(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) CreateRecipe(c *gin.Context) {
	var req usecase.RecipeInput
	if !h.bind(c, &req) {
		return
	}
	recipe, err := h.services.Recipes.Create(c.Request.Context(), userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *Handler) UpdateRecipe(c *gin.Context) {
	var req usecase.RecipeInput
	if !h.bind(c, &req) {
		return
	}
	recipe, err := h.services.Recipes.Update(c.Request.Context(), userID(c), c.Param("id"), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *Handler) DeleteRecipe(c *gin.Context) {
	if err := h.services.Recipes.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) GetPlan(c *gin.Context) {
	summary, err := h.services.Plans.Get(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SetMealCount resets the plan to N empty slots
func (h *Handler) SetMealCount(c *gin.Context) {
	var req mealCountRequest
	if !h.bind(c, &req) {
		return
	}
	summary, err := h.services.Plans.SetNumberOfMeals(c.Request.Context(), userID(c), req.NumberOfMeals)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) AssignSlotRecipe(c *gin.Context) {
	var req assignRequest
	if !h.bind(c, &req) {
		return
	}
	summary, err := h.services.Plans.AssignRecipe(c.Request.Context(), userID(c), c.Param("slotId"), req.RecipeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) SetSlotServings(c *gin.Context) {
	var req servingsRequest
	if !h.bind(c, &req) {
		return
	}
	summary, err := h.services.Plans.SetServings(c.Request.Context(), userID(c), c.Param("slotId"), req.Servings)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// AdjustPlan scales the plan to the saved calorie target
func (h *Handler) AdjustPlan(c *gin.Context) {
	summary, err := h.services.Plans.Adjust(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) RefreshPlan(c *gin.Context) {
	summary, err := h.services.Plans.Refresh(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) ListProgress(c *gin.Context) {
	entries, err := h.services.Progress.List(c.Request.Context(), userID(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *Handler) AddProgress(c *gin.Context) {
	var req usecase.WeightEntryInput
	if !h.bind(c, &req) {
		return
	}
	entry, err := h.services.Progress.Add(c.Request.Context(), userID(c), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *Handler) DeleteProgress(c *gin.Context) {
	if err := h.services.Progress.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
