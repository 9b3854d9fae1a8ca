package services

import (
	"testing"

	"backend/models"
	"backend/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIngredientAssignsID(t *testing.T) {
	repo := &fakeIngredientRepo{}
	svc := NewIngredientService(repo)

	ing, err := svc.CreateIngredient(IngredientPayload{
		Name:              "Chicken Breast",
		Description:       "Boneless, skinless",
		ReferenceQuantity: 100,
		ReferenceUnit:     "g",
		Nutrients:         models.NutrientMap{"Protein": 31},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ing.ID)
	assert.Equal(t, "Chicken Breast", ing.Name)
}

func TestCreateIngredientDuplicateNameConflict(t *testing.T) {
	repo := &fakeIngredientRepo{}
	svc := NewIngredientService(repo)

	_, err := svc.CreateIngredient(IngredientPayload{Name: "Chicken Breast"})
	require.NoError(t, err)

	_, err = svc.CreateIngredient(IngredientPayload{Name: "Chicken Breast"})
	assert.ErrorIs(t, err, repositories.ErrIngredientExists)
	assert.Len(t, repo.ingredients, 1, "the store must be unchanged after the conflict")
}

func TestSearchIngredientsCaseInsensitive(t *testing.T) {
	repo := &fakeIngredientRepo{}
	svc := NewIngredientService(repo)

	_, err := svc.CreateIngredient(IngredientPayload{Name: "Chicken Breast"})
	require.NoError(t, err)

	found, err := svc.SearchIngredients("CHICKEN")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Chicken Breast", found[0].Name)
}

func TestListIngredients(t *testing.T) {
	repo := &fakeIngredientRepo{}
	svc := NewIngredientService(repo)

	_, err := svc.CreateIngredient(IngredientPayload{Name: "Apple"})
	require.NoError(t, err)
	_, err = svc.CreateIngredient(IngredientPayload{Name: "Banana"})
	require.NoError(t, err)

	all, err := svc.ListIngredients()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
