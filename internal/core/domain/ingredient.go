package domain

type Ingredient string

const (
	IngredientWater  Ingredient = "water"
	IngredientMilk   Ingredient = "milk"
	IngredientCoffee Ingredient = "coffee"
)

// Ingredients returns the fixed set of tracked ingredients in canonical
// order. No new ingredient is ever introduced at runtime.
func Ingredients() []Ingredient {
	return []Ingredient{IngredientWater, IngredientMilk, IngredientCoffee}
}

// DefaultLevels is the machine's full tank: water and milk in ml,
// coffee grounds in grams. Refill always resets to exactly these values.
func DefaultLevels() map[Ingredient]int {
	return map[Ingredient]int{
		IngredientWater:  1000,
		IngredientMilk:   500,
		IngredientCoffee: 300,
	}
}
