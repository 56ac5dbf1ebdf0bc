package domain

// MenuItem is one sellable drink: fixed ingredient requirements and a
// fixed price. Immutable after catalog construction.
type MenuItem struct {
	Name   string
	Recipe map[Ingredient]int
	Price  int
}

type Menu []MenuItem

// Find looks up an item by name.
func (m Menu) Find(name string) (MenuItem, bool) {
	for _, item := range m {
		if item.Name == name {
			return item, true
		}
	}
	return MenuItem{}, false
}

// DefaultMenu is the kiosk's fixed catalog. Not externally configurable.
func DefaultMenu() Menu {
	return Menu{
		{
			Name: "Latte",
			Recipe: map[Ingredient]int{
				IngredientWater:  200,
				IngredientMilk:   150,
				IngredientCoffee: 24,
			},
			Price: 150,
		},
		{
			Name: "Espresso",
			Recipe: map[Ingredient]int{
				IngredientWater:  50,
				IngredientMilk:   0,
				IngredientCoffee: 18,
			},
			Price: 100,
		},
		{
			Name: "Cappuccino",
			Recipe: map[Ingredient]int{
				IngredientWater:  250,
				IngredientMilk:   100,
				IngredientCoffee: 24,
			},
			Price: 200,
		},
	}
}
