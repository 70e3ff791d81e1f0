package menugen

import (
	"fmt"
	"strings"

	"rasoi/internal/inventory"
)

const menuSystemPrompt = "You are a professional chef and menu planner. " +
	"Your task is to generate meals to optimize waste management. " +
	"You must ALWAYS return at least one food item in the foods array."

const menuFallbackSystemPrompt = "You are a professional chef. " +
	"Generate a simple menu with at least one food item using the available ingredients. " +
	"This is a fallback response."

const wasteSystemPrompt = "You are a professional chef and menu planner. " +
	"Your task is to guess potential waste based on the given data."

// BuildMenuPrompt formats the pantry, the existing menu and the
// surplus-ranked remaining inventory into the menu-planning prompt.
func BuildMenuPrompt(
	ingredients []CatalogIngredient,
	foods []CatalogFood,
	surplus []inventory.RemainingIngredient,
) string {

	var ingredientsList strings.Builder
	for _, ing := range ingredients {
		fmt.Fprintf(&ingredientsList,
			"- %s (ID: %d)\n    Price: $%.2f\n    Amount: %g %s\n",
			ing.Name, ing.ID, ing.Price, ing.Amount, ing.Unit,
		)
	}

	var foodsList strings.Builder
	for _, f := range foods {
		fmt.Fprintf(&foodsList,
			"- %s (ID: %d): %s\n",
			f.Name, f.ID, strings.Join(f.Ingredients, ", "),
		)
	}

	var surplusList strings.Builder
	for _, r := range surplus {
		fmt.Fprintf(&surplusList,
			"- %s (ID: %d): %g %s\n",
			r.Name, r.ID, r.Remaining, r.Unit,
		)
	}

	return fmt.Sprintf(`1. Number of meals to plan: not more than 5.

2. Available Ingredients:
%s
3. Existing food items already on the menu (do not recreate these):
%s
4. Remaining ingredients, largest surplus first (prioritize these in menu planning):
%s
Please generate a menu that:
- Uses the available ingredients efficiently
- Creates a good mix of existing and new dishes
- Takes into account seasonal availability of new ingredients
- Prioritizes ingredients that need to be used soon
- Uses the remaining ingredients to optimize waste management

For each meal, please specify:
- Required ingredients
- Estimated cost per serving (as a number, without any currency sign)

Respond with ONLY a JSON object with the following structure:
{
    "foods": [
        {
            "name": "",
            "price": 0,
            "ingredients": [
                {
                    "id": "",
                    "name": "",
                    "quantity": "",
                    "unit": ""
                }
            ]
        }
    ]
}
Use the respective DB id for "id"; if the ingredient is not in the remaining ingredients list, use null.`,
		ingredientsList.String(),
		foodsList.String(),
		surplusList.String(),
	)
}

// BuildWastePrompt formats remaining inventory into the waste-estimation prompt.
func BuildWastePrompt(
	remaining []inventory.RemainingIngredient,
	timePeriod string,
) string {

	var list strings.Builder
	for _, r := range remaining {
		fmt.Fprintf(&list, "- %s: %g %s\n", r.Name, r.Remaining, r.Unit)
	}

	return fmt.Sprintf(`Determine potential waste based on sales estimation for %s with the following data:

1. Available Ingredients:
%s
Please analyze the data to:
- Identify ingredients that are likely to go to waste based on current sales trends
- Estimate the quantity of each ingredient that might remain unused
- Suggest potential actions to minimize waste

For each ingredient, please specify:
- Remaining quantity
- Estimated waste based on sales (ensure this is a non-zero value if the ingredient is likely to go to waste)

Respond with ONLY a JSON object with the following structure:
{
    "ingredients": [
        {
            "id": "",
            "name": "",
            "remaining": 0,
            "unit": "",
            "estimated_waste": 0
        }
    ]
}
Ensure the response is a valid JSON object that can be parsed by the UI.`,
		timePeriod,
		list.String(),
	)
}
