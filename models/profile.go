package models

// UserProfile is the request-scoped health context the dashboard collects.
// It is rebuilt from form state on every request and never persisted on its
// own. Range and vocabulary constraints mirror the sidebar form.
type UserProfile struct {
	WeightLbs         float64      `json:"weight_lbs" binding:"required,min=1"`
	HeightIn          float64      `json:"height_in" binding:"required,min=1"`
	ActivityLevel     string       `json:"activity_level" binding:"required,oneof=Sedentary 'Lightly Active' 'Moderately Active' 'Very Active'"`
	Allergies         []string     `json:"allergies" binding:"omitempty,dive,oneof=Gluten Dairy Nuts Soy Shellfish Corn"`
	ChronicConditions []string     `json:"chronic_conditions" binding:"omitempty,dive,oneof=Diabetes 'High Blood Pressure' 'High Blood Sugar' Obesity"`
	DietaryPreference string       `json:"dietary_preference" binding:"required,oneof=Keto Vegan 'Low Sodium' 'High Protein' 'Low Carb' 'Low Calorie'"`
	CalorieGoal       int          `json:"calorie_goal" binding:"required,min=1600,max=2600"`
	MacroTargets      MacroTargets `json:"macro_targets" binding:"required"`
}

// MacroTargets holds the daily macro split. The three percentages are not
// required to sum to 100; the model interprets them as-is.
type MacroTargets struct {
	ProteinPct int `json:"protein_pct" binding:"required,min=10,max=50"`
	CarbsPct   int `json:"carbs_pct" binding:"required,min=20,max=70"`
	FatsPct    int `json:"fats_pct" binding:"required,min=10,max=60"`
}
