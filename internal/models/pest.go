package models

// Pest describes an agricultural pest or disease. Entries are built once at
// catalogue construction and never mutated at runtime.
type Pest struct {
	Name          string   `json:"name"`
	AffectedCrops []string `json:"affected_crops"`
	Symptoms      []string `json:"symptoms"`
	Treatment     []string `json:"treatment"`
	Prevention    []string `json:"prevention"`
}
