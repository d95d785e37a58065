// Package model provides the model specification feature: template pickers
// and the specification editor.
package model

// Signals represents the editor signals sent from the frontend.
type Signals struct {
	Category string `json:"category"`
	Example  string `json:"example"`
	Spec     string `json:"spec"`
}
