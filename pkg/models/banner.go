package models

// Banner is a promotional banner toggled by admins.
type Banner struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Active bool   `json:"active" yaml:"active"`
}
