// Package models contains the GORM persistence models and their mappings
// to and from the domain entities. Domain types never carry gorm tags for
// table layout; all schema concerns live here.
package models
