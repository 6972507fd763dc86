// Package models contains the GORM database models mapping domain entities
// to relational tables. Models are an infrastructure concern; conversion to
// and from domain entities happens via ToDomain/FromDomain.
package models
