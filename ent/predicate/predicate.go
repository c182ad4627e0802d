// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Certificate is the predicate function for certificate builders.
type Certificate func(*sql.Selector)

// ChatbotSetting is the predicate function for chatbotsetting builders.
type ChatbotSetting func(*sql.Selector)

// ContactMessage is the predicate function for contactmessage builders.
type ContactMessage func(*sql.Selector)

// CustomForm is the predicate function for customform builders.
type CustomForm func(*sql.Selector)

// IconVariant is the predicate function for iconvariant builders.
type IconVariant func(*sql.Selector)

// SeoEntry is the predicate function for seoentry builders.
type SeoEntry func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TechDetail is the predicate function for techdetail builders.
type TechDetail func(*sql.Selector)

// TechIcon is the predicate function for techicon builders.
type TechIcon func(*sql.Selector)

// Technology is the predicate function for technology builders.
type Technology func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
