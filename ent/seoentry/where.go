// Code generated by ent, DO NOT EDIT.

package seoentry

import (
	"portfolio-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldID, id))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldPath, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldDescription, v))
}

// Keywords applies equality check predicate on the "keywords" field. It's identical to KeywordsEQ.
func Keywords(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldKeywords, v))
}

// OgImage applies equality check predicate on the "og_image" field. It's identical to OgImageEQ.
func OgImage(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldOgImage, v))
}

// Priority applies equality check predicate on the "priority" field. It's identical to PriorityEQ.
func Priority(v float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldPriority, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasSuffix(FieldPath, v))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContainsFold(FieldPath, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleIsNil applies the IsNil predicate on the "title" field.
func TitleIsNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIsNull(FieldTitle))
}

// TitleNotNil applies the NotNil predicate on the "title" field.
func TitleNotNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotNull(FieldTitle))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContainsFold(FieldDescription, v))
}

// KeywordsEQ applies the EQ predicate on the "keywords" field.
func KeywordsEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldKeywords, v))
}

// KeywordsNEQ applies the NEQ predicate on the "keywords" field.
func KeywordsNEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldKeywords, v))
}

// KeywordsIn applies the In predicate on the "keywords" field.
func KeywordsIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldKeywords, vs...))
}

// KeywordsNotIn applies the NotIn predicate on the "keywords" field.
func KeywordsNotIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldKeywords, vs...))
}

// KeywordsGT applies the GT predicate on the "keywords" field.
func KeywordsGT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldKeywords, v))
}

// KeywordsGTE applies the GTE predicate on the "keywords" field.
func KeywordsGTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldKeywords, v))
}

// KeywordsLT applies the LT predicate on the "keywords" field.
func KeywordsLT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldKeywords, v))
}

// KeywordsLTE applies the LTE predicate on the "keywords" field.
func KeywordsLTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldKeywords, v))
}

// KeywordsContains applies the Contains predicate on the "keywords" field.
func KeywordsContains(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContains(FieldKeywords, v))
}

// KeywordsHasPrefix applies the HasPrefix predicate on the "keywords" field.
func KeywordsHasPrefix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasPrefix(FieldKeywords, v))
}

// KeywordsHasSuffix applies the HasSuffix predicate on the "keywords" field.
func KeywordsHasSuffix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasSuffix(FieldKeywords, v))
}

// KeywordsIsNil applies the IsNil predicate on the "keywords" field.
func KeywordsIsNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIsNull(FieldKeywords))
}

// KeywordsNotNil applies the NotNil predicate on the "keywords" field.
func KeywordsNotNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotNull(FieldKeywords))
}

// KeywordsEqualFold applies the EqualFold predicate on the "keywords" field.
func KeywordsEqualFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEqualFold(FieldKeywords, v))
}

// KeywordsContainsFold applies the ContainsFold predicate on the "keywords" field.
func KeywordsContainsFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContainsFold(FieldKeywords, v))
}

// OgImageEQ applies the EQ predicate on the "og_image" field.
func OgImageEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldOgImage, v))
}

// OgImageNEQ applies the NEQ predicate on the "og_image" field.
func OgImageNEQ(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldOgImage, v))
}

// OgImageIn applies the In predicate on the "og_image" field.
func OgImageIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldOgImage, vs...))
}

// OgImageNotIn applies the NotIn predicate on the "og_image" field.
func OgImageNotIn(vs ...string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldOgImage, vs...))
}

// OgImageGT applies the GT predicate on the "og_image" field.
func OgImageGT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldOgImage, v))
}

// OgImageGTE applies the GTE predicate on the "og_image" field.
func OgImageGTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldOgImage, v))
}

// OgImageLT applies the LT predicate on the "og_image" field.
func OgImageLT(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldOgImage, v))
}

// OgImageLTE applies the LTE predicate on the "og_image" field.
func OgImageLTE(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldOgImage, v))
}

// OgImageContains applies the Contains predicate on the "og_image" field.
func OgImageContains(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContains(FieldOgImage, v))
}

// OgImageHasPrefix applies the HasPrefix predicate on the "og_image" field.
func OgImageHasPrefix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasPrefix(FieldOgImage, v))
}

// OgImageHasSuffix applies the HasSuffix predicate on the "og_image" field.
func OgImageHasSuffix(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldHasSuffix(FieldOgImage, v))
}

// OgImageIsNil applies the IsNil predicate on the "og_image" field.
func OgImageIsNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIsNull(FieldOgImage))
}

// OgImageNotNil applies the NotNil predicate on the "og_image" field.
func OgImageNotNil() predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotNull(FieldOgImage))
}

// OgImageEqualFold applies the EqualFold predicate on the "og_image" field.
func OgImageEqualFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEqualFold(FieldOgImage, v))
}

// OgImageContainsFold applies the ContainsFold predicate on the "og_image" field.
func OgImageContainsFold(v string) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldContainsFold(FieldOgImage, v))
}

// ChangeFreqEQ applies the EQ predicate on the "change_freq" field.
func ChangeFreqEQ(v ChangeFreq) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldChangeFreq, v))
}

// ChangeFreqNEQ applies the NEQ predicate on the "change_freq" field.
func ChangeFreqNEQ(v ChangeFreq) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldChangeFreq, v))
}

// ChangeFreqIn applies the In predicate on the "change_freq" field.
func ChangeFreqIn(vs ...ChangeFreq) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldChangeFreq, vs...))
}

// ChangeFreqNotIn applies the NotIn predicate on the "change_freq" field.
func ChangeFreqNotIn(vs ...ChangeFreq) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldChangeFreq, vs...))
}

// PriorityEQ applies the EQ predicate on the "priority" field.
func PriorityEQ(v float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldPriority, v))
}

// PriorityNEQ applies the NEQ predicate on the "priority" field.
func PriorityNEQ(v float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldPriority, v))
}

// PriorityIn applies the In predicate on the "priority" field.
func PriorityIn(vs ...float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldPriority, vs...))
}

// PriorityNotIn applies the NotIn predicate on the "priority" field.
func PriorityNotIn(vs ...float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldPriority, vs...))
}

// PriorityGT applies the GT predicate on the "priority" field.
func PriorityGT(v float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldPriority, v))
}

// PriorityGTE applies the GTE predicate on the "priority" field.
func PriorityGTE(v float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldPriority, v))
}

// PriorityLT applies the LT predicate on the "priority" field.
func PriorityLT(v float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldPriority, v))
}

// PriorityLTE applies the LTE predicate on the "priority" field.
func PriorityLTE(v float64) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldPriority, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SeoEntry {
	return predicate.SeoEntry(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SeoEntry) predicate.SeoEntry {
	return predicate.SeoEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SeoEntry) predicate.SeoEntry {
	return predicate.SeoEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SeoEntry) predicate.SeoEntry {
	return predicate.SeoEntry(sql.NotPredicates(p))
}
