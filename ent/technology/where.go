// Code generated by ent, DO NOT EDIT.

package technology

import (
	"portfolio-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldID, id))
}

// CompanyName applies equality check predicate on the "company_name" field. It's identical to CompanyNameEQ.
func CompanyName(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldCompanyName, v))
}

// OldID applies equality check predicate on the "old_id" field. It's identical to OldIDEQ.
func OldID(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldOldID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompanyNameEQ applies the EQ predicate on the "company_name" field.
func CompanyNameEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldCompanyName, v))
}

// CompanyNameNEQ applies the NEQ predicate on the "company_name" field.
func CompanyNameNEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldCompanyName, v))
}

// CompanyNameIn applies the In predicate on the "company_name" field.
func CompanyNameIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldCompanyName, vs...))
}

// CompanyNameNotIn applies the NotIn predicate on the "company_name" field.
func CompanyNameNotIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldCompanyName, vs...))
}

// CompanyNameGT applies the GT predicate on the "company_name" field.
func CompanyNameGT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldCompanyName, v))
}

// CompanyNameGTE applies the GTE predicate on the "company_name" field.
func CompanyNameGTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldCompanyName, v))
}

// CompanyNameLT applies the LT predicate on the "company_name" field.
func CompanyNameLT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldCompanyName, v))
}

// CompanyNameLTE applies the LTE predicate on the "company_name" field.
func CompanyNameLTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldCompanyName, v))
}

// CompanyNameContains applies the Contains predicate on the "company_name" field.
func CompanyNameContains(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContains(FieldCompanyName, v))
}

// CompanyNameHasPrefix applies the HasPrefix predicate on the "company_name" field.
func CompanyNameHasPrefix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasPrefix(FieldCompanyName, v))
}

// CompanyNameHasSuffix applies the HasSuffix predicate on the "company_name" field.
func CompanyNameHasSuffix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasSuffix(FieldCompanyName, v))
}

// CompanyNameEqualFold applies the EqualFold predicate on the "company_name" field.
func CompanyNameEqualFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEqualFold(FieldCompanyName, v))
}

// CompanyNameContainsFold applies the ContainsFold predicate on the "company_name" field.
func CompanyNameContainsFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContainsFold(FieldCompanyName, v))
}

// OldIDEQ applies the EQ predicate on the "old_id" field.
func OldIDEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldOldID, v))
}

// OldIDNEQ applies the NEQ predicate on the "old_id" field.
func OldIDNEQ(v string) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldOldID, v))
}

// OldIDIn applies the In predicate on the "old_id" field.
func OldIDIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldOldID, vs...))
}

// OldIDNotIn applies the NotIn predicate on the "old_id" field.
func OldIDNotIn(vs ...string) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldOldID, vs...))
}

// OldIDGT applies the GT predicate on the "old_id" field.
func OldIDGT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldOldID, v))
}

// OldIDGTE applies the GTE predicate on the "old_id" field.
func OldIDGTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldOldID, v))
}

// OldIDLT applies the LT predicate on the "old_id" field.
func OldIDLT(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldOldID, v))
}

// OldIDLTE applies the LTE predicate on the "old_id" field.
func OldIDLTE(v string) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldOldID, v))
}

// OldIDContains applies the Contains predicate on the "old_id" field.
func OldIDContains(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContains(FieldOldID, v))
}

// OldIDHasPrefix applies the HasPrefix predicate on the "old_id" field.
func OldIDHasPrefix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasPrefix(FieldOldID, v))
}

// OldIDHasSuffix applies the HasSuffix predicate on the "old_id" field.
func OldIDHasSuffix(v string) predicate.Technology {
	return predicate.Technology(sql.FieldHasSuffix(FieldOldID, v))
}

// OldIDIsNil applies the IsNil predicate on the "old_id" field.
func OldIDIsNil() predicate.Technology {
	return predicate.Technology(sql.FieldIsNull(FieldOldID))
}

// OldIDNotNil applies the NotNil predicate on the "old_id" field.
func OldIDNotNil() predicate.Technology {
	return predicate.Technology(sql.FieldNotNull(FieldOldID))
}

// OldIDEqualFold applies the EqualFold predicate on the "old_id" field.
func OldIDEqualFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldEqualFold(FieldOldID, v))
}

// OldIDContainsFold applies the ContainsFold predicate on the "old_id" field.
func OldIDContainsFold(v string) predicate.Technology {
	return predicate.Technology(sql.FieldContainsFold(FieldOldID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Technology {
	return predicate.Technology(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasIcons applies the HasEdge predicate on the "icons" edge.
func HasIcons() predicate.Technology {
	return predicate.Technology(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, IconsTable, IconsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasIconsWith applies the HasEdge predicate on the "icons" edge with a given conditions (other predicates).
func HasIconsWith(preds ...predicate.TechIcon) predicate.Technology {
	return predicate.Technology(func(s *sql.Selector) {
		step := newIconsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDetails applies the HasEdge predicate on the "details" edge.
func HasDetails() predicate.Technology {
	return predicate.Technology(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, DetailsTable, DetailsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDetailsWith applies the HasEdge predicate on the "details" edge with a given conditions (other predicates).
func HasDetailsWith(preds ...predicate.TechDetail) predicate.Technology {
	return predicate.Technology(func(s *sql.Selector) {
		step := newDetailsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Technology) predicate.Technology {
	return predicate.Technology(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Technology) predicate.Technology {
	return predicate.Technology(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Technology) predicate.Technology {
	return predicate.Technology(sql.NotPredicates(p))
}
