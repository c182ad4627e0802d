// Code generated by ent, DO NOT EDIT.

package techdetail

import (
	"portfolio-api/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldID, id))
}

// WebsiteURL applies equality check predicate on the "website_url" field. It's identical to WebsiteURLEQ.
func WebsiteURL(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldWebsiteURL, v))
}

// MyStack applies equality check predicate on the "my_stack" field. It's identical to MyStackEQ.
func MyStack(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldMyStack, v))
}

// IsFavorite applies equality check predicate on the "is_favorite" field. It's identical to IsFavoriteEQ.
func IsFavorite(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldIsFavorite, v))
}

// UseCase applies equality check predicate on the "use_case" field. It's identical to UseCaseEQ.
func UseCase(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldUseCase, v))
}

// Experience applies equality check predicate on the "experience" field. It's identical to ExperienceEQ.
func Experience(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldExperience, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldDescription, v))
}

// Comment applies equality check predicate on the "comment" field. It's identical to CommentEQ.
func Comment(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldComment, v))
}

// Purchased applies equality check predicate on the "purchased" field. It's identical to PurchasedEQ.
func Purchased(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldPurchased, v))
}

// YearBeganUsing applies equality check predicate on the "year_began_using" field. It's identical to YearBeganUsingEQ.
func YearBeganUsing(v int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldYearBeganUsing, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldUpdatedAt, v))
}

// WebsiteURLEQ applies the EQ predicate on the "website_url" field.
func WebsiteURLEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldWebsiteURL, v))
}

// WebsiteURLNEQ applies the NEQ predicate on the "website_url" field.
func WebsiteURLNEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldWebsiteURL, v))
}

// WebsiteURLIn applies the In predicate on the "website_url" field.
func WebsiteURLIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldWebsiteURL, vs...))
}

// WebsiteURLNotIn applies the NotIn predicate on the "website_url" field.
func WebsiteURLNotIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldWebsiteURL, vs...))
}

// WebsiteURLGT applies the GT predicate on the "website_url" field.
func WebsiteURLGT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldWebsiteURL, v))
}

// WebsiteURLGTE applies the GTE predicate on the "website_url" field.
func WebsiteURLGTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldWebsiteURL, v))
}

// WebsiteURLLT applies the LT predicate on the "website_url" field.
func WebsiteURLLT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldWebsiteURL, v))
}

// WebsiteURLLTE applies the LTE predicate on the "website_url" field.
func WebsiteURLLTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldWebsiteURL, v))
}

// WebsiteURLContains applies the Contains predicate on the "website_url" field.
func WebsiteURLContains(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContains(FieldWebsiteURL, v))
}

// WebsiteURLHasPrefix applies the HasPrefix predicate on the "website_url" field.
func WebsiteURLHasPrefix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasPrefix(FieldWebsiteURL, v))
}

// WebsiteURLHasSuffix applies the HasSuffix predicate on the "website_url" field.
func WebsiteURLHasSuffix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasSuffix(FieldWebsiteURL, v))
}

// WebsiteURLIsNil applies the IsNil predicate on the "website_url" field.
func WebsiteURLIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldWebsiteURL))
}

// WebsiteURLNotNil applies the NotNil predicate on the "website_url" field.
func WebsiteURLNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldWebsiteURL))
}

// WebsiteURLEqualFold applies the EqualFold predicate on the "website_url" field.
func WebsiteURLEqualFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEqualFold(FieldWebsiteURL, v))
}

// WebsiteURLContainsFold applies the ContainsFold predicate on the "website_url" field.
func WebsiteURLContainsFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContainsFold(FieldWebsiteURL, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldCategory, vs...))
}

// MyStackEQ applies the EQ predicate on the "my_stack" field.
func MyStackEQ(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldMyStack, v))
}

// MyStackNEQ applies the NEQ predicate on the "my_stack" field.
func MyStackNEQ(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldMyStack, v))
}

// IsFavoriteEQ applies the EQ predicate on the "is_favorite" field.
func IsFavoriteEQ(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldIsFavorite, v))
}

// IsFavoriteNEQ applies the NEQ predicate on the "is_favorite" field.
func IsFavoriteNEQ(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldIsFavorite, v))
}

// UseCaseEQ applies the EQ predicate on the "use_case" field.
func UseCaseEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldUseCase, v))
}

// UseCaseNEQ applies the NEQ predicate on the "use_case" field.
func UseCaseNEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldUseCase, v))
}

// UseCaseIn applies the In predicate on the "use_case" field.
func UseCaseIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldUseCase, vs...))
}

// UseCaseNotIn applies the NotIn predicate on the "use_case" field.
func UseCaseNotIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldUseCase, vs...))
}

// UseCaseGT applies the GT predicate on the "use_case" field.
func UseCaseGT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldUseCase, v))
}

// UseCaseGTE applies the GTE predicate on the "use_case" field.
func UseCaseGTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldUseCase, v))
}

// UseCaseLT applies the LT predicate on the "use_case" field.
func UseCaseLT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldUseCase, v))
}

// UseCaseLTE applies the LTE predicate on the "use_case" field.
func UseCaseLTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldUseCase, v))
}

// UseCaseContains applies the Contains predicate on the "use_case" field.
func UseCaseContains(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContains(FieldUseCase, v))
}

// UseCaseHasPrefix applies the HasPrefix predicate on the "use_case" field.
func UseCaseHasPrefix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasPrefix(FieldUseCase, v))
}

// UseCaseHasSuffix applies the HasSuffix predicate on the "use_case" field.
func UseCaseHasSuffix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasSuffix(FieldUseCase, v))
}

// UseCaseIsNil applies the IsNil predicate on the "use_case" field.
func UseCaseIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldUseCase))
}

// UseCaseNotNil applies the NotNil predicate on the "use_case" field.
func UseCaseNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldUseCase))
}

// UseCaseEqualFold applies the EqualFold predicate on the "use_case" field.
func UseCaseEqualFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEqualFold(FieldUseCase, v))
}

// UseCaseContainsFold applies the ContainsFold predicate on the "use_case" field.
func UseCaseContainsFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContainsFold(FieldUseCase, v))
}

// ExperienceEQ applies the EQ predicate on the "experience" field.
func ExperienceEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldExperience, v))
}

// ExperienceNEQ applies the NEQ predicate on the "experience" field.
func ExperienceNEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldExperience, v))
}

// ExperienceIn applies the In predicate on the "experience" field.
func ExperienceIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldExperience, vs...))
}

// ExperienceNotIn applies the NotIn predicate on the "experience" field.
func ExperienceNotIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldExperience, vs...))
}

// ExperienceGT applies the GT predicate on the "experience" field.
func ExperienceGT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldExperience, v))
}

// ExperienceGTE applies the GTE predicate on the "experience" field.
func ExperienceGTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldExperience, v))
}

// ExperienceLT applies the LT predicate on the "experience" field.
func ExperienceLT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldExperience, v))
}

// ExperienceLTE applies the LTE predicate on the "experience" field.
func ExperienceLTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldExperience, v))
}

// ExperienceContains applies the Contains predicate on the "experience" field.
func ExperienceContains(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContains(FieldExperience, v))
}

// ExperienceHasPrefix applies the HasPrefix predicate on the "experience" field.
func ExperienceHasPrefix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasPrefix(FieldExperience, v))
}

// ExperienceHasSuffix applies the HasSuffix predicate on the "experience" field.
func ExperienceHasSuffix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasSuffix(FieldExperience, v))
}

// ExperienceIsNil applies the IsNil predicate on the "experience" field.
func ExperienceIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldExperience))
}

// ExperienceNotNil applies the NotNil predicate on the "experience" field.
func ExperienceNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldExperience))
}

// ExperienceEqualFold applies the EqualFold predicate on the "experience" field.
func ExperienceEqualFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEqualFold(FieldExperience, v))
}

// ExperienceContainsFold applies the ContainsFold predicate on the "experience" field.
func ExperienceContainsFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContainsFold(FieldExperience, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContainsFold(FieldDescription, v))
}

// CommentEQ applies the EQ predicate on the "comment" field.
func CommentEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldComment, v))
}

// CommentNEQ applies the NEQ predicate on the "comment" field.
func CommentNEQ(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldComment, v))
}

// CommentIn applies the In predicate on the "comment" field.
func CommentIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldComment, vs...))
}

// CommentNotIn applies the NotIn predicate on the "comment" field.
func CommentNotIn(vs ...string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldComment, vs...))
}

// CommentGT applies the GT predicate on the "comment" field.
func CommentGT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldComment, v))
}

// CommentGTE applies the GTE predicate on the "comment" field.
func CommentGTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldComment, v))
}

// CommentLT applies the LT predicate on the "comment" field.
func CommentLT(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldComment, v))
}

// CommentLTE applies the LTE predicate on the "comment" field.
func CommentLTE(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldComment, v))
}

// CommentContains applies the Contains predicate on the "comment" field.
func CommentContains(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContains(FieldComment, v))
}

// CommentHasPrefix applies the HasPrefix predicate on the "comment" field.
func CommentHasPrefix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasPrefix(FieldComment, v))
}

// CommentHasSuffix applies the HasSuffix predicate on the "comment" field.
func CommentHasSuffix(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldHasSuffix(FieldComment, v))
}

// CommentIsNil applies the IsNil predicate on the "comment" field.
func CommentIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldComment))
}

// CommentNotNil applies the NotNil predicate on the "comment" field.
func CommentNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldComment))
}

// CommentEqualFold applies the EqualFold predicate on the "comment" field.
func CommentEqualFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEqualFold(FieldComment, v))
}

// CommentContainsFold applies the ContainsFold predicate on the "comment" field.
func CommentContainsFold(v string) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldContainsFold(FieldComment, v))
}

// PurchasedEQ applies the EQ predicate on the "purchased" field.
func PurchasedEQ(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldPurchased, v))
}

// PurchasedNEQ applies the NEQ predicate on the "purchased" field.
func PurchasedNEQ(v bool) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldPurchased, v))
}

// YearBeganUsingEQ applies the EQ predicate on the "year_began_using" field.
func YearBeganUsingEQ(v int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldYearBeganUsing, v))
}

// YearBeganUsingNEQ applies the NEQ predicate on the "year_began_using" field.
func YearBeganUsingNEQ(v int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldYearBeganUsing, v))
}

// YearBeganUsingIn applies the In predicate on the "year_began_using" field.
func YearBeganUsingIn(vs ...int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldYearBeganUsing, vs...))
}

// YearBeganUsingNotIn applies the NotIn predicate on the "year_began_using" field.
func YearBeganUsingNotIn(vs ...int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldYearBeganUsing, vs...))
}

// YearBeganUsingGT applies the GT predicate on the "year_began_using" field.
func YearBeganUsingGT(v int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldYearBeganUsing, v))
}

// YearBeganUsingGTE applies the GTE predicate on the "year_began_using" field.
func YearBeganUsingGTE(v int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldYearBeganUsing, v))
}

// YearBeganUsingLT applies the LT predicate on the "year_began_using" field.
func YearBeganUsingLT(v int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldYearBeganUsing, v))
}

// YearBeganUsingLTE applies the LTE predicate on the "year_began_using" field.
func YearBeganUsingLTE(v int) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldYearBeganUsing, v))
}

// MonthBeganUsingEQ applies the EQ predicate on the "month_began_using" field.
func MonthBeganUsingEQ(v MonthBeganUsing) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldMonthBeganUsing, v))
}

// MonthBeganUsingNEQ applies the NEQ predicate on the "month_began_using" field.
func MonthBeganUsingNEQ(v MonthBeganUsing) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldMonthBeganUsing, v))
}

// MonthBeganUsingIn applies the In predicate on the "month_began_using" field.
func MonthBeganUsingIn(vs ...MonthBeganUsing) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldMonthBeganUsing, vs...))
}

// MonthBeganUsingNotIn applies the NotIn predicate on the "month_began_using" field.
func MonthBeganUsingNotIn(vs ...MonthBeganUsing) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldMonthBeganUsing, vs...))
}

// MonthBeganUsingIsNil applies the IsNil predicate on the "month_began_using" field.
func MonthBeganUsingIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldMonthBeganUsing))
}

// MonthBeganUsingNotNil applies the NotNil predicate on the "month_began_using" field.
func MonthBeganUsingNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldMonthBeganUsing))
}

// SkillLevelEQ applies the EQ predicate on the "skill_level" field.
func SkillLevelEQ(v SkillLevel) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldSkillLevel, v))
}

// SkillLevelNEQ applies the NEQ predicate on the "skill_level" field.
func SkillLevelNEQ(v SkillLevel) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldSkillLevel, v))
}

// SkillLevelIn applies the In predicate on the "skill_level" field.
func SkillLevelIn(vs ...SkillLevel) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldSkillLevel, vs...))
}

// SkillLevelNotIn applies the NotIn predicate on the "skill_level" field.
func SkillLevelNotIn(vs ...SkillLevel) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldSkillLevel, vs...))
}

// SkillLevelIsNil applies the IsNil predicate on the "skill_level" field.
func SkillLevelIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldSkillLevel))
}

// SkillLevelNotNil applies the NotNil predicate on the "skill_level" field.
func SkillLevelNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldSkillLevel))
}

// RatingEQ applies the EQ predicate on the "rating" field.
func RatingEQ(v Rating) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldRating, v))
}

// RatingNEQ applies the NEQ predicate on the "rating" field.
func RatingNEQ(v Rating) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldRating, v))
}

// RatingIn applies the In predicate on the "rating" field.
func RatingIn(vs ...Rating) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldRating, vs...))
}

// RatingNotIn applies the NotIn predicate on the "rating" field.
func RatingNotIn(vs ...Rating) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldRating, vs...))
}

// RatingIsNil applies the IsNil predicate on the "rating" field.
func RatingIsNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIsNull(FieldRating))
}

// RatingNotNil applies the NotNil predicate on the "rating" field.
func RatingNotNil() predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotNull(FieldRating))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TechDetail {
	return predicate.TechDetail(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTechnology applies the HasEdge predicate on the "technology" edge.
func HasTechnology() predicate.TechDetail {
	return predicate.TechDetail(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TechnologyTable, TechnologyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTechnologyWith applies the HasEdge predicate on the "technology" edge with a given conditions (other predicates).
func HasTechnologyWith(preds ...predicate.Technology) predicate.TechDetail {
	return predicate.TechDetail(func(s *sql.Selector) {
		step := newTechnologyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TechDetail) predicate.TechDetail {
	return predicate.TechDetail(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TechDetail) predicate.TechDetail {
	return predicate.TechDetail(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TechDetail) predicate.TechDetail {
	return predicate.TechDetail(sql.NotPredicates(p))
}
