// Code generated by ent, DO NOT EDIT.

package ent

import (
	"portfolio-api/ent/certificate"
	"portfolio-api/ent/chatbotsetting"
	"portfolio-api/ent/contactmessage"
	"portfolio-api/ent/customform"
	"portfolio-api/ent/iconvariant"
	"portfolio-api/ent/schema"
	"portfolio-api/ent/seoentry"
	"portfolio-api/ent/task"
	"portfolio-api/ent/techdetail"
	"portfolio-api/ent/techicon"
	"portfolio-api/ent/technology"
	"portfolio-api/ent/user"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescTitle is the schema descriptor for title field.
	certificateDescTitle := certificateFields[1].Descriptor()
	// certificate.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	certificate.TitleValidator = func() func(string) error {
		validators := certificateDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// certificateDescIssuer is the schema descriptor for issuer field.
	certificateDescIssuer := certificateFields[2].Descriptor()
	// certificate.IssuerValidator is a validator for the "issuer" field. It is called by the builders before save.
	certificate.IssuerValidator = certificateDescIssuer.Validators[0].(func(string) error)
	// certificateDescIssueYear is the schema descriptor for issue_year field.
	certificateDescIssueYear := certificateFields[4].Descriptor()
	// certificate.DefaultIssueYear holds the default value on creation for the issue_year field.
	certificate.DefaultIssueYear = certificateDescIssueYear.Default.(int)
	// certificateDescCredentialID is the schema descriptor for credential_id field.
	certificateDescCredentialID := certificateFields[7].Descriptor()
	// certificate.CredentialIDValidator is a validator for the "credential_id" field. It is called by the builders before save.
	certificate.CredentialIDValidator = certificateDescCredentialID.Validators[0].(func(string) error)
	// certificateDescCredentialURL is the schema descriptor for credential_url field.
	certificateDescCredentialURL := certificateFields[8].Descriptor()
	// certificate.CredentialURLValidator is a validator for the "credential_url" field. It is called by the builders before save.
	certificate.CredentialURLValidator = certificateDescCredentialURL.Validators[0].(func(string) error)
	// certificateDescCreatedAt is the schema descriptor for created_at field.
	certificateDescCreatedAt := certificateFields[10].Descriptor()
	// certificate.DefaultCreatedAt holds the default value on creation for the created_at field.
	certificate.DefaultCreatedAt = certificateDescCreatedAt.Default.(func() time.Time)
	// certificateDescUpdatedAt is the schema descriptor for updated_at field.
	certificateDescUpdatedAt := certificateFields[11].Descriptor()
	// certificate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	certificate.DefaultUpdatedAt = certificateDescUpdatedAt.Default.(func() time.Time)
	// certificate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	certificate.UpdateDefaultUpdatedAt = certificateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// certificateDescID is the schema descriptor for id field.
	certificateDescID := certificateFields[0].Descriptor()
	// certificate.DefaultID holds the default value on creation for the id field.
	certificate.DefaultID = certificateDescID.Default.(func() uuid.UUID)
	chatbotsettingFields := schema.ChatbotSetting{}.Fields()
	_ = chatbotsettingFields
	// chatbotsettingDescEnabled is the schema descriptor for enabled field.
	chatbotsettingDescEnabled := chatbotsettingFields[1].Descriptor()
	// chatbotsetting.DefaultEnabled holds the default value on creation for the enabled field.
	chatbotsetting.DefaultEnabled = chatbotsettingDescEnabled.Default.(bool)
	// chatbotsettingDescModel is the schema descriptor for model field.
	chatbotsettingDescModel := chatbotsettingFields[2].Descriptor()
	// chatbotsetting.DefaultModel holds the default value on creation for the model field.
	chatbotsetting.DefaultModel = chatbotsettingDescModel.Default.(string)
	// chatbotsetting.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	chatbotsetting.ModelValidator = chatbotsettingDescModel.Validators[0].(func(string) error)
	// chatbotsettingDescTemperature is the schema descriptor for temperature field.
	chatbotsettingDescTemperature := chatbotsettingFields[3].Descriptor()
	// chatbotsetting.DefaultTemperature holds the default value on creation for the temperature field.
	chatbotsetting.DefaultTemperature = chatbotsettingDescTemperature.Default.(float64)
	// chatbotsetting.TemperatureValidator is a validator for the "temperature" field. It is called by the builders before save.
	chatbotsetting.TemperatureValidator = func() func(float64) error {
		validators := chatbotsettingDescTemperature.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(temperature float64) error {
			for _, fn := range fns {
				if err := fn(temperature); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// chatbotsettingDescUpdatedAt is the schema descriptor for updated_at field.
	chatbotsettingDescUpdatedAt := chatbotsettingFields[6].Descriptor()
	// chatbotsetting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatbotsetting.DefaultUpdatedAt = chatbotsettingDescUpdatedAt.Default.(func() time.Time)
	// chatbotsetting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatbotsetting.UpdateDefaultUpdatedAt = chatbotsettingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// chatbotsettingDescID is the schema descriptor for id field.
	chatbotsettingDescID := chatbotsettingFields[0].Descriptor()
	// chatbotsetting.DefaultID holds the default value on creation for the id field.
	chatbotsetting.DefaultID = chatbotsettingDescID.Default.(func() uuid.UUID)
	contactmessageFields := schema.ContactMessage{}.Fields()
	_ = contactmessageFields
	// contactmessageDescName is the schema descriptor for name field.
	contactmessageDescName := contactmessageFields[1].Descriptor()
	// contactmessage.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contactmessage.NameValidator = func() func(string) error {
		validators := contactmessageDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactmessageDescEmail is the schema descriptor for email field.
	contactmessageDescEmail := contactmessageFields[2].Descriptor()
	// contactmessage.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contactmessage.EmailValidator = func() func(string) error {
		validators := contactmessageDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactmessageDescSubject is the schema descriptor for subject field.
	contactmessageDescSubject := contactmessageFields[3].Descriptor()
	// contactmessage.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	contactmessage.SubjectValidator = contactmessageDescSubject.Validators[0].(func(string) error)
	// contactmessageDescBody is the schema descriptor for body field.
	contactmessageDescBody := contactmessageFields[4].Descriptor()
	// contactmessage.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	contactmessage.BodyValidator = contactmessageDescBody.Validators[0].(func(string) error)
	// contactmessageDescRead is the schema descriptor for read field.
	contactmessageDescRead := contactmessageFields[5].Descriptor()
	// contactmessage.DefaultRead holds the default value on creation for the read field.
	contactmessage.DefaultRead = contactmessageDescRead.Default.(bool)
	// contactmessageDescCreatedAt is the schema descriptor for created_at field.
	contactmessageDescCreatedAt := contactmessageFields[6].Descriptor()
	// contactmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	contactmessage.DefaultCreatedAt = contactmessageDescCreatedAt.Default.(func() time.Time)
	// contactmessageDescID is the schema descriptor for id field.
	contactmessageDescID := contactmessageFields[0].Descriptor()
	// contactmessage.DefaultID holds the default value on creation for the id field.
	contactmessage.DefaultID = contactmessageDescID.Default.(func() uuid.UUID)
	customformFields := schema.CustomForm{}.Fields()
	_ = customformFields
	// customformDescTitle is the schema descriptor for title field.
	customformDescTitle := customformFields[1].Descriptor()
	// customform.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	customform.TitleValidator = func() func(string) error {
		validators := customformDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// customformDescSlug is the schema descriptor for slug field.
	customformDescSlug := customformFields[2].Descriptor()
	// customform.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	customform.SlugValidator = func() func(string) error {
		validators := customformDescSlug.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(slug string) error {
			for _, fn := range fns {
				if err := fn(slug); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// customformDescActive is the schema descriptor for active field.
	customformDescActive := customformFields[4].Descriptor()
	// customform.DefaultActive holds the default value on creation for the active field.
	customform.DefaultActive = customformDescActive.Default.(bool)
	// customformDescCreatedAt is the schema descriptor for created_at field.
	customformDescCreatedAt := customformFields[5].Descriptor()
	// customform.DefaultCreatedAt holds the default value on creation for the created_at field.
	customform.DefaultCreatedAt = customformDescCreatedAt.Default.(func() time.Time)
	// customformDescUpdatedAt is the schema descriptor for updated_at field.
	customformDescUpdatedAt := customformFields[6].Descriptor()
	// customform.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	customform.DefaultUpdatedAt = customformDescUpdatedAt.Default.(func() time.Time)
	// customform.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	customform.UpdateDefaultUpdatedAt = customformDescUpdatedAt.UpdateDefault.(func() time.Time)
	// customformDescID is the schema descriptor for id field.
	customformDescID := customformFields[0].Descriptor()
	// customform.DefaultID holds the default value on creation for the id field.
	customform.DefaultID = customformDescID.Default.(func() uuid.UUID)
	iconvariantFields := schema.IconVariant{}.Fields()
	_ = iconvariantFields
	// iconvariantDescName is the schema descriptor for name field.
	iconvariantDescName := iconvariantFields[1].Descriptor()
	// iconvariant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	iconvariant.NameValidator = func() func(string) error {
		validators := iconvariantDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// iconvariantDescCreatedAt is the schema descriptor for created_at field.
	iconvariantDescCreatedAt := iconvariantFields[2].Descriptor()
	// iconvariant.DefaultCreatedAt holds the default value on creation for the created_at field.
	iconvariant.DefaultCreatedAt = iconvariantDescCreatedAt.Default.(func() time.Time)
	// iconvariantDescUpdatedAt is the schema descriptor for updated_at field.
	iconvariantDescUpdatedAt := iconvariantFields[3].Descriptor()
	// iconvariant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	iconvariant.DefaultUpdatedAt = iconvariantDescUpdatedAt.Default.(func() time.Time)
	// iconvariant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	iconvariant.UpdateDefaultUpdatedAt = iconvariantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// iconvariantDescID is the schema descriptor for id field.
	iconvariantDescID := iconvariantFields[0].Descriptor()
	// iconvariant.DefaultID holds the default value on creation for the id field.
	iconvariant.DefaultID = iconvariantDescID.Default.(func() uuid.UUID)
	seoentryFields := schema.SeoEntry{}.Fields()
	_ = seoentryFields
	// seoentryDescPath is the schema descriptor for path field.
	seoentryDescPath := seoentryFields[1].Descriptor()
	// seoentry.PathValidator is a validator for the "path" field. It is called by the builders before save.
	seoentry.PathValidator = func() func(string) error {
		validators := seoentryDescPath.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(_path string) error {
			for _, fn := range fns {
				if err := fn(_path); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// seoentryDescTitle is the schema descriptor for title field.
	seoentryDescTitle := seoentryFields[2].Descriptor()
	// seoentry.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	seoentry.TitleValidator = seoentryDescTitle.Validators[0].(func(string) error)
	// seoentryDescDescription is the schema descriptor for description field.
	seoentryDescDescription := seoentryFields[3].Descriptor()
	// seoentry.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	seoentry.DescriptionValidator = seoentryDescDescription.Validators[0].(func(string) error)
	// seoentryDescKeywords is the schema descriptor for keywords field.
	seoentryDescKeywords := seoentryFields[4].Descriptor()
	// seoentry.KeywordsValidator is a validator for the "keywords" field. It is called by the builders before save.
	seoentry.KeywordsValidator = seoentryDescKeywords.Validators[0].(func(string) error)
	// seoentryDescOgImage is the schema descriptor for og_image field.
	seoentryDescOgImage := seoentryFields[5].Descriptor()
	// seoentry.OgImageValidator is a validator for the "og_image" field. It is called by the builders before save.
	seoentry.OgImageValidator = seoentryDescOgImage.Validators[0].(func(string) error)
	// seoentryDescPriority is the schema descriptor for priority field.
	seoentryDescPriority := seoentryFields[7].Descriptor()
	// seoentry.DefaultPriority holds the default value on creation for the priority field.
	seoentry.DefaultPriority = seoentryDescPriority.Default.(float64)
	// seoentry.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	seoentry.PriorityValidator = func() func(float64) error {
		validators := seoentryDescPriority.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(priority float64) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// seoentryDescCreatedAt is the schema descriptor for created_at field.
	seoentryDescCreatedAt := seoentryFields[8].Descriptor()
	// seoentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	seoentry.DefaultCreatedAt = seoentryDescCreatedAt.Default.(func() time.Time)
	// seoentryDescUpdatedAt is the schema descriptor for updated_at field.
	seoentryDescUpdatedAt := seoentryFields[9].Descriptor()
	// seoentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	seoentry.DefaultUpdatedAt = seoentryDescUpdatedAt.Default.(func() time.Time)
	// seoentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	seoentry.UpdateDefaultUpdatedAt = seoentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	// seoentryDescID is the schema descriptor for id field.
	seoentryDescID := seoentryFields[0].Descriptor()
	// seoentry.DefaultID holds the default value on creation for the id field.
	seoentry.DefaultID = seoentryDescID.Default.(func() uuid.UUID)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescTitle is the schema descriptor for title field.
	taskDescTitle := taskFields[1].Descriptor()
	// task.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	task.TitleValidator = func() func(string) error {
		validators := taskDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescDone is the schema descriptor for done field.
	taskDescDone := taskFields[2].Descriptor()
	// task.DefaultDone holds the default value on creation for the done field.
	task.DefaultDone = taskDescDone.Default.(bool)
	// taskDescPosition is the schema descriptor for position field.
	taskDescPosition := taskFields[3].Descriptor()
	// task.DefaultPosition holds the default value on creation for the position field.
	task.DefaultPosition = taskDescPosition.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[4].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[5].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	// taskDescID is the schema descriptor for id field.
	taskDescID := taskFields[0].Descriptor()
	// task.DefaultID holds the default value on creation for the id field.
	task.DefaultID = taskDescID.Default.(func() uuid.UUID)
	techdetailFields := schema.TechDetail{}.Fields()
	_ = techdetailFields
	// techdetailDescWebsiteURL is the schema descriptor for website_url field.
	techdetailDescWebsiteURL := techdetailFields[1].Descriptor()
	// techdetail.WebsiteURLValidator is a validator for the "website_url" field. It is called by the builders before save.
	techdetail.WebsiteURLValidator = techdetailDescWebsiteURL.Validators[0].(func(string) error)
	// techdetailDescMyStack is the schema descriptor for my_stack field.
	techdetailDescMyStack := techdetailFields[3].Descriptor()
	// techdetail.DefaultMyStack holds the default value on creation for the my_stack field.
	techdetail.DefaultMyStack = techdetailDescMyStack.Default.(bool)
	// techdetailDescIsFavorite is the schema descriptor for is_favorite field.
	techdetailDescIsFavorite := techdetailFields[4].Descriptor()
	// techdetail.DefaultIsFavorite holds the default value on creation for the is_favorite field.
	techdetail.DefaultIsFavorite = techdetailDescIsFavorite.Default.(bool)
	// techdetailDescPurchased is the schema descriptor for purchased field.
	techdetailDescPurchased := techdetailFields[9].Descriptor()
	// techdetail.DefaultPurchased holds the default value on creation for the purchased field.
	techdetail.DefaultPurchased = techdetailDescPurchased.Default.(bool)
	// techdetailDescYearBeganUsing is the schema descriptor for year_began_using field.
	techdetailDescYearBeganUsing := techdetailFields[10].Descriptor()
	// techdetail.DefaultYearBeganUsing holds the default value on creation for the year_began_using field.
	techdetail.DefaultYearBeganUsing = techdetailDescYearBeganUsing.Default.(int)
	// techdetailDescCreatedAt is the schema descriptor for created_at field.
	techdetailDescCreatedAt := techdetailFields[14].Descriptor()
	// techdetail.DefaultCreatedAt holds the default value on creation for the created_at field.
	techdetail.DefaultCreatedAt = techdetailDescCreatedAt.Default.(func() time.Time)
	// techdetailDescUpdatedAt is the schema descriptor for updated_at field.
	techdetailDescUpdatedAt := techdetailFields[15].Descriptor()
	// techdetail.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	techdetail.DefaultUpdatedAt = techdetailDescUpdatedAt.Default.(func() time.Time)
	// techdetail.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	techdetail.UpdateDefaultUpdatedAt = techdetailDescUpdatedAt.UpdateDefault.(func() time.Time)
	// techdetailDescID is the schema descriptor for id field.
	techdetailDescID := techdetailFields[0].Descriptor()
	// techdetail.DefaultID holds the default value on creation for the id field.
	techdetail.DefaultID = techdetailDescID.Default.(func() uuid.UUID)
	techiconFields := schema.TechIcon{}.Fields()
	_ = techiconFields
	// techiconDescFileURL is the schema descriptor for file_url field.
	techiconDescFileURL := techiconFields[1].Descriptor()
	// techicon.FileURLValidator is a validator for the "file_url" field. It is called by the builders before save.
	techicon.FileURLValidator = techiconDescFileURL.Validators[0].(func(string) error)
	// techiconDescShouldInvertOnDark is the schema descriptor for should_invert_on_dark field.
	techiconDescShouldInvertOnDark := techiconFields[2].Descriptor()
	// techicon.DefaultShouldInvertOnDark holds the default value on creation for the should_invert_on_dark field.
	techicon.DefaultShouldInvertOnDark = techiconDescShouldInvertOnDark.Default.(bool)
	// techiconDescVersion is the schema descriptor for version field.
	techiconDescVersion := techiconFields[3].Descriptor()
	// techicon.DefaultVersion holds the default value on creation for the version field.
	techicon.DefaultVersion = techiconDescVersion.Default.(int)
	// techicon.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	techicon.VersionValidator = techiconDescVersion.Validators[0].(func(int) error)
	// techiconDescCreatedAt is the schema descriptor for created_at field.
	techiconDescCreatedAt := techiconFields[4].Descriptor()
	// techicon.DefaultCreatedAt holds the default value on creation for the created_at field.
	techicon.DefaultCreatedAt = techiconDescCreatedAt.Default.(func() time.Time)
	// techiconDescUpdatedAt is the schema descriptor for updated_at field.
	techiconDescUpdatedAt := techiconFields[5].Descriptor()
	// techicon.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	techicon.DefaultUpdatedAt = techiconDescUpdatedAt.Default.(func() time.Time)
	// techicon.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	techicon.UpdateDefaultUpdatedAt = techiconDescUpdatedAt.UpdateDefault.(func() time.Time)
	// techiconDescID is the schema descriptor for id field.
	techiconDescID := techiconFields[0].Descriptor()
	// techicon.DefaultID holds the default value on creation for the id field.
	techicon.DefaultID = techiconDescID.Default.(func() uuid.UUID)
	technologyFields := schema.Technology{}.Fields()
	_ = technologyFields
	// technologyDescCompanyName is the schema descriptor for company_name field.
	technologyDescCompanyName := technologyFields[1].Descriptor()
	// technology.CompanyNameValidator is a validator for the "company_name" field. It is called by the builders before save.
	technology.CompanyNameValidator = func() func(string) error {
		validators := technologyDescCompanyName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(company_name string) error {
			for _, fn := range fns {
				if err := fn(company_name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// technologyDescCreatedAt is the schema descriptor for created_at field.
	technologyDescCreatedAt := technologyFields[3].Descriptor()
	// technology.DefaultCreatedAt holds the default value on creation for the created_at field.
	technology.DefaultCreatedAt = technologyDescCreatedAt.Default.(func() time.Time)
	// technologyDescUpdatedAt is the schema descriptor for updated_at field.
	technologyDescUpdatedAt := technologyFields[4].Descriptor()
	// technology.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	technology.DefaultUpdatedAt = technologyDescUpdatedAt.Default.(func() time.Time)
	// technology.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	technology.UpdateDefaultUpdatedAt = technologyDescUpdatedAt.UpdateDefault.(func() time.Time)
	// technologyDescID is the schema descriptor for id field.
	technologyDescID := technologyFields[0].Descriptor()
	// technology.DefaultID holds the default value on creation for the id field.
	technology.DefaultID = technologyDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[1].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescDisplayName is the schema descriptor for display_name field.
	userDescDisplayName := userFields[2].Descriptor()
	// user.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	user.DisplayNameValidator = userDescDisplayName.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[4].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[6].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[7].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
