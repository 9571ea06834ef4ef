// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/chandrashekharddev/agroscheme/db/ent/schema"
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmerdocument"
	"github.com/chandrashekharddev/agroscheme/gen/ent/notification"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescApplicationID is the schema descriptor for application_id field.
	applicationDescApplicationID := applicationFields[1].Descriptor()
	// application.ApplicationIDValidator is a validator for the "application_id" field. It is called by the builders before save.
	application.ApplicationIDValidator = applicationDescApplicationID.Validators[0].(func(string) error)
	// applicationDescStatus is the schema descriptor for status field.
	applicationDescStatus := applicationFields[4].Descriptor()
	// application.DefaultStatus holds the default value on creation for the status field.
	application.DefaultStatus = applicationDescStatus.Default.(string)
	// application.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	application.StatusValidator = applicationDescStatus.Validators[0].(func(string) error)
	// applicationDescSource is the schema descriptor for source field.
	applicationDescSource := applicationFields[5].Descriptor()
	// application.DefaultSource holds the default value on creation for the source field.
	application.DefaultSource = applicationDescSource.Default.(string)
	// application.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	application.SourceValidator = applicationDescSource.Validators[0].(func(string) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[10].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[11].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	farmerFields := schema.Farmer{}.Fields()
	_ = farmerFields
	// farmerDescFarmerCode is the schema descriptor for farmer_code field.
	farmerDescFarmerCode := farmerFields[1].Descriptor()
	// farmer.FarmerCodeValidator is a validator for the "farmer_code" field. It is called by the builders before save.
	farmer.FarmerCodeValidator = farmerDescFarmerCode.Validators[0].(func(string) error)
	// farmerDescName is the schema descriptor for name field.
	farmerDescName := farmerFields[2].Descriptor()
	// farmer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	farmer.NameValidator = farmerDescName.Validators[0].(func(string) error)
	// farmerDescAutoApply is the schema descriptor for auto_apply field.
	farmerDescAutoApply := farmerFields[6].Descriptor()
	// farmer.DefaultAutoApply holds the default value on creation for the auto_apply field.
	farmer.DefaultAutoApply = farmerDescAutoApply.Default.(bool)
	// farmerDescCreatedAt is the schema descriptor for created_at field.
	farmerDescCreatedAt := farmerFields[7].Descriptor()
	// farmer.DefaultCreatedAt holds the default value on creation for the created_at field.
	farmer.DefaultCreatedAt = farmerDescCreatedAt.Default.(func() time.Time)
	// farmerDescUpdatedAt is the schema descriptor for updated_at field.
	farmerDescUpdatedAt := farmerFields[8].Descriptor()
	// farmer.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	farmer.DefaultUpdatedAt = farmerDescUpdatedAt.Default.(func() time.Time)
	// farmer.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	farmer.UpdateDefaultUpdatedAt = farmerDescUpdatedAt.UpdateDefault.(func() time.Time)
	// farmerDescID is the schema descriptor for id field.
	farmerDescID := farmerFields[0].Descriptor()
	// farmer.DefaultID holds the default value on creation for the id field.
	farmer.DefaultID = farmerDescID.Default.(func() uuid.UUID)
	farmerdocumentFields := schema.FarmerDocument{}.Fields()
	_ = farmerdocumentFields
	// farmerdocumentDescDocType is the schema descriptor for doc_type field.
	farmerdocumentDescDocType := farmerdocumentFields[2].Descriptor()
	// farmerdocument.DocTypeValidator is a validator for the "doc_type" field. It is called by the builders before save.
	farmerdocument.DocTypeValidator = func() func(string) error {
		validators := farmerdocumentDescDocType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(doc_type string) error {
			for _, fn := range fns {
				if err := fn(doc_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// farmerdocumentDescUploadedAt is the schema descriptor for uploaded_at field.
	farmerdocumentDescUploadedAt := farmerdocumentFields[6].Descriptor()
	// farmerdocument.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	farmerdocument.DefaultUploadedAt = farmerdocumentDescUploadedAt.Default.(func() time.Time)
	// farmerdocument.UpdateDefaultUploadedAt holds the default value on update for the uploaded_at field.
	farmerdocument.UpdateDefaultUploadedAt = farmerdocumentDescUploadedAt.UpdateDefault.(func() time.Time)
	// farmerdocumentDescID is the schema descriptor for id field.
	farmerdocumentDescID := farmerdocumentFields[0].Descriptor()
	// farmerdocument.DefaultID holds the default value on creation for the id field.
	farmerdocument.DefaultID = farmerdocumentDescID.Default.(func() uuid.UUID)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescNotificationType is the schema descriptor for notification_type field.
	notificationDescNotificationType := notificationFields[4].Descriptor()
	// notification.NotificationTypeValidator is a validator for the "notification_type" field. It is called by the builders before save.
	notification.NotificationTypeValidator = notificationDescNotificationType.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[5].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[6].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationFields[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	schemeFields := schema.Scheme{}.Fields()
	_ = schemeFields
	// schemeDescName is the schema descriptor for name field.
	schemeDescName := schemeFields[1].Descriptor()
	// scheme.NameValidator is a validator for the "name" field. It is called by the builders before save.
	scheme.NameValidator = schemeDescName.Validators[0].(func(string) error)
	// schemeDescBenefitAmount is the schema descriptor for benefit_amount field.
	schemeDescBenefitAmount := schemeFields[3].Descriptor()
	// scheme.DefaultBenefitAmount holds the default value on creation for the benefit_amount field.
	scheme.DefaultBenefitAmount = schemeDescBenefitAmount.Default.(float64)
	// schemeDescActive is the schema descriptor for active field.
	schemeDescActive := schemeFields[6].Descriptor()
	// scheme.DefaultActive holds the default value on creation for the active field.
	scheme.DefaultActive = schemeDescActive.Default.(bool)
	// schemeDescCreatedAt is the schema descriptor for created_at field.
	schemeDescCreatedAt := schemeFields[7].Descriptor()
	// scheme.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheme.DefaultCreatedAt = schemeDescCreatedAt.Default.(func() time.Time)
	// schemeDescUpdatedAt is the schema descriptor for updated_at field.
	schemeDescUpdatedAt := schemeFields[8].Descriptor()
	// scheme.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	scheme.DefaultUpdatedAt = schemeDescUpdatedAt.Default.(func() time.Time)
	// scheme.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	scheme.UpdateDefaultUpdatedAt = schemeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// schemeDescID is the schema descriptor for id field.
	schemeDescID := schemeFields[0].Descriptor()
	// scheme.DefaultID holds the default value on creation for the id field.
	scheme.DefaultID = schemeDescID.Default.(func() uuid.UUID)
}
