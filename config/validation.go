package config

import (
	"reflect"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jobforge/jobforge/job"
)

// Validate checks a loaded project config before any spec work starts.
func Validate(conf *ProjectConfig) error {
	return validation.ValidateStruct(conf,
		validation.Field(&conf.Version, validation.Required, validation.In(Version(1))),
		nestedFields(&conf.Log,
			validation.Field(&conf.Log.Level, validation.In(
				LogLevelDebug,
				LogLevelInfo,
				LogLevelWarning,
				LogLevelError,
				LogLevelFatal,
			)),
		),
		nestedFields(&conf.Project,
			validation.Field(&conf.Project.Name, validation.Required),
		),
		nestedFields(&conf.Specs,
			validation.Field(&conf.Specs.Path, validation.Required),
		),
		nestedFields(&conf.Output,
			validation.Field(&conf.Output.Path, validation.Required),
		),
		nestedFields(&conf.Defaults,
			validation.Field(&conf.Defaults.JobType, validation.In(
				job.JobTypeFree.String(),
				job.JobTypeMaven.String(),
			)),
			validation.Field(&conf.Defaults.SCMType, validation.In(
				job.SCMTypeNone.String(),
				job.SCMTypeCVS.String(),
				job.SCMTypeSVN.String(),
				job.SCMTypeGit.String(),
			)),
		),
	)
}

// ozzo-validation helper for nested validation struct
// https://github.com/go-ozzo/ozzo-validation/issues/136
func nestedFields(target interface{}, fieldRules ...*validation.FieldRules) *validation.FieldRules {
	return validation.Field(target, validation.By(func(value interface{}) error {
		valueV := reflect.Indirect(reflect.ValueOf(value))
		if valueV.CanAddr() {
			addr := valueV.Addr().Interface()
			return validation.ValidateStruct(addr, fieldRules...)
		}
		return validation.ValidateStruct(target, fieldRules...)
	}))
}
