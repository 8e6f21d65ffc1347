package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationErrorSortsFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Random", "is required")
	ve.AddFieldError("Catalog", "is required")
	ve.AddFieldError("Catalog", "is empty")

	s.True(ve.HasErrors())
	s.Equal("validation failed: Catalog: is required, is empty; Random: is required", ve.Error())
}

func (s *ValidationTestSuite) TestBuilderReturnsInvalidArgument() {
	err := errors.NewValidationBuilder().
		RequiredField("Random").
		InvalidField("LevelCap", "must be positive").
		Build()

	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "LevelCap: is invalid: must be positive")

	meta := errors.GetMeta(err)
	s.Require().NotNil(meta)
	fields, ok := meta["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Equal([]string{"is required"}, fields["Random"])
}

func (s *ValidationTestSuite) TestBuilderNoErrors() {
	s.NoError(errors.NewValidationBuilder().Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "present", value: "Aela"},
		{name: "empty", value: "", wantErr: true},
		{name: "whitespace", value: "   ", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("Name", tc.value, vb)
			if tc.wantErr {
				s.Error(vb.Build())
			} else {
				s.NoError(vb.Build())
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("Threshold", 3, 0, 10, vb)
	s.NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateRange("Threshold", -1, 0, 10, vb)
	err := vb.Build()
	s.Require().Error(err)
	s.Contains(err.Error(), "must be between 0 and 10")
}

func (s *ValidationTestSuite) TestValidateFraction() {
	vb := errors.NewValidationBuilder()
	errors.ValidateFraction("EncounterRate", 0.67, vb)
	s.NoError(vb.Build())

	vb = errors.NewValidationBuilder()
	errors.ValidateFraction("EncounterRate", 1.5, vb)
	s.Error(vb.Build())
}
