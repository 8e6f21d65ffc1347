package errors_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/hunlreev/console-quest-rpg/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "player not found",
			expected: "NOT_FOUND: player not found",
		},
		{
			name:     "out of range error",
			code:     errors.CodeOutOfRange,
			message:  "Strength is already at 100",
			expected: "OUT_OF_RANGE: Strength is already at 100",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Equal(tc.expected, err.Error())
			s.Equal(tc.code, err.Code)
			s.Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestWithMeta() {
	err := errors.NotFound("player not found").WithMeta("player_id", "p-1")
	s.Equal("p-1", err.Meta["player_id"])
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	err := errors.Wrap(fmt.Errorf("disk full"), "failed to save player")
	s.Equal(errors.CodeInternal, err.Code)
	s.Equal("INTERNAL: failed to save player: disk full", err.Error())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	inner := errors.NotFoundf("player %s not found", "p-1").WithMeta("player_id", "p-1")
	err := errors.Wrapf(inner, "failed to load %s", "p-1")

	s.True(errors.IsNotFound(err))
	s.Equal("p-1", errors.GetMeta(err)["player_id"])
	s.Equal("failed to load p-1", errors.GetMessage(err))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	err := errors.WrapWithCode(fmt.Errorf("bad json"), errors.CodeDataLoss, "snapshot unreadable")
	s.True(errors.IsDataLoss(err))
	s.ErrorContains(err, "bad json")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err := errors.Wrap(errors.FailedPrecondition("encounter finished"), "turn rejected")
	s.True(errors.Is(err, errors.FailedPrecondition("any")))
	s.False(errors.Is(err, errors.NotFound("any")))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	s.Equal(errors.CodeOutOfRange, errors.GetCode(errors.OutOfRangef("x")))
	s.Equal(errors.CodeCanceled, errors.GetCode(errors.Wrap(context.Canceled, "encounter interrupted")))
	s.True(errors.IsCanceled(fmt.Errorf("turn: %w", context.DeadlineExceeded)))
}

func (s *ErrorsTestSuite) TestIsRecoverable() {
	s.True(errors.IsRecoverable(errors.FailedPreconditionf("not enough gold: need %d, have %d", 6, 2)))
	s.True(errors.IsRecoverable(errors.Wrap(errors.NotFound("no such save"), "load")))
	s.False(errors.IsRecoverable(errors.DataLossf("snapshot %s unreadable", "p-1")))
	s.False(errors.IsRecoverable(fmt.Errorf("disk full")))
	s.False(errors.IsRecoverable(nil))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeFailedPrecondition, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeUnavailable, 4},
		{errors.CodeDataLoss, 5},
		{errors.CodeInternal, 1},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Equal(tc.expected, tc.code.ExitCode())
		})
	}
}
