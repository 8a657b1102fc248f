package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/fps-level/internal/errors"
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
			message:  "layout not generated",
			expected: "NOT_FOUND: layout not generated",
		},
		{
			name:     "invalid geometry error",
			code:     errors.CodeInvalidGeometry,
			message:  "wall has zero length",
			expected: "INVALID_GEOMETRY: wall has zero length",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.InvalidGeometry("door too wide").
		WithMeta("primitive_kind", "wall").
		WithMeta("primitive_id", "wall-south")

	s.Assert().Equal("wall", err.Meta["primitive_kind"])
	s.Assert().Equal("wall-south", err.Meta["primitive_id"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("sink closed")
	wrapped := errors.Wrap(baseErr, "failed to upload meshes")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to upload meshes", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCodeAndMeta() {
	baseErr := errors.InvalidGeometry("zero length").WithMeta("primitive_id", "wall-1")
	wrapped := errors.Wrapf(baseErr, "build %s", "wall-1")

	s.Assert().Equal(errors.CodeInvalidGeometry, wrapped.Code)
	s.Assert().Equal("build wall-1", wrapped.Message)
	s.Assert().Equal("wall-1", wrapped.Meta["primitive_id"])
	s.Assert().True(errors.IsInvalidGeometry(wrapped))
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "should be nil"))
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.InvalidGeometry("a")
	err2 := errors.InvalidGeometry("b")
	err3 := errors.InvalidArgument("a")

	s.Assert().True(err1.Is(err2))
	s.Assert().False(err1.Is(err3))
	s.Assert().True(errors.Is(errors.Wrap(err1, "outer"), err2))
}

func (s *ErrorsTestSuite) TestGetCode() {
	err := errors.NotFound("test")
	wrapped := errors.Wrap(err, "wrapped")

	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(err))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(wrapped))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("standard error")))
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
}

func (s *ErrorsTestSuite) TestGetMessage() {
	err := errors.FailedPrecondition("sink not uploaded")
	stdErr := fmt.Errorf("standard error")

	s.Assert().Equal("sink not uploaded", errors.GetMessage(err))
	s.Assert().Equal("standard error", errors.GetMessage(stdErr))
	s.Assert().Equal("", errors.GetMessage(nil))
}

func (s *ErrorsTestSuite) TestGRPCConversion() {
	err := errors.InvalidGeometry("door width 4 must be less than wall length 3").
		WithMeta("primitive_id", "wall-hall")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Assert().Equal(codes.InvalidArgument, st.Code())
	s.Assert().Equal("door width 4 must be less than wall length 3", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.Assert().Equal(errors.CodeInvalidGeometry, errors.GetCode(back))
	s.Assert().Equal("wall-hall", errors.GetMeta(back)["primitive_id"])

	plain := errors.FromGRPCError(status.Error(codes.NotFound, "missing"))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(plain))
}

func (s *ErrorsTestSuite) TestGRPCCodeMapping() {
	testCases := []struct {
		code     errors.Code
		expected codes.Code
	}{
		{errors.CodeNotFound, codes.NotFound},
		{errors.CodeInvalidArgument, codes.InvalidArgument},
		{errors.CodeInvalidGeometry, codes.InvalidArgument},
		{errors.CodeFailedPrecondition, codes.FailedPrecondition},
		{errors.CodeInternal, codes.Internal},
		{errors.CodeUnavailable, codes.Unavailable},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Assert().Equal(tc.expected, tc.code.GRPCCode())
		})
	}
}
