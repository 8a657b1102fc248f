package errors

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error.
// Metadata travels as a google.protobuf.Struct detail when it is representable.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}

	// Check if it's already a gRPC status error
	if _, ok := status.FromError(err); ok {
		return err
	}

	var customErr *Error
	if As(err, &customErr) {
		st := status.New(customErr.Code.GRPCCode(), customErr.Message)

		if len(customErr.Meta) > 0 {
			details, detailErr := structpb.NewStruct(metaWithCode(customErr))
			if detailErr == nil {
				if withDetails, wdErr := st.WithDetails(details); wdErr == nil {
					st = withDetails
				}
			}
		}

		return st.Err()
	}

	return status.Error(codes.Internal, err.Error())
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	customErr := &Error{
		Code:    grpcCodeToCode(st.Code()),
		Message: st.Message(),
	}

	for _, detail := range st.Details() {
		details, ok := detail.(*structpb.Struct)
		if !ok {
			continue
		}
		meta := details.AsMap()
		if code, ok := meta[detailCodeKey].(string); ok {
			customErr.Code = Code(code)
			delete(meta, detailCodeKey)
		}
		customErr.Meta = meta
		break
	}

	return customErr
}

// detailCodeKey keeps codes with no gRPC equivalent (INVALID_GEOMETRY) across the wire
const detailCodeKey = "error_code"

func metaWithCode(e *Error) map[string]interface{} {
	out := make(map[string]interface{}, len(e.Meta)+1)
	for k, v := range e.Meta {
		out[k] = v
	}
	out[detailCodeKey] = string(e.Code)
	return out
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument, CodeInvalidGeometry:
		return codes.InvalidArgument
	case CodeDeadlineExceeded:
		return codes.DeadlineExceeded
	case CodeNotFound:
		return codes.NotFound
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	case CodeUnavailable:
		return codes.Unavailable
	default:
		return codes.Unknown
	}
}

// grpcCodeToCode converts a gRPC code to our error code
func grpcCodeToCode(grpcCode codes.Code) Code {
	switch grpcCode {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Unavailable:
		return CodeUnavailable
	default:
		return CodeInternal
	}
}
