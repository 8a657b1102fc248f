// Package errors provides structured errors for the level service.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata:
//
//	err := errors.InvalidGeometryf("wall %s has zero length", wall.ID).
//	    WithMeta("primitive_kind", "wall").
//	    WithMeta("primitive_id", wall.ID)
//
// Geometry problems are reported with CodeInvalidGeometry. They are local to one
// primitive: callers record them and continue building the rest of the layout.
//
// Config structs validate through the ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Generator == nil {
//	    vb.RequiredField("Generator")
//	}
//	return vb.Build()
//
// Handlers convert to gRPC status with ToGRPCError, and clients convert back with
// FromGRPCError.
package errors
