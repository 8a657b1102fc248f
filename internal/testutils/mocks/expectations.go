// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/fps-level/internal/entities"
	rendermock "github.com/KirkDiggler/fps-level/internal/render/mock"
)

// ExpectMeshUpload expects one upload of exactly meshCount meshes and captures them
func ExpectMeshUpload(sink *rendermock.MockSink, meshCount int, captured *[]entities.Mesh) *gomock.Call {
	return sink.EXPECT().
		Upload(gomock.Any(), gomock.Len(meshCount)).
		DoAndReturn(func(_ context.Context, meshes []entities.Mesh) error {
			if captured != nil {
				*captured = meshes
			}
			return nil
		})
}

// ExpectMeshUploadError expects one upload and fails it
func ExpectMeshUploadError(sink *rendermock.MockSink, err error) *gomock.Call {
	return sink.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return(err)
}
