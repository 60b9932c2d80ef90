package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/proto"
	"github.com/dtroode/studyflow-waitlist/internal/model"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "invalid collection -> InvalidArgument",
			in:       fmt.Errorf("%w: %q", model.ErrInvalidCollection, "Bad"),
			wantCode: codes.InvalidArgument,
			wantMsg:  `invalid collection name: "Bad"`,
		},
		{
			name:     "invalid fields -> InvalidArgument",
			in:       fmt.Errorf("%w: no fields", model.ErrInvalidFields),
			wantCode: codes.InvalidArgument,
			wantMsg:  "invalid document fields: no fields",
		},
		{
			name:     "malformed request -> InvalidArgument",
			in:       fmt.Errorf("%w: missing collection", proto.ErrMalformedRequest),
			wantCode: codes.InvalidArgument,
			wantMsg:  "malformed append request: missing collection",
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
