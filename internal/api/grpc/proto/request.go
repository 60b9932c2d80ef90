package proto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/dtroode/studyflow-waitlist/internal/model"
)

// ErrMalformedRequest is returned for Append requests missing required keys.
var ErrMalformedRequest = errors.New("malformed append request")

// NewAppendRequest builds an Append request.
func NewAppendRequest(collection string, fields model.Fields) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(map[string]any{
		"collection": collection,
		"fields":     model.EncodeFields(fields),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode append request: %w", err)
	}
	return req, nil
}

// ParseAppendRequest extracts the collection and fields from an Append request.
func ParseAppendRequest(req *structpb.Struct) (string, model.Fields, error) {
	if req == nil {
		return "", nil, fmt.Errorf("%w: empty request", ErrMalformedRequest)
	}

	collection, ok := req.GetFields()["collection"]
	if !ok {
		return "", nil, fmt.Errorf("%w: missing collection", ErrMalformedRequest)
	}
	name, ok := collection.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", nil, fmt.Errorf("%w: collection must be a string", ErrMalformedRequest)
	}

	fields := req.GetFields()["fields"].GetStructValue()
	if fields == nil {
		return "", nil, fmt.Errorf("%w: missing fields", ErrMalformedRequest)
	}

	return name.StringValue, model.DecodeFields(fields.AsMap()), nil
}
