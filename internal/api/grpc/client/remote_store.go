// Package client connects Go waitlist controllers to the documents server.
package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/proto"
	"github.com/dtroode/studyflow-waitlist/internal/logger"
	"github.com/dtroode/studyflow-waitlist/internal/model"
	"github.com/dtroode/studyflow-waitlist/internal/waitlist"
)

var _ waitlist.RecordStore = (*RemoteStore)(nil)

// RemoteStore appends documents through the Documents gRPC service.
type RemoteStore struct {
	client  proto.DocumentsClient
	timeout time.Duration
	logger  *logger.Logger
}

// NewRemoteStore creates a RemoteStore on top of an established connection.
// A zero timeout leaves the caller's deadline untouched.
func NewRemoteStore(conn grpc.ClientConnInterface, timeout time.Duration, logger *logger.Logger) *RemoteStore {
	return &RemoteStore{
		client:  proto.NewDocumentsClient(conn),
		timeout: timeout,
		logger:  logger,
	}
}

// Append sends one Append RPC and returns the assigned record ID.
func (s *RemoteStore) Append(ctx context.Context, collection string, fields model.Fields) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := proto.NewAppendRequest(collection, fields)
	if err != nil {
		return "", err
	}

	resp, err := s.client.Append(ctx, req)
	if err != nil {
		s.logger.Debug("Remote store: append RPC failed",
			"collection", collection,
			"error", err.Error())
		return "", fmt.Errorf("failed to append document: %w", err)
	}

	return resp.GetValue(), nil
}

// Dial opens a client connection to addr. When caFile is set the server
// certificate is verified against it, otherwise the system pool is used.
func Dial(addr string, useTLS bool, caFile string) (*grpc.ClientConn, error) {
	creds := insecure.NewCredentials()
	if useTLS {
		tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}
		if caFile != "" {
			pem, err := os.ReadFile(caFile)
			if err != nil {
				return nil, fmt.Errorf("failed to read CA file: %w", err)
			}
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(pem) {
				return nil, fmt.Errorf("failed to parse CA file %q", caFile)
			}
			tlsConfig.RootCAs = pool
		}
		creds = credentials.NewTLS(tlsConfig)
	}

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(creds),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client: %w", err)
	}
	return conn, nil
}
