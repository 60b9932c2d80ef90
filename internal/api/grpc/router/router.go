package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/handler"
	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/middleware"
	"github.com/dtroode/studyflow-waitlist/internal/api/grpc/proto"
	"github.com/dtroode/studyflow-waitlist/internal/logger"
)

// Router represents a gRPC router for document operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	documentService handler.DocumentService
	health          *health.Server
	logger          *logger.Logger
}

// New creates new gRPC Router instance.
func New(documentService handler.DocumentService, logger *logger.Logger) *Router {
	return &Router{
		documentService: documentService,
		health:          health.NewServer(),
		logger:          logger,
	}
}

func loggingSkip(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/grpc.health.v1.Health/")
}

// Register registers all gRPC services and middleware.
// Health checks are served but not logged.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoverer := middleware.NewRecovery(r.logger)

	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			selector.UnaryServerInterceptor(
				logging.HandleGRPC,
				selector.MatchFunc(loggingSkip),
			),
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(recoverer.HandlePanic)),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recovery.WithRecoveryHandlerContext(recoverer.HandlePanic)),
		),
	)
	r.registerDocumentRoutes(s)
	r.registerHealthRoutes(s)
	reflection.Register(s)

	return s
}

// SetServing marks the documents service as serving or not serving.
func (r *Router) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	r.health.SetServingStatus("", st)
	r.health.SetServingStatus(proto.DocumentsServiceName, st)
}

// Shutdown marks all services as not serving.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) registerDocumentRoutes(server *grpc.Server) {
	documentHandler := handler.NewDocuments(r.documentService, r.logger)
	proto.RegisterDocumentsServer(server, documentHandler)
}

func (r *Router) registerHealthRoutes(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	r.SetServing(true)
}
