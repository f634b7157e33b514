package mcp

import (
	"context"
	"log/slog"

	"github.com/viant/jsonrpc/transport"
	protoclient "github.com/viant/mcp-protocol/client"
	"github.com/viant/mcp-protocol/logger"
	protoserver "github.com/viant/mcp-protocol/server"

	"github.com/viant/policybin/indicator"
	"github.com/viant/policybin/reindex"
	"github.com/viant/policybin/schema"
	"github.com/viant/policybin/search"
	"github.com/viant/policybin/service"
)

// Backend represents bin operations exposed as tools
type Backend interface {
	Classify(fileNames ...string) []service.Classification
	Categories() []indicator.Category
	Bins(ctx context.Context, filter service.Filter) []*schema.Bin
	Search(ctx context.Context, query string, limit int) ([]search.Hit, error)
	Reindex(ctx context.Context) (*reindex.Result, error)
}

type Handler struct {
	*protoserver.DefaultHandler
	service Backend
	logger  *slog.Logger
}

func NewHandler(backend Backend, log *slog.Logger) protoserver.NewHandler {
	if log == nil {
		log = slog.Default()
	}
	return func(_ context.Context, notifier transport.Notifier, logger logger.Logger, clientOperation protoclient.Operations) (protoserver.Handler, error) {
		base := protoserver.NewDefaultHandler(notifier, logger, clientOperation)
		h := &Handler{
			DefaultHandler: base,
			service:        backend,
			logger:         log,
		}
		if err := registerTools(base.Registry, h); err != nil {
			return nil, err
		}
		return h, nil
	}
}
