package catalogcmd

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	catalogpkg "github.com/goliatone/go-pagemeta/internal/catalog"
	"github.com/goliatone/go-pagemeta/internal/commands"
	"github.com/goliatone/go-pagemeta/internal/logging"
	"github.com/goliatone/go-pagemeta/pkg/interfaces"
)

const reloadCatalogMessageType = "pagemeta.catalog.reload"

var ErrCatalogDisabled = errors.New("catalog command: module disabled")

// FeatureGates exposes the runtime toggle required by catalog command handlers.
type FeatureGates struct {
	CatalogEnabled func() bool
}

func (g FeatureGates) catalogEnabled() bool {
	if g.CatalogEnabled == nil {
		return true
	}
	return g.CatalogEnabled()
}

// ReloadCatalogCommand drops the in-memory catalog so the next read reloads
// from the configured source. When Warm is set the reload happens eagerly.
type ReloadCatalogCommand struct {
	Warm bool `json:"warm"`
}

// Type implements command.Message.
func (ReloadCatalogCommand) Type() string { return reloadCatalogMessageType }

// Validate satisfies command.Message.
func (c ReloadCatalogCommand) Validate() error {
	return validation.ValidateStruct(&c)
}

// ReloadCatalogHandler orchestrates catalog cache invalidation and warm-up.
type ReloadCatalogHandler struct {
	inner *commands.Handler[ReloadCatalogCommand]
}

// NewReloadCatalogHandler constructs a handler wired to the provided store.
func NewReloadCatalogHandler(store *catalogpkg.Store, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ReloadCatalogCommand]) *ReloadCatalogHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ReloadCatalogCommand) error {
		if !gates.catalogEnabled() {
			return ErrCatalogDisabled
		}
		store.ClearCache()
		fields := map[string]any{"operation": "reload"}
		if msg.Warm {
			records := store.GetAll(ctx)
			fields["pages"] = len(records)
		}
		logging.WithFields(baseLogger, fields).Info("catalog.command.reloaded")
		return nil
	}

	handlerOpts := []commands.HandlerOption[ReloadCatalogCommand]{
		commands.WithLogger[ReloadCatalogCommand](baseLogger),
		commands.WithOperation[ReloadCatalogCommand]("catalog.reload"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ReloadCatalogHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ReloadCatalogCommand].
func (h *ReloadCatalogHandler) Execute(ctx context.Context, msg ReloadCatalogCommand) error {
	return h.inner.Execute(ctx, msg)
}
