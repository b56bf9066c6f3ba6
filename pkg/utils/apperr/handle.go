package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs a non-fatal error through the context logger. Attachment
// steps use this to record failures without interrupting the run.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}
