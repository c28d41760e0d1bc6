package command

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/promptdeck/promptdeck/internal/service"
)

type request struct {
	ctx   context.Context
	cmd   Command
	reply chan response
}

type response struct {
	result Result
	err    error
}

// Dispatcher is the single logical owner of storage. All commands funnel
// through one worker goroutine, so callers from any surface are serialized
// and never mutate the collections concurrently. An accepted request always
// gets a reply; only enqueueing respects the caller's context.
type Dispatcher struct {
	svc      *service.Service
	log      *slog.Logger
	requests chan request
	done     chan struct{}
}

func NewDispatcher(svc *service.Service, log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		svc:      svc,
		log:      log,
		requests: make(chan request),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	for req := range d.requests {
		result, err := d.handle(req.ctx, req.cmd)
		if err != nil {
			d.log.Error("command failed", "command", commandName(req.cmd), "error", err)
		}
		req.reply <- response{result: result, err: err}
	}
	close(d.done)
}

// Close stops the worker after draining queued requests.
func (d *Dispatcher) Close() {
	close(d.requests)
	<-d.done
}

// Dispatch sends cmd to the owning worker and waits for its reply.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (Result, error) {
	req := request{ctx: ctx, cmd: cmd, reply: make(chan response, 1)}
	select {
	case d.requests <- req:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	resp := <-req.reply
	return resp.result, resp.err
}

func (d *Dispatcher) handle(ctx context.Context, cmd Command) (Result, error) {
	switch cmd := cmd.(type) {
	case ListTemplates:
		templates, err := d.svc.ListTemplates(ctx)
		if err != nil {
			return nil, err
		}
		return TemplatesResult{Templates: templates}, nil

	case SaveTemplate:
		if _, err := d.svc.SaveTemplate(ctx, cmd.Template); err != nil {
			return AckResult{}, err
		}
		return AckResult{Success: true}, nil

	case DeleteTemplate:
		if err := d.svc.DeleteTemplate(ctx, cmd.TemplateID); err != nil {
			return AckResult{}, err
		}
		return AckResult{Success: true}, nil

	case RecordUsage:
		if err := d.svc.RecordUsage(ctx, cmd.TemplateID); err != nil {
			return AckResult{}, err
		}
		return AckResult{Success: true}, nil

	case ListCategories:
		categories, err := d.svc.ListCategories(ctx)
		if err != nil {
			return CategoriesResult{}, err
		}
		return CategoriesResult{Success: true, Categories: categories}, nil

	case SaveCategory:
		saved, err := d.svc.SaveCategory(ctx, cmd.Category)
		if err != nil {
			return CategoryResult{}, err
		}
		return CategoryResult{Success: true, Category: saved}, nil

	case DeleteCategory:
		if err := d.svc.DeleteCategory(ctx, cmd.CategoryID); err != nil {
			return AckResult{}, err
		}
		return AckResult{Success: true}, nil

	case CountsByCategory:
		counts, err := d.svc.CountsByCategory(ctx)
		if err != nil {
			return nil, err
		}
		return CountsResult{Counts: counts}, nil

	default:
		return nil, errors.Errorf("unknown command %T", cmd)
	}
}

func commandName(cmd Command) string {
	switch cmd.(type) {
	case ListTemplates:
		return "listTemplates"
	case SaveTemplate:
		return "saveTemplate"
	case DeleteTemplate:
		return "deleteTemplate"
	case RecordUsage:
		return "recordUsage"
	case ListCategories:
		return "listCategories"
	case SaveCategory:
		return "saveCategory"
	case DeleteCategory:
		return "deleteCategory"
	case CountsByCategory:
		return "countsByCategory"
	default:
		return "unknown"
	}
}
