package commands

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-showcase/internal/slides"
)

type slideMessage struct {
	ID string
}

func (slideMessage) Type() string { return "showcase.test.slide" }

func (m slideMessage) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return errors.New("slide id required")
	}
	return nil
}

func TestHandlerOutcomes(t *testing.T) {
	cases := []struct {
		name    string
		msg     slideMessage
		execErr error
		wantErr bool
		invalid bool
		status  TelemetryStatus
		code    string
		runs    bool
	}{
		{name: "success", msg: slideMessage{ID: "s1"}, status: TelemetryStatusSuccess, runs: true},
		{name: "invalid message", msg: slideMessage{}, wantErr: true, invalid: true},
		{
			name:    "missing slide",
			msg:     slideMessage{ID: "s1"},
			wantErr: true,
			execErr: slides.ErrSlideNotFound,
			status:  TelemetryStatusFailed,
			code:    slideNotFoundCode,
			runs:    true,
		},
		{
			name:    "rejected placement",
			msg:     slideMessage{ID: "s1"},
			wantErr: true,
			execErr: slides.ErrPlacementAmbiguous,
			invalid: true,
			status:  TelemetryStatusRejected,
			code:    slideInvalidCode,
			runs:    true,
		},
		{
			name:    "storage failure",
			msg:     slideMessage{ID: "s1"},
			wantErr: true,
			execErr: errors.New("disk full"),
			status:  TelemetryStatusFailed,
			code:    commandExecuteFailed,
			runs:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ran := false
			var info TelemetryInfo
			h := NewHandler[slideMessage](func(context.Context, slideMessage) error {
				ran = true
				return tc.execErr
			}, WithTelemetry(func(_ context.Context, _ slideMessage, got TelemetryInfo) { info = got }))

			err := h.Execute(context.Background(), tc.msg)
			if ran != tc.runs {
				t.Fatalf("expected ran=%v, got %v", tc.runs, ran)
			}
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
			} else if tc.invalid && !goerrors.IsCategory(err, goerrors.CategoryValidation) {
				t.Fatalf("expected validation category, got %v", err)
			} else if !tc.invalid && !goerrors.IsCategory(err, goerrors.CategoryCommand) {
				t.Fatalf("expected command category, got %v", err)
			}
			if !tc.runs {
				return
			}
			if info.Status != tc.status || info.Code != tc.code {
				t.Fatalf("expected %s/%s, got %s/%s", tc.status, tc.code, info.Status, info.Code)
			}
		})
	}
}

func TestHandlerSkipsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHandler[slideMessage](func(context.Context, slideMessage) error {
		t.Fatal("handler ran with a cancelled context")
		return nil
	})
	if err := h.Execute(ctx, slideMessage{ID: "s1"}); !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerTimeoutReportsContextError(t *testing.T) {
	var info TelemetryInfo
	h := NewHandler[slideMessage](func(ctx context.Context, _ slideMessage) error {
		<-ctx.Done()
		return nil
	},
		WithTimeout[slideMessage](5*time.Millisecond),
		WithTelemetry(func(_ context.Context, _ slideMessage, got TelemetryInfo) { info = got }),
	)

	err := h.Execute(context.Background(), slideMessage{ID: "s1"})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
	if info.Status != TelemetryStatusContextError {
		t.Fatalf("expected context_error status, got %q", info.Status)
	}
}

func TestHandlerTelemetryCarriesIdentity(t *testing.T) {
	var info TelemetryInfo
	h := NewHandler[slideMessage](func(context.Context, slideMessage) error { return nil },
		WithOperation[slideMessage]("slides.create"),
		WithMessageFields(func(m slideMessage) map[string]any { return map[string]any{"slide_id": m.ID} }),
		WithTelemetry(func(_ context.Context, _ slideMessage, got TelemetryInfo) { info = got }),
	)

	if err := h.Execute(context.Background(), slideMessage{ID: "abc"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if info.Command != "showcase.test.slide" || info.Operation != "slides.create" {
		t.Fatalf("unexpected telemetry identity: %+v", info)
	}
	if info.Fields["slide_id"] != "abc" {
		t.Fatalf("expected message fields, got %+v", info.Fields)
	}
}
