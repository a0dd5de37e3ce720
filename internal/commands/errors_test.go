package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-showcase/internal/slides"
)

func TestExecuteTextCode(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{slides.ErrSlideNotFound, slideNotFoundCode},
		{fmt.Errorf("delete: %w", slides.ErrSlideNotFound), slideNotFoundCode},
		{slides.ErrSectionExists, sectionExistsCode},
		{slides.ErrReorderMismatch, reorderMismatchCode},
		{fs.ErrNotExist, fixtureMissingCode},
		{errors.New("boom"), commandExecuteFailed},
	}
	for _, tc := range cases {
		if got := executeTextCode(tc.err); got != tc.want {
			t.Fatalf("%v: expected %s, got %s", tc.err, tc.want, got)
		}
	}
}

func TestWrapExecuteErrorCategories(t *testing.T) {
	status, code, err := wrapExecuteError(slides.ErrPlacementAmbiguous)
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected placement errors to be validation failures, got %v", err)
	}
	if status != TelemetryStatusRejected || code != slideInvalidCode {
		t.Fatalf("unexpected outcome %s/%s", status, code)
	}

	status, code, err = wrapExecuteError(fmt.Errorf("delete: %w", slides.ErrSlideNotFound))
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected missing slide to be a command failure, got %v", err)
	}
	if status != TelemetryStatusFailed || code != slideNotFoundCode {
		t.Fatalf("unexpected outcome %s/%s", status, code)
	}

	if status, _, err := wrapExecuteError(nil); err != nil || status != TelemetryStatusSuccess {
		t.Fatalf("expected nil passthrough, got %v/%s", err, status)
	}
}
