package commands

import (
	"context"
	"errors"
	"io/fs"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-showcase/internal/catalog"
	"github.com/goliatone/go-showcase/internal/slides"
	"github.com/goliatone/go-showcase/internal/validation"
)

const (
	commandValidationCode   = "COMMAND_VALIDATION_FAILED"
	commandContextCanceled  = "COMMAND_CONTEXT_CANCELED"
	commandContextTimeout   = "COMMAND_CONTEXT_TIMEOUT"
	commandContextErrorCode = "COMMAND_CONTEXT_ERROR"
	commandExecuteFailed    = "COMMAND_EXECUTION_FAILED"

	slideNotFoundCode     = "SHOWCASE_SLIDE_NOT_FOUND"
	sectionNotFoundCode   = "SHOWCASE_SECTION_NOT_FOUND"
	sectionExistsCode     = "SHOWCASE_SECTION_EXISTS"
	ownerNotFoundCode     = "SHOWCASE_OWNER_NOT_FOUND"
	referenceNotFoundCode = "SHOWCASE_REFERENCE_NOT_FOUND"
	reorderMismatchCode   = "SHOWCASE_REORDER_MISMATCH"
	slideInvalidCode      = "SHOWCASE_SLIDE_INVALID"
	fixtureMissingCode    = "SHOWCASE_FIXTURE_MISSING"
)

func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "command validation failed").
		WithTextCode(commandValidationCode)
}

func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution cancelled").
			WithTextCode(commandContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command execution deadline exceeded").
			WithTextCode(commandContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "command context error").
			WithTextCode(commandContextErrorCode)
	}
}

// wrapExecuteError tags service failures. Input rejected by the slide rules
// is a validation failure; everything else is a command failure with a code
// naming the domain cause.
func wrapExecuteError(err error) (TelemetryStatus, string, error) {
	if err == nil {
		return TelemetryStatusSuccess, "", nil
	}
	if goerrors.IsWrapped(err) {
		return TelemetryStatusFailed, "", err
	}
	if isSlideInputError(err) {
		return TelemetryStatusRejected, slideInvalidCode,
			goerrors.Wrap(err, goerrors.CategoryValidation, "slide input rejected").WithTextCode(slideInvalidCode)
	}
	code := executeTextCode(err)
	return TelemetryStatusFailed, code,
		goerrors.Wrap(err, goerrors.CategoryCommand, "command execution failed").WithTextCode(code)
}

func isSlideInputError(err error) bool {
	return validation.IsInputError(err) ||
		errors.Is(err, slides.ErrPlacementAmbiguous) ||
		errors.Is(err, slides.ErrPlacementRequired) ||
		errors.Is(err, slides.ErrReferenceRequired) ||
		errors.Is(err, slides.ErrContentAmbiguous) ||
		errors.Is(err, slides.ErrReferenceOnCustom) ||
		errors.Is(err, slides.ErrUnknownSlideType)
}

func executeTextCode(err error) string {
	switch {
	case errors.Is(err, slides.ErrSlideNotFound):
		return slideNotFoundCode
	case errors.Is(err, slides.ErrSectionNotFound):
		return sectionNotFoundCode
	case errors.Is(err, slides.ErrSectionExists):
		return sectionExistsCode
	case errors.Is(err, slides.ErrParentNotFound), errors.Is(err, catalog.ErrNotFound):
		return ownerNotFoundCode
	case errors.Is(err, slides.ErrReferenceNotFound):
		return referenceNotFoundCode
	case errors.Is(err, slides.ErrReorderMismatch):
		return reorderMismatchCode
	case errors.Is(err, fs.ErrNotExist):
		return fixtureMissingCode
	}
	return commandExecuteFailed
}
