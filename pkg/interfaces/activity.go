package interfaces

import (
	"context"

	usertypes "github.com/goliatone/go-users/pkg/types"
)

// ActivityRecord is the go-users activity record emitted for admin mutations.
type ActivityRecord = usertypes.ActivityRecord

// ActivitySink receives activity records. go-users sinks satisfy it as is.
type ActivitySink interface {
	Log(ctx context.Context, record ActivityRecord) error
}
