package usersink

import (
	"context"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/goliatone/go-showcase/pkg/activity"
	"github.com/goliatone/go-showcase/pkg/interfaces"
)

// Hook writes showcase admin events into a go-users activity feed.
//
// ObjectTypes limits forwarding to the listed object types (for example
// "hero_slide"); an empty list forwards everything. Event identifiers that
// are not UUIDs are recorded as uuid.Nil and kept verbatim under Data.
type Hook struct {
	Sink        interfaces.ActivitySink
	ObjectTypes []string
}

func (h Hook) Notify(ctx context.Context, event activity.Event) error {
	if h.Sink == nil || event.Verb == "" {
		return nil
	}
	if len(h.ObjectTypes) > 0 && !slices.Contains(h.ObjectTypes, event.ObjectType) {
		return nil
	}

	data := maps.Clone(event.Metadata)
	if data == nil {
		data = map[string]any{}
	}
	if event.DefinitionCode != "" {
		data["definition_code"] = event.DefinitionCode
	}
	if len(event.Recipients) > 0 {
		data["recipients"] = slices.Clone(event.Recipients)
	}

	return h.Sink.Log(ctx, interfaces.ActivityRecord{
		ActorID:    identity(data, "actor", event.ActorID),
		UserID:     identity(data, "user", event.UserID),
		TenantID:   identity(data, "tenant", event.TenantID),
		Verb:       event.Verb,
		ObjectType: event.ObjectType,
		ObjectID:   event.ObjectID,
		Channel:    event.Channel,
		OccurredAt: event.OccurredAt,
		Data:       data,
	})
}

func identity(data map[string]any, role, value string) uuid.UUID {
	if value == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		data[role+"_ref"] = value
		return uuid.Nil
	}
	return id
}
