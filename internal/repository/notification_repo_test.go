package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"taskmanage/internal/model"
)

// The $set document of a notification upsert is the marshalled model. A
// repeat save that omits a field must leave the stored value alone, so
// absent fields may not appear in the document at all.
func TestNotificationMergeDocument_OmitsAbsentFields(t *testing.T) {
	n := model.Notification{TaskID: "task-1", Message: "deadline moved"}

	raw, err := bson.Marshal(n)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	require.Equal(t, "task-1", doc["taskId"])
	require.Equal(t, "deadline moved", doc["message"])
	require.NotContains(t, doc, "email")
	require.NotContains(t, doc, "time")
	require.NotContains(t, doc, "_id")
}

func TestNotificationMergeDocument_KeepsPresentFields(t *testing.T) {
	n := model.Notification{TaskID: "task-1", Email: "alice@example.com", Message: "assigned"}

	raw, err := bson.Marshal(n)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	require.Equal(t, "alice@example.com", doc["email"])
	require.Equal(t, "assigned", doc["message"])
}
