package service

import (
	"testing"
	"time"

	"abcresearch-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToAlertResponse(t *testing.T) {
	id := uuid.New()
	created := time.Now()

	alert := &entity.Alert{
		Id:        id,
		UserId:    uuid.New(),
		TypeCode:  "WATCH_ITEM_NEW",
		Title:     "New item in FDA approvals",
		Message:   "Drug X approved for indication Y",
		Metadata:  []byte(`{"feed_id":"abc","link":"https://example.com/item"}`),
		IsRead:    true,
		CreatedAt: created,
	}

	res := toAlertResponse(alert)

	assert.Equal(t, id, res.Id)
	assert.Equal(t, "WATCH_ITEM_NEW", res.TypeCode)
	assert.Equal(t, "New item in FDA approvals", res.Title)
	assert.True(t, res.IsRead)
	assert.Equal(t, created, res.CreatedAt)
	assert.Equal(t, "https://example.com/item", res.Metadata["link"])
}

func TestToAlertResponseHandlesBadMetadata(t *testing.T) {
	alert := &entity.Alert{
		Id:       uuid.New(),
		Metadata: []byte("not json"),
	}

	res := toAlertResponse(alert)
	assert.Nil(t, res.Metadata)
}

func TestToAlertResponseHandlesEmptyMetadata(t *testing.T) {
	alert := &entity.Alert{Id: uuid.New()}

	res := toAlertResponse(alert)
	assert.Nil(t, res.Metadata)
}

func TestStringField(t *testing.T) {
	payload := map[string]interface{}{
		"title": "hello",
		"count": 3,
	}

	assert.Equal(t, "hello", stringField(payload, "title"))
	assert.Equal(t, "", stringField(payload, "count"))
	assert.Equal(t, "", stringField(payload, "missing"))
}
