package message_handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/chatseal/chatseal-server/src/database"
	"github.com/chatseal/chatseal-server/src/integration/meta"
	message_entity "github.com/chatseal/chatseal-server/src/message/entity"
	message_model "github.com/chatseal/chatseal-server/src/message/model"
	tenant_entity "github.com/chatseal/chatseal-server/src/tenant/entity"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&tenant_entity.Tenant{}, &message_entity.Message{}))

	previous := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = previous })

	return db
}

// graphStub fakes the two Graph API calls the send path makes: the phone
// number preflight and the message post.
type graphStub struct {
	phoneStatus      int
	phoneResponse    string
	messagesStatus   int
	messagesResponse string
}

func (s *graphStub) install(t *testing.T) {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/messages") {
			w.WriteHeader(s.messagesStatus)
			fmt.Fprint(w, s.messagesResponse)
			return
		}
		w.WriteHeader(s.phoneStatus)
		fmt.Fprint(w, s.phoneResponse)
	}))

	previous := meta.BaseURL
	meta.BaseURL = server.URL
	t.Cleanup(func() {
		meta.BaseURL = previous
		server.Close()
	})
}

func connectedStub() *graphStub {
	return &graphStub{
		phoneStatus:      http.StatusOK,
		phoneResponse:    `{"id":"111222333","display_phone_number":"+15550001111","status":"CONNECTED","name_status":"APPROVED"}`,
		messagesStatus:   http.StatusOK,
		messagesResponse: `{"messaging_product":"whatsapp","contacts":[{"input":"5511999999999","wa_id":"5511999999999"}],"messages":[{"id":"wamid.sent1"}]}`,
	}
}

func timeUnix(sec int64) time.Time {
	return time.Unix(sec, 0)
}

func setupMessageApp() *fiber.App {
	app := fiber.New()
	group := app.Group("/whatsapp/message")
	group.Post("/send", SendMessage)
	group.Get("/:tenantId", GetMessages)
	return app
}

func seedTenant(t *testing.T, db *gorm.DB) tenant_entity.Tenant {
	t.Helper()
	tenant := tenant_entity.Tenant{
		Name:          "Acme Commerce",
		PhoneNumber:   "+15550001111",
		PhoneNumberID: "111222333",
		WabaID:        "999888777",
		AccessToken:   "tenant-token",
	}
	require.NoError(t, db.Create(&tenant).Error)
	return tenant
}

func sendRequest(t *testing.T, tenantID uuid.UUID, to, message string) *http.Request {
	t.Helper()
	payload, err := json.Marshal(fiber.Map{
		"tenantId": tenantID,
		"to":       to,
		"message":  message,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/whatsapp/message/send", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestSendMessageSuccess(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	connectedStub().install(t)
	app := setupMessageApp()

	resp, err := app.Test(sendRequest(t, tenant.ID, "5511999999999", "your order shipped"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var msg message_entity.Message
	require.NoError(t, db.First(&msg, "wa_message_id = ?", "wamid.sent1").Error)
	assert.Equal(t, tenant.ID, msg.TenantID)
	assert.Equal(t, tenant.PhoneNumberID, msg.From)
	assert.Equal(t, "5511999999999", msg.To)
	assert.Equal(t, "your order shipped", msg.Body)
	assert.Equal(t, message_model.Outbound, msg.Direction)
	assert.Equal(t, message_model.StatusSent, msg.Status)
	assert.Equal(t, "text", msg.WaType)
}

func TestSendMessageInvalidBody(t *testing.T) {
	setupTestDB(t)
	app := setupMessageApp()

	req := httptest.NewRequest(http.MethodPost, "/whatsapp/message/send", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendMessageMissingFields(t *testing.T) {
	setupTestDB(t)
	app := setupMessageApp()

	req := httptest.NewRequest(http.MethodPost, "/whatsapp/message/send", strings.NewReader(`{"to":"123"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSendMessageUnknownTenant(t *testing.T) {
	setupTestDB(t)
	connectedStub().install(t)
	app := setupMessageApp()

	resp, err := app.Test(sendRequest(t, uuid.New(), "5511999999999", "hi"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSendMessageSenderNotConnected(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)

	stub := connectedStub()
	stub.phoneResponse = `{"id":"111222333","display_phone_number":"+15550001111","status":"PENDING","name_status":"APPROVED"}`
	stub.install(t)
	app := setupMessageApp()

	resp, err := app.Test(sendRequest(t, tenant.ID, "5511999999999", "hi"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&message_entity.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSendMessageExpiredToken(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)

	stub := connectedStub()
	stub.phoneStatus = http.StatusUnauthorized
	stub.phoneResponse = `{"error":{"message":"Error validating access token","type":"OAuthException","code":190}}`
	stub.install(t)
	app := setupMessageApp()

	resp, err := app.Test(sendRequest(t, tenant.ID, "5511999999999", "hi"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&message_entity.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSendMessageAmbiguousPreflightProceeds(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)

	stub := connectedStub()
	stub.phoneStatus = http.StatusBadGateway
	stub.phoneResponse = `upstream hiccup`
	stub.install(t)
	app := setupMessageApp()

	resp, err := app.Test(sendRequest(t, tenant.ID, "5511999999999", "hi"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&message_entity.Message{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSendMessageUpstreamFailurePersistsNothing(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)

	stub := connectedStub()
	stub.messagesStatus = http.StatusBadRequest
	stub.messagesResponse = `{"error":{"message":"Recipient is not a valid WhatsApp user","type":"OAuthException","code":131026}}`
	stub.install(t)
	app := setupMessageApp()

	resp, err := app.Test(sendRequest(t, tenant.ID, "5511999999999", "hi"), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&message_entity.Message{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetMessagesOrderedByTimestamp(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db)
	app := setupMessageApp()

	newer := "wamid.newer"
	older := "wamid.older"
	require.NoError(t, db.Create(&message_entity.Message{
		TenantID:    tenant.ID,
		Body:        "second",
		Direction:   message_model.Inbound,
		WaMessageID: &newer,
		Timestamp:   timeUnix(1756500100),
	}).Error)
	require.NoError(t, db.Create(&message_entity.Message{
		TenantID:    tenant.ID,
		Body:        "first",
		Direction:   message_model.Inbound,
		WaMessageID: &older,
		Timestamp:   timeUnix(1756500000),
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/whatsapp/message/"+tenant.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success  bool                     `json:"success"`
		Messages []message_entity.Message `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "first", body.Messages[0].Body)
	assert.Equal(t, "second", body.Messages[1].Body)
}

func TestGetMessagesInvalidTenantID(t *testing.T) {
	setupTestDB(t)
	app := setupMessageApp()

	req := httptest.NewRequest(http.MethodGet, "/whatsapp/message/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
