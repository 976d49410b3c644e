//go:build integration

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConsoleAPI_BotLifecycleWithAudit(t *testing.T) {
	h := startConsole(t)
	defer h.close(t)

	require.NoError(t, resetDatabase(t, h.db))

	createBody := map[string]interface{}{
		"name":     "Lifecycle Bot",
		"kind":     "support",
		"tone":     "friendly",
		"channels": []string{"web"},
		"actor":    map[string]string{"actor_id": "u-int", "actor_name": "Integration"},
	}

	status, body := postJSON(t, h.client, h.baseURL+"/v1/companies/comp-int/bots", createBody)
	require.Equal(t, http.StatusCreated, status, string(body))

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.ID)
	require.Equal(t, "active", created.Status)

	pauseBody := map[string]interface{}{
		"status": "paused",
		"actor":  map[string]string{"actor_id": "u-int"},
	}
	status, body = sendJSON(t, h.client, http.MethodPatch,
		fmt.Sprintf("%s/v1/bots/%s/status", h.baseURL, created.ID), pauseBody)
	require.Equal(t, http.StatusOK, status, string(body))

	resp, err := h.client.Get(fmt.Sprintf("%s/v1/bots/%s/history", h.baseURL, created.ID))
	require.NoError(t, err)
	defer resp.Body.Close()
	historyBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(historyBody))

	var history struct {
		History []struct {
			Action string `json:"action"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal(historyBody, &history))
	require.Len(t, history.History, 2)
	require.Equal(t, "paused", history.History[0].Action)
	require.Equal(t, "created", history.History[1].Action)
}

func TestConsoleAPI_IntegrationConnectAndSync(t *testing.T) {
	h := startConsole(t)
	defer h.close(t)

	require.NoError(t, resetDatabase(t, h.db))

	connectBody := map[string]interface{}{
		"connected_by": "u-int",
		"config": map[string]interface{}{
			"webhook_url": "https://hooks.slack.com/services/T0/B0/integration",
		},
	}
	status, body := sendJSON(t, h.client, http.MethodPut,
		h.baseURL+"/v1/companies/comp-int/integrations/slack", connectBody)
	require.Equal(t, http.StatusCreated, status, string(body))

	// Connecting twice must conflict.
	status, body = sendJSON(t, h.client, http.MethodPut,
		h.baseURL+"/v1/companies/comp-int/integrations/slack", connectBody)
	require.Equal(t, http.StatusConflict, status, string(body))

	status, body = postJSON(t, h.client,
		h.baseURL+"/v1/companies/comp-int/integrations/slack/sync", struct{}{})
	require.Equal(t, http.StatusOK, status, string(body))

	var sync struct {
		LastSyncAt string `json:"last_sync_at"`
	}
	require.NoError(t, json.Unmarshal(body, &sync))
	require.NotEmpty(t, sync.LastSyncAt)
}
