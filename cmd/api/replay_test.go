package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayCmd(t *testing.T) {
	var gotAuth, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"received":true,"message":"Already processed"}`))
	}))
	defer srv.Close()

	payload := filepath.Join(t.TempDir(), "payload.json")
	require.NoError(t, os.WriteFile(payload, []byte(`{"event":"purchase_approved"}`), 0o600))

	t.Setenv("SERVICE_ROLE_KEY", "svc-key")
	var out bytes.Buffer
	cmd := replayCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--provider", "cakto", "--file", payload, "--url", srv.URL})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "Bearer svc-key", gotAuth)
	assert.Equal(t, "/webhooks/cakto", gotPath)
	assert.JSONEq(t, `{"event":"purchase_approved"}`, gotBody)
	assert.True(t, strings.HasPrefix(out.String(), "200 "))
}

func TestReplayCmd_RejectsUnknownProvider(t *testing.T) {
	cmd := replayCmd()
	cmd.SetArgs([]string{"--provider", "stripe", "--file", "x.json"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
