package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubParser map[string]jwt.MapClaims

func (p stubParser) ParseToken(token string) (jwt.MapClaims, error) {
	claims, ok := p[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return claims, nil
}

func TestAuthenticate(t *testing.T) {
	parser := stubParser{"good": {"user_id": float64(7)}}

	var gotID int
	handler := Authenticate(parser)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserIDFromContext(r.Context())
		require.NoError(t, err)
		gotID = id
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer good", http.StatusNoContent},
		{"lowercase scheme", "bearer good", http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic good", http.StatusUnauthorized},
		{"rejected token", "Bearer forged", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
	assert.Equal(t, 7, gotID)
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		want    int
		wantErr bool
	}{
		{"no claims", context.Background(), 0, true},
		{"float", ContextWithClaims(context.Background(), jwt.MapClaims{"user_id": float64(3)}), 3, false},
		{"string", ContextWithClaims(context.Background(), jwt.MapClaims{"user_id": "12"}), 12, false},
		{"fraction", ContextWithClaims(context.Background(), jwt.MapClaims{"user_id": 1.5}), 0, true},
		{"zero", ContextWithClaims(context.Background(), jwt.MapClaims{"user_id": float64(0)}), 0, true},
		{"missing claim", ContextWithClaims(context.Background(), jwt.MapClaims{"username": "gm"}), 0, true},
		{"bool", ContextWithClaims(context.Background(), jwt.MapClaims{"user_id": true}), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetUserIDFromContext(tt.ctx)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/players", nil))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"path":"/api/v1/players"`)
	assert.Contains(t, out, `"status":500`)
}
