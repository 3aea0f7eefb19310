// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-shipment-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeys(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "token", TokenCtxKey.String())
	assert.Equal(t, "user", UserCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   int64
		wantOK bool
	}{
		{name: "set", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(42)), want: 42, wantOK: true},
		{name: "zero is still set", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(0)), want: 0, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42")},
		{name: "plain string key", ctx: context.WithValue(context.Background(), "userID", int64(42))},
		{name: "other key", ctx: context.WithValue(context.Background(), UserCtxKey, int64(42))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetTokenFromContext(t *testing.T) {
	want := models.Token{ID: "jti", UserID: 7, Abilities: []models.Ability{models.AbilityUserAccess}}
	ctx := context.WithValue(context.Background(), TokenCtxKey, want)

	got, ok := GetTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.ID != want.ID || got.UserID != want.UserID {
		t.Errorf("unexpected token %+v", got)
	}

	if _, ok = GetTokenFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserFromContext(t *testing.T) {
	want := models.User{UserID: 3, Email: "jane@example.com", Role: models.RoleAdmin}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	got, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got.UserID != want.UserID || got.Email != want.Email {
		t.Errorf("unexpected user %+v", got)
	}

	ctx = context.WithValue(context.Background(), UserCtxKey, "not a user")
	if _, ok = GetUserFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}
}
